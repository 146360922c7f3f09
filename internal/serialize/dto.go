package serialize

import (
	"encoding/xml"

	"github.com/invoicemd/invoicemd/constants"
	"github.com/invoicemd/invoicemd/internal/document"
)

// The machine formats (json, xml, yaml) share one stable DTO tree. Monetary
// values are emitted as plain fixed-point strings ("5000.00") regardless of
// the document language; only markdown renders locale formatting. Absent
// sections are nil so they are omitted rather than rendered empty.

type companyDTO struct {
	Name      string `json:"name,omitempty" yaml:"name,omitempty" xml:"name,omitempty"`
	OrgNumber string `json:"org_number,omitempty" yaml:"org_number,omitempty" xml:"org_number,omitempty"`
	Phone     string `json:"phone,omitempty" yaml:"phone,omitempty" xml:"phone,omitempty"`
	Email     string `json:"email,omitempty" yaml:"email,omitempty" xml:"email,omitempty"`
	Website   string `json:"website,omitempty" yaml:"website,omitempty" xml:"website,omitempty"`
	Address   string `json:"address,omitempty" yaml:"address,omitempty" xml:"address,omitempty"`
}

type customerDTO struct {
	Number string `json:"number,omitempty" yaml:"number,omitempty" xml:"number,omitempty"`
	Name   string `json:"name,omitempty" yaml:"name,omitempty" xml:"name,omitempty"`
}

type invoiceDetailsDTO struct {
	Number  string `json:"number,omitempty" yaml:"number,omitempty" xml:"number,omitempty"`
	Date    string `json:"date,omitempty" yaml:"date,omitempty" xml:"date,omitempty"`
	DueDate string `json:"due_date,omitempty" yaml:"due_date,omitempty" xml:"due_date,omitempty"`
}

type projectDTO struct {
	Name            string `json:"name,omitempty" yaml:"name,omitempty" xml:"name,omitempty"`
	ContactPerson   string `json:"contact_person,omitempty" yaml:"contact_person,omitempty" xml:"contact_person,omitempty"`
	DeliveryDate    string `json:"delivery_date,omitempty" yaml:"delivery_date,omitempty" xml:"delivery_date,omitempty"`
	DeliveryAddress string `json:"delivery_address,omitempty" yaml:"delivery_address,omitempty" xml:"delivery_address,omitempty"`
}

type lineItemDTO struct {
	Description   string `json:"description" yaml:"description" xml:"description"`
	AmountExclVAT string `json:"amount_excl_vat" yaml:"amount_excl_vat" xml:"amount_excl_vat"`
	VATRate       string `json:"vat_rate" yaml:"vat_rate" xml:"vat_rate"`
	VATAmount     string `json:"vat_amount" yaml:"vat_amount" xml:"vat_amount"`
	AmountInclVAT string `json:"amount_incl_vat" yaml:"amount_incl_vat" xml:"amount_incl_vat"`
}

type totalsDTO struct {
	ExtractedTotal string `json:"extracted_total,omitempty" yaml:"extracted_total,omitempty" xml:"extracted_total,omitempty"`
	ComputedTotal  string `json:"computed_total,omitempty" yaml:"computed_total,omitempty" xml:"computed_total,omitempty"`
	VATAmount      string `json:"vat_amount,omitempty" yaml:"vat_amount,omitempty" xml:"vat_amount,omitempty"`
}

type paymentDTO struct {
	BankAccount string `json:"bank_account,omitempty" yaml:"bank_account,omitempty" xml:"bank_account,omitempty"`
	KID         string `json:"kid,omitempty" yaml:"kid,omitempty" xml:"kid,omitempty"`
	DueDate     string `json:"due_date,omitempty" yaml:"due_date,omitempty" xml:"due_date,omitempty"`
}

type fieldDTO struct {
	Name      string `json:"name" yaml:"name" xml:"name"`
	Value     string `json:"value" yaml:"value" xml:"value"`
	Valid     *bool  `json:"valid,omitempty" yaml:"valid,omitempty" xml:"valid,omitempty"`
	Corrected bool   `json:"corrected,omitempty" yaml:"corrected,omitempty" xml:"corrected,omitempty"`
	Rule      string `json:"rule,omitempty" yaml:"rule,omitempty" xml:"rule,omitempty"`
}

type warningDTO struct {
	Code    string `json:"code" yaml:"code" xml:"code"`
	Field   string `json:"field,omitempty" yaml:"field,omitempty" xml:"field,omitempty"`
	Message string `json:"message" yaml:"message" xml:"message"`
}

type documentDTO struct {
	XMLName   xml.Name           `json:"-" yaml:"-" xml:"invoice"`
	Language  string             `json:"language" yaml:"language" xml:"language"`
	Company   *companyDTO        `json:"company,omitempty" yaml:"company,omitempty" xml:"company,omitempty"`
	Customer  *customerDTO       `json:"customer,omitempty" yaml:"customer,omitempty" xml:"customer,omitempty"`
	Invoice   *invoiceDetailsDTO `json:"invoice,omitempty" yaml:"invoice,omitempty" xml:"invoice_details,omitempty"`
	Project   *projectDTO        `json:"project,omitempty" yaml:"project,omitempty" xml:"project,omitempty"`
	LineItems []lineItemDTO      `json:"line_items" yaml:"line_items" xml:"line_items>item"`
	Totals    *totalsDTO         `json:"totals,omitempty" yaml:"totals,omitempty" xml:"totals,omitempty"`
	Payment   *paymentDTO        `json:"payment,omitempty" yaml:"payment,omitempty" xml:"payment,omitempty"`
	Fields    []fieldDTO         `json:"fields" yaml:"fields" xml:"fields>field"`
	Warnings  []warningDTO       `json:"warnings" yaml:"warnings" xml:"warnings>warning"`
}

func buildDTO(inv *document.Invoice) documentDTO {
	dto := documentDTO{
		Language:  string(inv.Language),
		LineItems: []lineItemDTO{},
		Fields:    []fieldDTO{},
		Warnings:  []warningDTO{},
	}

	company := companyDTO{
		Name:      inv.FieldValue(constants.FieldCompanyName),
		OrgNumber: inv.FieldValue(constants.FieldOrgNumber),
		Phone:     inv.FieldValue(constants.FieldPhone),
		Email:     inv.FieldValue(constants.FieldEmail),
		Website:   inv.FieldValue(constants.FieldWebsite),
		Address:   inv.FieldValue(constants.FieldAddress),
	}
	if company != (companyDTO{}) {
		dto.Company = &company
	}

	customer := customerDTO{
		Number: inv.FieldValue(constants.FieldCustomerNumber),
		Name:   inv.FieldValue(constants.FieldCustomerName),
	}
	if customer != (customerDTO{}) {
		dto.Customer = &customer
	}

	details := invoiceDetailsDTO{
		Number:  inv.FieldValue(constants.FieldInvoiceNumber),
		Date:    inv.FieldValue(constants.FieldInvoiceDate),
		DueDate: inv.FieldValue(constants.FieldDueDate),
	}
	if details != (invoiceDetailsDTO{}) {
		dto.Invoice = &details
	}

	project := projectDTO{
		Name:            inv.FieldValue(constants.FieldProject),
		ContactPerson:   inv.FieldValue(constants.FieldContactPerson),
		DeliveryDate:    inv.FieldValue(constants.FieldDeliveryDate),
		DeliveryAddress: inv.FieldValue(constants.FieldDeliveryAddress),
	}
	if project != (projectDTO{}) {
		dto.Project = &project
	}

	for _, it := range inv.LineItems {
		dto.LineItems = append(dto.LineItems, lineItemDTO{
			Description:   it.Description,
			AmountExclVAT: it.AmountExclVAT.StringFixed(2),
			VATRate:       it.VATRate.StringFixed(2),
			VATAmount:     it.VATAmount.StringFixed(2),
			AmountInclVAT: it.AmountInclVAT.StringFixed(2),
		})
	}

	var totals totalsDTO
	if inv.ExtractedTotal != nil {
		totals.ExtractedTotal = inv.ExtractedTotal.StringFixed(2)
	}
	if inv.ComputedTotal != nil {
		totals.ComputedTotal = inv.ComputedTotal.StringFixed(2)
	}
	if inv.ExtractedVAT != nil {
		totals.VATAmount = inv.ExtractedVAT.StringFixed(2)
	}
	if totals != (totalsDTO{}) {
		dto.Totals = &totals
	}

	payment := paymentDTO{
		BankAccount: inv.FieldValue(constants.FieldBankAccount),
		KID:         inv.FieldValue(constants.FieldKID),
		DueDate:     inv.FieldValue(constants.FieldDueDate),
	}
	if payment != (paymentDTO{}) {
		dto.Payment = &payment
	}

	for _, name := range constants.FieldNames {
		if f, ok := inv.Field(name); ok {
			dto.Fields = append(dto.Fields, fieldDTO{
				Name:      f.Name,
				Value:     f.Value,
				Valid:     f.Valid,
				Corrected: f.Corrected,
				Rule:      f.RuleID,
			})
		}
	}

	for _, w := range inv.Warnings {
		dto.Warnings = append(dto.Warnings, warningDTO{Code: w.Code, Field: w.Field, Message: w.Message})
	}
	return dto
}
