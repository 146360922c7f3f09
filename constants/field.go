package constants

// Canonical field names produced by the extractor. Serializers and the
// document builder key off these exact strings.
const (
	FieldCompanyName     = "company_name"
	FieldOrgNumber       = "org_number"
	FieldPhone           = "phone"
	FieldEmail           = "email"
	FieldWebsite         = "website"
	FieldAddress         = "address"
	FieldCustomerNumber  = "customer_number"
	FieldCustomerName    = "customer_name"
	FieldInvoiceNumber   = "invoice_number"
	FieldInvoiceDate     = "invoice_date"
	FieldDueDate         = "due_date"
	FieldContactPerson   = "contact_person"
	FieldProject         = "project"
	FieldDeliveryDate    = "delivery_date"
	FieldDeliveryAddress = "delivery_address"
	FieldBankAccount     = "bank_account"
	FieldKID             = "kid"
	FieldTotal           = "total"
	FieldVATAmount       = "vat_amount"
)

// FieldNames lists every canonical field in a stable order.
var FieldNames = []string{
	FieldCompanyName,
	FieldOrgNumber,
	FieldPhone,
	FieldEmail,
	FieldWebsite,
	FieldAddress,
	FieldCustomerNumber,
	FieldCustomerName,
	FieldInvoiceNumber,
	FieldInvoiceDate,
	FieldDueDate,
	FieldContactPerson,
	FieldProject,
	FieldDeliveryDate,
	FieldDeliveryAddress,
	FieldBankAccount,
	FieldKID,
	FieldTotal,
	FieldVATAmount,
}
