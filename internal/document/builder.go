package document

import (
	"fmt"
	"regexp"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/invoicemd/invoicemd/constants"
	"github.com/invoicemd/invoicemd/internal/fields"
	"github.com/invoicemd/invoicemd/internal/language"
	"github.com/invoicemd/invoicemd/internal/table"
	"github.com/invoicemd/invoicemd/internal/validate"
)

// Builder assembles candidates and table rows into an Invoice. It is the
// only place the aggregate is mutated; everything downstream reads.
type Builder struct {
	// Tolerance is the maximum accepted difference between the extracted
	// total and the line-item sum before a mismatch warning is recorded.
	Tolerance decimal.Decimal
	// CountryCode is the default dialing code for phone normalization.
	CountryCode string
}

// NewBuilder returns a Builder with the given reconciliation tolerance and
// default country code. A zero tolerance means exact agreement is required.
func NewBuilder(tolerance decimal.Decimal, countryCode string) Builder {
	return Builder{Tolerance: tolerance, CountryCode: countryCode}
}

// Build validates every candidate, converts table rows into line items,
// reconciles totals, and returns the finished document. Recoverable
// problems become warnings; Build itself never fails.
func (b Builder) Build(lang language.Language, langConf float64, cands []fields.Candidate, tbl table.Result) *Invoice {
	inv := &Invoice{
		ID:                 uuid.New(),
		Language:           lang,
		LanguageConfidence: langConf,
		fields:             make(map[string]Field, len(cands)),
	}

	for _, c := range cands {
		b.applyCandidate(inv, c)
	}
	b.applyTable(inv, lang, tbl)
	b.reconcile(inv)
	return inv
}

// applyCandidate runs the field's checker, when one exists, and stores the
// outcome. Checker failures keep the field present-invalid except for
// amounts and dates that cannot be parsed at all, which stay absent.
func (b Builder) applyCandidate(inv *Invoice, c fields.Candidate) {
	f := Field{Name: c.Field, Raw: c.Value, Value: c.Value, RuleID: c.RuleID}

	switch c.Field {
	case constants.FieldOrgNumber:
		f = applyResult(f, validate.OrgNumber(c.Value))
	case constants.FieldBankAccount:
		f = applyResult(f, validate.AccountNumber(c.Value))
	case constants.FieldKID:
		f = applyResult(f, validate.KID(c.Value))
	case constants.FieldPhone:
		f = applyResult(f, validate.Phone(c.Value, b.CountryCode))

	case constants.FieldAddress, constants.FieldDeliveryAddress:
		// the postal code check rides along on addresses; the last
		// four-digit token is the postal code in Norwegian addresses.
		// An address without one stays present-unvalidated.
		if codes := rePostal.FindAllString(c.Value, -1); len(codes) > 0 {
			f.Valid = boolPtr(validate.PostalCode(codes[len(codes)-1]).Valid)
		}

	case constants.FieldInvoiceDate, constants.FieldDueDate, constants.FieldDeliveryDate:
		if _, iso, err := validate.Date(c.Value, inv.Language); err == nil {
			f.Value = iso
			f.Corrected = iso != c.Value
			f.Valid = boolPtr(true)
		} else {
			f.Valid = boolPtr(false)
		}

	case constants.FieldTotal, constants.FieldVATAmount:
		d, err := validate.Amount(c.Value, inv.Language)
		if err != nil {
			// unparseable amount: field stays absent, warning keeps the trail
			inv.Warnings = append(inv.Warnings, Warning{
				Code:    constants.WarnFieldUnparsed,
				Field:   c.Field,
				Message: err.Error(),
			})
			return
		}
		normalized := validate.FormatAmount(d, inv.Language)
		f.Value = normalized
		f.Corrected = normalized != c.Value
		f.Valid = boolPtr(true)
		if c.Field == constants.FieldTotal {
			inv.ExtractedTotal = &d
		} else {
			inv.ExtractedVAT = &d
		}
	}

	if f.Valid != nil && !*f.Valid {
		inv.Warnings = append(inv.Warnings, Warning{
			Code:    constants.WarnFieldInvalid,
			Field:   c.Field,
			Message: fmt.Sprintf("%s failed validation: %s", c.Field, f.Value),
		})
	}
	inv.fields[c.Field] = f
}

var rePostal = regexp.MustCompile(`\b[0-9]{4}\b`)

func applyResult(f Field, r validate.Result) Field {
	f.Value = r.Value
	f.Valid = boolPtr(r.Valid)
	f.Corrected = r.Corrected
	return f
}

// applyTable converts accepted rows into line items and records every
// shortfall. Row amount layouts: two cells are excl+incl, three are
// excl+vat+incl, four are excl+rate+vat+incl.
func (b Builder) applyTable(inv *Invoice, lang language.Language, tbl table.Result) {
	for _, d := range tbl.Dropped {
		inv.Warnings = append(inv.Warnings, Warning{
			Code:    constants.WarnRowDropped,
			Message: fmt.Sprintf("%s: %q", d.Reason, d.Line),
		})
	}

	for _, row := range tbl.Rows {
		amounts := make([]decimal.Decimal, 0, len(row.Amounts))
		ok := true
		for _, a := range row.Amounts {
			d, err := validate.Amount(a, lang)
			if err != nil {
				inv.Warnings = append(inv.Warnings, Warning{
					Code:    constants.WarnRowDropped,
					Message: fmt.Sprintf("unparseable amount in row %q: %v", row.Line, err),
				})
				ok = false
				break
			}
			amounts = append(amounts, d)
		}
		if !ok {
			continue
		}

		item := LineItem{Description: row.Description}
		switch len(amounts) {
		case 2:
			item.AmountExclVAT = amounts[0]
			item.AmountInclVAT = amounts[1]
			item.VATAmount = amounts[1].Sub(amounts[0])
		case 3:
			item.AmountExclVAT = amounts[0]
			item.VATAmount = amounts[1]
			item.AmountInclVAT = amounts[2]
		case 4:
			item.AmountExclVAT = amounts[0]
			item.VATRate = amounts[1]
			item.VATAmount = amounts[2]
			item.AmountInclVAT = amounts[3]
		}
		if item.VATRate.IsZero() && item.AmountExclVAT.IsPositive() {
			item.VATRate = item.VATAmount.
				Div(item.AmountExclVAT).
				Mul(decimal.NewFromInt(100)).
				Round(2)
		}
		inv.LineItems = append(inv.LineItems, item)
	}

	if len(inv.LineItems) == 0 {
		inv.Warnings = append(inv.Warnings, Warning{
			Code:    constants.WarnTableShortfall,
			Message: "no line items detected",
		})
	}
}

// reconcile cross-checks the extracted total against the line-item sum.
// Disagreement beyond tolerance is a warning, never fatal: both values
// stay on the document.
func (b Builder) reconcile(inv *Invoice) {
	if len(inv.LineItems) == 0 {
		return
	}
	sum := decimal.Zero
	for _, it := range inv.LineItems {
		sum = sum.Add(it.AmountInclVAT)
	}
	inv.ComputedTotal = &sum

	if inv.ExtractedTotal == nil {
		return
	}
	if inv.ExtractedTotal.Sub(sum).Abs().GreaterThan(b.Tolerance) {
		inv.Warnings = append(inv.Warnings, Warning{
			Code:  constants.WarnTotalMismatch,
			Field: constants.FieldTotal,
			Message: fmt.Sprintf("extracted total %s disagrees with line-item sum %s",
				inv.ExtractedTotal.StringFixed(2), sum.StringFixed(2)),
		})
	}
}

func boolPtr(v bool) *bool { return &v }
