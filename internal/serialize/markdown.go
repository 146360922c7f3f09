package serialize

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/invoicemd/invoicemd/constants"
	"github.com/invoicemd/invoicemd/internal/document"
	"github.com/invoicemd/invoicemd/internal/validate"
)

// formatMoney renders an amount in the document language's convention.
func formatMoney(d decimal.Decimal, inv *document.Invoice) string {
	return validate.FormatAmount(d, inv.Language)
}

// markdownSections fixes the section order: Company, Customer, Invoice,
// Project, Line Items, Total, Payment. The order never varies with input;
// sections with no present fields are omitted entirely, except the line
// item table whose header row is part of the output contract and is
// emitted even for zero rows.
var markdownSections = []struct {
	title  string
	fields []struct{ label, name string }
}{
	{"Company", []struct{ label, name string }{
		{"Name", constants.FieldCompanyName},
		{"Organization number", constants.FieldOrgNumber},
		{"Phone", constants.FieldPhone},
		{"Email", constants.FieldEmail},
		{"Website", constants.FieldWebsite},
		{"Address", constants.FieldAddress},
	}},
	{"Customer", []struct{ label, name string }{
		{"Customer number", constants.FieldCustomerNumber},
		{"Name", constants.FieldCustomerName},
	}},
	{"Invoice", []struct{ label, name string }{
		{"Invoice number", constants.FieldInvoiceNumber},
		{"Invoice date", constants.FieldInvoiceDate},
		{"Due date", constants.FieldDueDate},
	}},
	{"Project", []struct{ label, name string }{
		{"Project", constants.FieldProject},
		{"Contact person", constants.FieldContactPerson},
		{"Delivery date", constants.FieldDeliveryDate},
		{"Delivery address", constants.FieldDeliveryAddress},
	}},
}

func toMarkdown(inv *document.Invoice) string {
	var b strings.Builder
	b.WriteString("# Invoice\n")

	for _, sec := range markdownSections {
		var lines []string
		for _, f := range sec.fields {
			if v := inv.FieldValue(f.name); v != "" {
				lines = append(lines, "- **"+f.label+"**: "+v)
			}
		}
		if len(lines) == 0 {
			continue
		}
		b.WriteString("\n## " + sec.title + "\n\n")
		for _, l := range lines {
			b.WriteString(l + "\n")
		}
	}

	// line-item header is contractual even with zero rows
	b.WriteString("\n## Line Items\n\n")
	b.WriteString("| Description | Excl. VAT | VAT rate | VAT | Incl. VAT |\n")
	b.WriteString("|---|---:|---:|---:|---:|\n")
	for _, it := range inv.LineItems {
		b.WriteString("| " + escapeCell(it.Description) +
			" | " + formatMoney(it.AmountExclVAT, inv) +
			" | " + it.VATRate.StringFixed(2) + " %" +
			" | " + formatMoney(it.VATAmount, inv) +
			" | " + formatMoney(it.AmountInclVAT, inv) + " |\n")
	}

	var totals []string
	if inv.ExtractedTotal != nil {
		totals = append(totals, "- **Total**: "+formatMoney(*inv.ExtractedTotal, inv))
	}
	if inv.ExtractedVAT != nil {
		totals = append(totals, "- **VAT**: "+formatMoney(*inv.ExtractedVAT, inv))
	}
	if inv.ComputedTotal != nil {
		totals = append(totals, "- **Line-item sum**: "+formatMoney(*inv.ComputedTotal, inv))
	}
	if len(totals) > 0 {
		b.WriteString("\n## Total\n\n")
		for _, l := range totals {
			b.WriteString(l + "\n")
		}
	}

	var payment []string
	for _, f := range []struct{ label, name string }{
		{"Bank account", constants.FieldBankAccount},
		{"KID", constants.FieldKID},
		{"Due date", constants.FieldDueDate},
	} {
		if v := inv.FieldValue(f.name); v != "" {
			payment = append(payment, "- **"+f.label+"**: "+v)
		}
	}
	if len(payment) > 0 {
		b.WriteString("\n## Payment\n\n")
		for _, l := range payment {
			b.WriteString(l + "\n")
		}
	}

	if len(inv.Warnings) > 0 {
		b.WriteString("\n## Warnings\n\n")
		for _, w := range inv.Warnings {
			b.WriteString("- " + w.Code)
			if w.Field != "" {
				b.WriteString(" (" + w.Field + ")")
			}
			b.WriteString(": " + w.Message + "\n")
		}
	}
	return b.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
