package serialize

import (
	"html/template"
	"strings"

	"github.com/invoicemd/invoicemd/constants"
	"github.com/invoicemd/invoicemd/internal/document"
)

// The page is self-contained: inline styling, no external assets, so it
// renders anywhere the file lands. Section order matches the markdown
// renderer.
var htmlTemplate = template.Must(template.New("invoice").Parse(`<!DOCTYPE html>
<html>
<head>
<title>Invoice Details</title>
<style>
body { font-family: Arial, sans-serif; margin: 20px; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #ddd; padding: 8px; text-align: left; }
th { background-color: #f2f2f2; }
</style>
</head>
<body>
<h1>Invoice Details</h1>
{{range .Sections}}<h2>{{.Title}}</h2>
<table>
<tr><th>Field</th><th>Value</th></tr>
{{range .Rows}}<tr><td>{{.Label}}</td><td>{{.Value}}</td></tr>
{{end}}</table>
{{end}}<h2>Line Items</h2>
<table>
<tr><th>Description</th><th>Excl. VAT</th><th>VAT rate</th><th>VAT</th><th>Incl. VAT</th></tr>
{{range .LineItems}}<tr><td>{{.Description}}</td><td>{{.Excl}}</td><td>{{.Rate}}</td><td>{{.VAT}}</td><td>{{.Incl}}</td></tr>
{{end}}</table>
{{if .Totals}}<h2>Total</h2>
<table>
<tr><th>Field</th><th>Value</th></tr>
{{range .Totals}}<tr><td>{{.Label}}</td><td>{{.Value}}</td></tr>
{{end}}</table>
{{end}}{{if .Payment}}<h2>Payment</h2>
<table>
<tr><th>Field</th><th>Value</th></tr>
{{range .Payment}}<tr><td>{{.Label}}</td><td>{{.Value}}</td></tr>
{{end}}</table>
{{end}}{{if .Warnings}}<h2>Warnings</h2>
<ul>
{{range .Warnings}}<li>{{.}}</li>
{{end}}</ul>
{{end}}</body>
</html>
`))

type htmlRow struct{ Label, Value string }

type htmlSection struct {
	Title string
	Rows  []htmlRow
}

type htmlItem struct{ Description, Excl, Rate, VAT, Incl string }

type htmlPage struct {
	Sections  []htmlSection
	LineItems []htmlItem
	Totals    []htmlRow
	Payment   []htmlRow
	Warnings  []string
}

func toHTML(inv *document.Invoice) (string, error) {
	var page htmlPage
	for _, sec := range markdownSections {
		var rows []htmlRow
		for _, f := range sec.fields {
			if v := inv.FieldValue(f.name); v != "" {
				rows = append(rows, htmlRow{f.label, v})
			}
		}
		if len(rows) > 0 {
			page.Sections = append(page.Sections, htmlSection{sec.title, rows})
		}
	}

	for _, it := range inv.LineItems {
		page.LineItems = append(page.LineItems, htmlItem{
			Description: it.Description,
			Excl:        formatMoney(it.AmountExclVAT, inv),
			Rate:        it.VATRate.StringFixed(2) + " %",
			VAT:         formatMoney(it.VATAmount, inv),
			Incl:        formatMoney(it.AmountInclVAT, inv),
		})
	}

	if inv.ExtractedTotal != nil {
		page.Totals = append(page.Totals, htmlRow{"Total", formatMoney(*inv.ExtractedTotal, inv)})
	}
	if inv.ExtractedVAT != nil {
		page.Totals = append(page.Totals, htmlRow{"VAT", formatMoney(*inv.ExtractedVAT, inv)})
	}
	if inv.ComputedTotal != nil {
		page.Totals = append(page.Totals, htmlRow{"Line-item sum", formatMoney(*inv.ComputedTotal, inv)})
	}

	for _, f := range []struct{ label, name string }{
		{"Bank account", constants.FieldBankAccount},
		{"KID", constants.FieldKID},
		{"Due date", constants.FieldDueDate},
	} {
		if v := inv.FieldValue(f.name); v != "" {
			page.Payment = append(page.Payment, htmlRow{f.label, v})
		}
	}

	for _, w := range inv.Warnings {
		line := w.Code
		if w.Field != "" {
			line += " (" + w.Field + ")"
		}
		page.Warnings = append(page.Warnings, line+": "+w.Message)
	}

	var b strings.Builder
	if err := htmlTemplate.Execute(&b, page); err != nil {
		return "", err
	}
	return b.String(), nil
}
