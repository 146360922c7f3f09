package serialize

import (
	"encoding/json"
	"encoding/xml"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/invoicemd/invoicemd/constants"
	"github.com/invoicemd/invoicemd/internal/common"
	"github.com/invoicemd/invoicemd/internal/document"
	"github.com/invoicemd/invoicemd/internal/fields"
	"github.com/invoicemd/invoicemd/internal/language"
	"github.com/invoicemd/invoicemd/internal/table"
)

func sampleInvoice() *document.Invoice {
	cands := []fields.Candidate{
		{Field: constants.FieldCompanyName, Value: "Byggmester Bob AS", RuleID: "no.company.letterhead"},
		{Field: constants.FieldOrgNumber, Value: "923930892", RuleID: "no.orgnr.registry"},
		{Field: constants.FieldCustomerName, Value: "Ola Nordmann", RuleID: "no.customer.name"},
		{Field: constants.FieldInvoiceNumber, Value: "1122", RuleID: "no.invoice.number"},
		{Field: constants.FieldInvoiceDate, Value: "15.01.2024", RuleID: "no.invoice.date"},
		{Field: constants.FieldBankAccount, Value: "1506.61.77553", RuleID: "no.bank.account"},
		{Field: constants.FieldKID, Value: "0112219", RuleID: "no.kid"},
		{Field: constants.FieldTotal, Value: "1 250,00", RuleID: "no.total.sum"},
	}
	tbl := table.Result{Rows: []table.Row{
		{Line: "a", Description: "Graving | fundament", Amounts: []string{"1 000,00", "250,00", "1 250,00"}},
	}}
	return document.NewBuilder(decimal.New(1, -2), "47").Build(language.Norwegian, 0.4, cands, tbl)
}

func emptyInvoice() *document.Invoice {
	return document.NewBuilder(decimal.New(1, -2), "47").Build(language.Norwegian, 0, nil, table.Result{})
}

func TestSerializeUnknownFormat(t *testing.T) {
	_, err := Serialize(sampleInvoice(), constants.OutputFormat("pdf"))
	if !errors.Is(err, common.ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestSerializeDeterministic(t *testing.T) {
	inv := sampleInvoice()
	for _, format := range constants.OutputFormats {
		a, err := Serialize(inv, format)
		if err != nil {
			t.Fatalf("%s: %v", format, err)
		}
		b, err := Serialize(inv, format)
		if err != nil {
			t.Fatalf("%s: %v", format, err)
		}
		if a != b {
			t.Errorf("%s output not deterministic", format)
		}
	}
}

func TestMarkdownSections(t *testing.T) {
	out, err := Serialize(sampleInvoice(), constants.FormatMarkdown)
	if err != nil {
		t.Fatal(err)
	}

	// fixed section order
	order := []string{"# Invoice", "## Company", "## Customer", "## Invoice", "## Line Items", "## Total", "## Payment"}
	last := -1
	for _, heading := range order {
		idx := strings.Index(out, heading)
		if idx < 0 {
			t.Errorf("missing %q", heading)
			continue
		}
		if idx < last {
			t.Errorf("%q out of order", heading)
		}
		last = idx
	}

	if !strings.Contains(out, "- **Name**: Byggmester Bob AS") {
		t.Error("company name missing")
	}
	if !strings.Contains(out, "- **Total**: 1 250,00") {
		t.Error("locale-formatted total missing")
	}
	// pipe in the description must be escaped inside the table
	if !strings.Contains(out, `Graving \| fundament`) {
		t.Error("pipe not escaped in line-item cell")
	}
	if strings.Contains(out, "## Project") {
		t.Error("empty section must be omitted")
	}
}

func TestMarkdownHeaderWithZeroRows(t *testing.T) {
	out, err := Serialize(emptyInvoice(), constants.FormatMarkdown)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "| Description | Excl. VAT | VAT rate | VAT | Incl. VAT |") {
		t.Error("line-item header must be emitted for zero rows")
	}
	if !strings.Contains(out, "## Warnings") {
		t.Error("table shortfall warning section missing")
	}
}

func TestJSONOutput(t *testing.T) {
	out, err := Serialize(sampleInvoice(), constants.FormatJSON)
	if err != nil {
		t.Fatal(err)
	}

	var doc struct {
		Language string `json:"language"`
		Company  struct {
			Name      string `json:"name"`
			OrgNumber string `json:"org_number"`
		} `json:"company"`
		Invoice struct {
			Number string `json:"number"`
			Date   string `json:"date"`
		} `json:"invoice"`
		LineItems []struct {
			AmountInclVAT string `json:"amount_incl_vat"`
		} `json:"line_items"`
		Totals struct {
			ExtractedTotal string `json:"extracted_total"`
			ComputedTotal  string `json:"computed_total"`
		} `json:"totals"`
		Fields []struct {
			Name  string `json:"name"`
			Value string `json:"value"`
		} `json:"fields"`
	}
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if doc.Language != "no" {
		t.Errorf("language: got %q", doc.Language)
	}
	if doc.Company.OrgNumber != "923930892" {
		t.Errorf("org_number: got %q", doc.Company.OrgNumber)
	}
	if doc.Invoice.Number != "1122" || doc.Invoice.Date != "2024-01-15" {
		t.Errorf("invoice details: %+v", doc.Invoice)
	}
	// machine formats carry plain fixed-point amounts
	if doc.Totals.ExtractedTotal != "1250.00" || doc.Totals.ComputedTotal != "1250.00" {
		t.Errorf("totals: %+v", doc.Totals)
	}
	if len(doc.LineItems) != 1 || doc.LineItems[0].AmountInclVAT != "1250.00" {
		t.Errorf("line items: %+v", doc.LineItems)
	}
	if len(doc.Fields) == 0 {
		t.Error("field audit list missing")
	}
}

func TestJSONEmptyDocumentPassesSchema(t *testing.T) {
	if _, err := Serialize(emptyInvoice(), constants.FormatJSON); err != nil {
		t.Errorf("empty document must serialize: %v", err)
	}
}

func TestYAMLOutput(t *testing.T) {
	out, err := Serialize(sampleInvoice(), constants.FormatYAML)
	if err != nil {
		t.Fatal(err)
	}
	var doc map[string]any
	if err := yaml.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if doc["language"] != "no" {
		t.Errorf("language: got %v", doc["language"])
	}
	if _, ok := doc["line_items"]; !ok {
		t.Error("line_items missing")
	}
}

func TestHTMLOutput(t *testing.T) {
	out, err := Serialize(sampleInvoice(), constants.FormatHTML)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "<!DOCTYPE html>") {
		t.Error("missing doctype")
	}

	// same fixed section order as the markdown renderer
	order := []string{"<h2>Company</h2>", "<h2>Customer</h2>", "<h2>Invoice</h2>", "<h2>Line Items</h2>", "<h2>Total</h2>", "<h2>Payment</h2>"}
	last := -1
	for _, heading := range order {
		idx := strings.Index(out, heading)
		if idx < 0 {
			t.Errorf("missing %q", heading)
			continue
		}
		if idx < last {
			t.Errorf("%q out of order", heading)
		}
		last = idx
	}

	if !strings.Contains(out, "<tr><td>Invoice number</td><td>1122</td></tr>") {
		t.Error("invoice number row missing")
	}
	if !strings.Contains(out, "<td>Graving | fundament</td>") {
		t.Error("line-item description missing")
	}
	if !strings.Contains(out, "<tr><td>Total</td><td>1 250,00</td></tr>") {
		t.Error("locale-formatted total missing")
	}
}

func TestHTMLEscapesMarkup(t *testing.T) {
	cands := []fields.Candidate{
		{Field: constants.FieldCompanyName, Value: "Bob <AS> & Sønn", RuleID: "no.company.letterhead"},
	}
	inv := document.NewBuilder(decimal.New(1, -2), "47").Build(language.Norwegian, 0.4, cands, table.Result{})

	out, err := Serialize(inv, constants.FormatHTML)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out, "<AS>") {
		t.Error("field value injected unescaped markup")
	}
	if !strings.Contains(out, "Bob &lt;AS&gt; &amp; Sønn") {
		t.Error("escaped company name missing")
	}
}

func TestXMLOutput(t *testing.T) {
	out, err := Serialize(sampleInvoice(), constants.FormatXML)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, xml.Header) {
		t.Error("missing xml declaration")
	}

	var doc struct {
		XMLName  xml.Name `xml:"invoice"`
		Language string   `xml:"language"`
		Company  struct {
			Name string `xml:"name"`
		} `xml:"company"`
	}
	if err := xml.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("output is not valid XML: %v", err)
	}
	if doc.Language != "no" {
		t.Errorf("language: got %q", doc.Language)
	}
	if doc.Company.Name != "Byggmester Bob AS" {
		t.Errorf("company name: got %q", doc.Company.Name)
	}
}
