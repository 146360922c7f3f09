// Package document defines the canonical invoice record assembled from
// extraction and validation results, and the builder that is its single
// mutation point.
package document

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/invoicemd/invoicemd/internal/language"
)

// Field is one validated invoice field. A field is either absent from the
// document, present-unvalidated (Valid == nil, no checker exists for it),
// or present-validated (Valid reports the checker outcome). Corrections are
// recorded, never applied silently: Corrected is true whenever Value
// differs from Raw.
type Field struct {
	Name      string
	Raw       string
	Value     string
	Valid     *bool
	Corrected bool
	RuleID    string
}

// LineItem is one row of the itemized charges. All monetary values are
// exact fixed-point decimals; floats would drift under VAT arithmetic.
type LineItem struct {
	Description   string
	AmountExclVAT decimal.Decimal
	VATRate       decimal.Decimal
	VATAmount     decimal.Decimal
	AmountInclVAT decimal.Decimal
}

// Warning records one recoverable defect found during assembly.
type Warning struct {
	Code    string
	Field   string
	Message string
}

// Invoice is the single exported artifact of a pipeline run. It owns every
// field, line item, and warning it holds, and is immutable once the builder
// returns it.
type Invoice struct {
	ID                 uuid.UUID
	Language           language.Language
	LanguageConfidence float64

	fields    map[string]Field
	LineItems []LineItem

	// ExtractedTotal is the independently extracted total field, when one
	// parsed; ComputedTotal is the line-item sum including VAT, when line
	// items exist. Both are kept even when they disagree. ExtractedVAT is
	// the parsed standalone VAT amount field, when present.
	ExtractedTotal *decimal.Decimal
	ComputedTotal  *decimal.Decimal
	ExtractedVAT   *decimal.Decimal

	Warnings []Warning
}

// Field returns the named field, reporting whether it is present.
func (inv *Invoice) Field(name string) (Field, bool) {
	f, ok := inv.fields[name]
	return f, ok
}

// FieldValue returns the normalized value of the named field, or "" when
// the field is absent.
func (inv *Invoice) FieldValue(name string) string {
	return inv.fields[name].Value
}

// HasField reports whether the named field was extracted.
func (inv *Invoice) HasField(name string) bool {
	_, ok := inv.fields[name]
	return ok
}
