// Package fields pulls candidate values for the canonical invoice fields
// out of normalized OCR text, using ordered per-language rule tables.
package fields

import (
	"strings"

	"github.com/invoicemd/invoicemd/constants"
	"github.com/invoicemd/invoicemd/internal/language"
	"github.com/invoicemd/invoicemd/internal/ocr"
)

// Candidate is one extracted value for a field, before validation.
type Candidate struct {
	Field  string
	Value  string
	RuleID string
	Box    *ocr.Box
}

// Rule is one extraction attempt: a pure function from normalized text to
// zero or one raw value. Rules for the same field are evaluated in table
// order; the first hit wins unless a later rule carries a strictly higher
// priority. Rules must anchor on labels or structure, never on absolute
// position, because OCR reflow reorders lines.
type Rule struct {
	ID       string
	Field    string
	Priority int
	Extract  func(text string) string
}

func rulesFor(lang language.Language) []Rule {
	if lang == language.English {
		return englishRules
	}
	return norwegianRules
}

// Extract applies the language's rule table and returns at most one
// candidate per field, in canonical field order. Fields with no hit are
// absent from the result, never present-but-empty.
func Extract(text string, lang language.Language, boxes []ocr.Box) []Candidate {
	type pick struct {
		cand     Candidate
		priority int
	}
	picked := make(map[string]pick)

	for _, r := range rulesFor(lang) {
		if prev, ok := picked[r.Field]; ok && prev.priority >= r.Priority {
			continue
		}
		v := strings.TrimSpace(r.Extract(text))
		if v == "" {
			continue
		}
		picked[r.Field] = pick{
			cand:     Candidate{Field: r.Field, Value: v, RuleID: r.ID, Box: findBox(boxes, v)},
			priority: r.Priority,
		}
	}

	out := make([]Candidate, 0, len(picked))
	for _, name := range constants.FieldNames {
		if p, ok := picked[name]; ok {
			out = append(out, p.cand)
		}
	}
	return out
}

// findBox attaches the first box whose fragment appears in the extracted
// value, giving callers a coarse source location when layout data exists.
func findBox(boxes []ocr.Box, value string) *ocr.Box {
	first, _, _ := strings.Cut(value, " ")
	if first == "" {
		return nil
	}
	for i := range boxes {
		if boxes[i].Text == first {
			return &boxes[i]
		}
	}
	return nil
}
