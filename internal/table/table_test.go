package table

import (
	"reflect"
	"testing"

	"github.com/invoicemd/invoicemd/internal/ocr"
)

func TestExtractRows(t *testing.T) {
	text := `Byggmester Bob AS
Fakturanummer: 1122

Beskrivelse  Eks. mva  MVA  Inkl. mva
Graving og fundament  10 000,00  2 500,00  12 500,00
Frakt av masser  800,00  200,00  1 000,00

Totalsum: 13 500,00`

	res := Extract(text, nil)

	if len(res.Rows) != 2 {
		t.Fatalf("rows: got %d, want 2 (%+v)", len(res.Rows), res)
	}
	if res.Rows[0].Description != "Graving og fundament" {
		t.Errorf("row 0 description: got %q", res.Rows[0].Description)
	}
	if got := res.Rows[0].Amounts; len(got) != 3 || got[0] != "10 000,00" || got[2] != "12 500,00" {
		t.Errorf("row 0 amounts: got %v", got)
	}
	if res.Rows[1].Description != "Frakt av masser" {
		t.Errorf("row 1 description: got %q", res.Rows[1].Description)
	}
	if len(res.Dropped) != 0 {
		t.Errorf("unexpected dropped rows: %+v", res.Dropped)
	}
}

func TestExtractPipeDelimited(t *testing.T) {
	res := Extract("Grunnarbeid | 10 000,00 | 12 500,00", nil)
	if len(res.Rows) != 1 {
		t.Fatalf("rows: got %d, want 1", len(res.Rows))
	}
	if res.Rows[0].Description != "Grunnarbeid" {
		t.Errorf("description: got %q", res.Rows[0].Description)
	}
	if len(res.Rows[0].Amounts) != 2 {
		t.Errorf("amounts: got %v", res.Rows[0].Amounts)
	}
}

func TestExtractSingleRowTable(t *testing.T) {
	res := Extract("Graving  5 000,00  6 250,00", nil)
	if len(res.Rows) != 1 {
		t.Fatalf("a single-row table must be accepted, got %+v", res)
	}
}

func TestExtractDroppedReasons(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		reason string
	}{
		{"no description", "1 000,00  2 000,00", "no description cell"},
		{"single amount", "Frakt av masser  100,00", "only one monetary cell"},
		{"too many amounts", "X  1,00  2,00  3,00  4,00  5,00", "more than four monetary cells"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Extract(tt.line, nil)
			if len(res.Rows) != 0 {
				t.Fatalf("line accepted unexpectedly: %+v", res.Rows)
			}
			if len(res.Dropped) != 1 {
				t.Fatalf("dropped: got %d, want 1", len(res.Dropped))
			}
			if res.Dropped[0].Reason != tt.reason {
				t.Errorf("reason: got %q, want %q", res.Dropped[0].Reason, tt.reason)
			}
		})
	}
}

func TestExtractIgnoresProse(t *testing.T) {
	text := "Takk for oppdraget.\nVennligst betal innen forfallsdato.\nKontakt oss  ved spørsmål"
	res := Extract(text, nil)
	if len(res.Rows) != 0 || len(res.Dropped) != 0 {
		t.Errorf("prose produced table output: %+v", res)
	}
}

// Normalization strips dot and comma thousand separators, so the row
// grammar must accept ungrouped integer runs like "1250,00".
func TestExtractUngroupedAmounts(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		amounts []string
	}{
		{
			name:    "normalized dot grouping",
			text:    ocr.Normalize("Graving og fundament  1.250,00  312,50  1.562,50"),
			amounts: []string{"1250,00", "312,50", "1562,50"},
		},
		{
			name:    "ungrouped from the source",
			text:    "Konsulentbistand  1250,00  1562,50",
			amounts: []string{"1250,00", "1562,50"},
		},
		{
			name:    "ungrouped without decimals",
			text:    "Rigg og drift  12500  15625",
			amounts: []string{"12500", "15625"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Extract(tt.text, nil)
			if len(res.Rows) != 1 {
				t.Fatalf("rows: got %d, want 1 (dropped: %+v)", len(res.Rows), res.Dropped)
			}
			if got := res.Rows[0].Amounts; !reflect.DeepEqual(got, tt.amounts) {
				t.Errorf("amounts: got %v, want %v", got, tt.amounts)
			}
		})
	}
}

// Normalization reaches a fixed point, so extracting from re-normalized
// text must recover the same rows.
func TestExtractStableAfterRenormalize(t *testing.T) {
	raw := "Beskrivelse\tEks. mva\tInkl. mva\r\nGraving og fundament\t10 000,00\t12 500,00\nFrakt av masser  800,00  1 000,00"

	norm := ocr.Normalize(raw)
	first := Extract(norm, nil)
	second := Extract(ocr.Normalize(norm), nil)

	if !reflect.DeepEqual(first.Rows, second.Rows) {
		t.Errorf("rows changed after re-normalization:\nfirst  %+v\nsecond %+v", first.Rows, second.Rows)
	}
	if len(first.Rows) != 2 {
		t.Errorf("rows: got %d, want 2 (%+v)", len(first.Rows), first)
	}
}

func TestExtractFromBoxes(t *testing.T) {
	// two columns on one visual line; the x gap exceeds the line height so
	// the join must produce a cell delimiter
	boxes := []ocr.Box{
		{Text: "Graving", Page: 1, Left: 0, Top: 100, Width: 70, Height: 12, Conf: 90},
		{Text: "950,00", Page: 1, Left: 200, Top: 101, Width: 60, Height: 12, Conf: 92},
		{Text: "990,00", Page: 1, Left: 320, Top: 100, Width: 60, Height: 12, Conf: 92},
		{Text: "Totalsum", Page: 1, Left: 0, Top: 130, Width: 80, Height: 12, Conf: 95},
	}
	res := Extract("", boxes)

	if len(res.Rows) != 1 {
		t.Fatalf("rows: got %d, want 1 (%+v)", len(res.Rows), res)
	}
	if res.Rows[0].Description != "Graving" {
		t.Errorf("description: got %q", res.Rows[0].Description)
	}
	if got := res.Rows[0].Amounts; len(got) != 2 || got[0] != "950,00" || got[1] != "990,00" {
		t.Errorf("amounts: got %v", got)
	}
}

// OCR confusion characters in box text must be repaired before the row
// grammar runs, matching what the text path sees after normalization.
func TestExtractFromBoxesNormalizesText(t *testing.T) {
	boxes := []ocr.Box{
		{Text: "Montering", Page: 1, Left: 0, Top: 100, Width: 80, Height: 12, Conf: 90},
		{Text: "2 50O,00", Page: 1, Left: 200, Top: 100, Width: 60, Height: 12, Conf: 74},
		{Text: "3 125,00", Page: 1, Left: 320, Top: 101, Width: 60, Height: 12, Conf: 92},
	}
	res := Extract("", boxes)

	if len(res.Rows) != 1 {
		t.Fatalf("rows: got %d, want 1 (dropped: %+v)", len(res.Rows), res.Dropped)
	}
	if got := res.Rows[0].Amounts; len(got) != 2 || got[0] != "2 500,00" || got[1] != "3 125,00" {
		t.Errorf("amounts: got %v", got)
	}
}
