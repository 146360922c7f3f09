// Package table detects the line-item region of an invoice and segments it
// into rows without relying on explicit delimiters. Candidate rows are
// validated against a minimal grammar; rejected rows are kept with a reason
// so callers can audit recall loss instead of guessing at it.
package table

import (
	"regexp"
	"sort"
	"strings"

	"github.com/invoicemd/invoicemd/internal/ocr"
)

// Row is one accepted line-item row: a description followed by the
// monetary cells that matched the row grammar.
type Row struct {
	Line        string
	Description string
	Amounts     []string
}

// Dropped records a candidate row that failed the row grammar.
type Dropped struct {
	Line   string
	Reason string
}

// Result is the extractor output: rows in document order plus the audit
// trail of rejected candidates.
type Result struct {
	Rows    []Row
	Dropped []Dropped
}

var (
	reCellSplit = regexp.MustCompile(`\s{2,}`)
	// a monetary-looking token: a separator-grouped or ungrouped integer
	// part with an optional decimal part and currency marker. Ungrouped
	// runs must be admitted because normalization strips dot and comma
	// thousand separators ("1.250,00" arrives here as "1250,00").
	reAmount = regexp.MustCompile(`(?i)^(?:kr|nok)?\s*(?:[0-9]{1,3}(?:[ .,][0-9]{3})*|[0-9]{4,})(?:[.,][0-9]{1,2})?\s*(?:kr\.?|nok|,-)?$`)
)

// Extract segments normalized text (and boxes, when available) into
// line-item rows. A single-row table is valid; detection never requires a
// minimum row count.
func Extract(text string, boxes []ocr.Box) Result {
	lines := strings.Split(text, "\n")
	if len(boxes) > 0 {
		// box text comes straight from the OCR engine and bypasses the
		// document normalizer, so the reconstructed lines get the same
		// cleanup before the row grammar sees them
		lines = linesFromBoxes(boxes)
		for i := range lines {
			lines[i] = ocr.Normalize(lines[i])
		}
	}

	var res Result
	for _, line := range lines {
		cells := splitCells(line)
		if len(cells) < 2 {
			continue
		}
		amounts := trailingAmounts(cells)
		if len(amounts) == 0 {
			continue // header or prose line, not a candidate
		}

		desc := strings.TrimSpace(strings.Join(cells[:len(cells)-len(amounts)], " "))
		switch {
		case desc == "":
			res.Dropped = append(res.Dropped, Dropped{Line: line, Reason: "no description cell"})
		case len(amounts) == 1:
			res.Dropped = append(res.Dropped, Dropped{Line: line, Reason: "only one monetary cell"})
		case len(amounts) > 4:
			res.Dropped = append(res.Dropped, Dropped{Line: line, Reason: "more than four monetary cells"})
		default:
			res.Rows = append(res.Rows, Row{Line: line, Description: desc, Amounts: amounts})
		}
	}
	return res
}

// splitCells splits a line into cells by pipe, run-of-spaces, or tab, in
// that order of preference.
func splitCells(line string) []string {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	var parts []string
	switch {
	case strings.Contains(line, "|"):
		parts = strings.Split(line, "|")
	case strings.Contains(line, "\t"):
		parts = strings.Split(line, "\t")
	default:
		parts = reCellSplit.Split(line, -1)
	}
	cells := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			cells = append(cells, p)
		}
	}
	return cells
}

// trailingAmounts returns the run of monetary-looking cells at the end of
// the row. The row grammar only admits amounts in trailing position;
// a quantity column inside the description stays with the description.
func trailingAmounts(cells []string) []string {
	i := len(cells)
	for i > 0 && reAmount.MatchString(cells[i-1]) {
		i--
	}
	return cells[i:]
}

// linesFromBoxes reassembles text lines from layout boxes: fragments are
// bucketed into rows by vertical overlap per page, ordered left to right,
// and joined with a double space wherever the horizontal gap exceeds the
// line height, so column breaks survive as cell delimiters.
func linesFromBoxes(boxes []ocr.Box) []string {
	sorted := make([]ocr.Box, len(boxes))
	copy(sorted, boxes)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Page != sorted[j].Page {
			return sorted[i].Page < sorted[j].Page
		}
		return sorted[i].Top < sorted[j].Top
	})

	var rows [][]ocr.Box
	for _, b := range sorted {
		if b.Text == "" {
			continue
		}
		placed := false
		if n := len(rows); n > 0 {
			last := rows[n-1]
			ref := last[0]
			if b.Page == ref.Page && overlaps(b, ref) {
				rows[n-1] = append(last, b)
				placed = true
			}
		}
		if !placed {
			rows = append(rows, []ocr.Box{b})
		}
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		sort.SliceStable(row, func(i, j int) bool { return row[i].Left < row[j].Left })
		var b strings.Builder
		for i, box := range row {
			if i > 0 {
				prev := row[i-1]
				if box.Left-(prev.Left+prev.Width) > box.Height {
					b.WriteString("  ")
				} else {
					b.WriteString(" ")
				}
			}
			b.WriteString(box.Text)
		}
		lines = append(lines, b.String())
	}
	return lines
}

// overlaps reports whether two boxes share enough vertical extent to sit on
// the same text line.
func overlaps(a, b ocr.Box) bool {
	top := max(a.Top, b.Top)
	bottom := min(a.Top+a.Height, b.Top+b.Height)
	h := min(a.Height, b.Height)
	if h <= 0 {
		return a.Top == b.Top
	}
	return (bottom-top)*2 >= h
}
