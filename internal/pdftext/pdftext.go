// Package pdftext pulls embedded text out of digitally created PDFs so an
// invoice never has to round-trip through an OCR engine when the text layer
// is already there.
package pdftext

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/invoicemd/invoicemd/internal/ocr"
)

// columnGap is the X distance, in PDF points, between adjacent fragments on
// the same row beyond which they are treated as separate table cells.
const columnGap = 15

// Extract reads the text layer of a PDF and returns it as pipeline input.
// Fragment positions are carried over as boxes (confidence -1, positions in
// PDF points rounded to integers). The library panics on some malformed
// files, so the whole extraction runs under a recover.
func Extract(filePath string) (raw ocr.RawText, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf extraction crashed: %v", r)
		}
	}()

	f, r, err := pdf.Open(filePath)
	if err != nil {
		return ocr.RawText{}, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	numPages := r.NumPage()
	if numPages == 0 {
		return ocr.RawText{}, fmt.Errorf("pdf has no pages")
	}

	var pages []string
	var boxes []ocr.Box
	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, pageBoxes := extractPage(page, i)
		if text != "" {
			pages = append(pages, text)
			boxes = append(boxes, pageBoxes...)
		}
	}

	joined := strings.Join(pages, "\n\n")
	if strings.TrimSpace(joined) == "" {
		// no text layer at all, fall back to the library's plain reader
		joined = plainText(r)
	}
	if strings.TrimSpace(joined) == "" {
		return ocr.RawText{}, fmt.Errorf("no text layer found; the pdf is likely scanned")
	}
	return ocr.RawText{Text: joined, Boxes: boxes}, nil
}

// extractPage reconstructs reading order from the page's positioned text
// fragments: group by Y into rows, sort rows top to bottom, sort fragments
// left to right, and widen column gaps to a double space so downstream cell
// splitting can see them.
func extractPage(page pdf.Page, pageNum int) (string, []ocr.Box) {
	content := page.Content()
	if len(content.Text) == 0 {
		return "", nil
	}

	type fragment struct {
		x, y, w, h float64
		s          string
	}
	rowMap := make(map[int][]fragment)
	for _, t := range content.Text {
		if strings.TrimSpace(t.S) == "" {
			continue
		}
		yKey := int(math.Round(t.Y))
		rowMap[yKey] = append(rowMap[yKey], fragment{x: t.X, y: t.Y, w: t.W, h: t.FontSize, s: t.S})
	}

	// PDF Y runs bottom to top
	yKeys := make([]int, 0, len(rowMap))
	for y := range rowMap {
		yKeys = append(yKeys, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(yKeys)))

	var lines []string
	var boxes []ocr.Box
	for _, y := range yKeys {
		frags := rowMap[y]
		sort.Slice(frags, func(a, b int) bool { return frags[a].x < frags[b].x })

		var parts []string
		var prevEnd float64
		for j, fr := range frags {
			if j > 0 && fr.x-prevEnd > columnGap {
				parts = append(parts, "  ")
			}
			parts = append(parts, fr.s)
			prevEnd = fr.x + fr.w
			boxes = append(boxes, ocr.Box{
				Text:   fr.s,
				Page:   pageNum,
				Left:   int(math.Round(fr.x)),
				Top:    int(math.Round(fr.y)),
				Width:  int(math.Round(fr.w)),
				Height: int(math.Round(fr.h)),
				Conf:   -1,
			})
		}
		line := strings.TrimRight(strings.Join(parts, ""), " ")
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n"), boxes
}

func plainText(r *pdf.Reader) string {
	reader, err := r.GetPlainText()
	if err != nil {
		return ""
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
