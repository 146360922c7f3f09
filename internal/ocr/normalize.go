package ocr

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	reCRLF       = regexp.MustCompile(`\r\n?`)
	reTabs       = regexp.MustCompile(`\t+`)
	reMultiBlank = regexp.MustCompile(`\n{3,}`)
	reSymbols    = regexp.MustCompile(`[®©™]`)
	reCurrency   = regexp.MustCompile(`([0-9])(kr\.?|NOK)`)
)

// confusionFixes repairs OCR character swaps, but only where a digit sits
// next to the suspect character. The set is deliberately small; each entry
// is a documented configuration choice, not an attempt at full parity with
// any particular OCR engine.
var confusionFixes = []struct {
	re   *regexp.Regexp
	repl string
}{
	{regexp.MustCompile(`l([0-9])`), "1$1"},            // l before digits is probably 1
	{regexp.MustCompile(`([0-9])l`), "${1}1"},          // and after
	{regexp.MustCompile(`O([0-9])`), "0$1"},            // O before digits is probably 0
	{regexp.MustCompile(`([0-9])O`), "${1}0"},          // and after
	{regexp.MustCompile(`I([0-9]{2})`), "1$1"},         // I directly before a digit run
	{regexp.MustCompile(`([0-9])S([0-9])`), "${1}5$2"}, // S between digits is probably 5
}

// separatorFixes strips unambiguous thousand separators: a comma or dot
// between a digit and exactly three digits ending at a token boundary.
// Decimal separators (one or two trailing digits) are left alone; the
// currency parser resolves those per locale.
var separatorFixes = []struct {
	re   *regexp.Regexp
	repl string
}{
	{regexp.MustCompile(`([0-9]),([0-9]{3})([^0-9]|$)`), "$1$2$3"},
	{regexp.MustCompile(`([0-9])\.([0-9]{3})([^0-9]|$)`), "$1$2$3"},
}

// Normalize cleans raw OCR text: Unicode NFC, line-ending and blank-line
// collapsing, conservative digit-adjacent confusion fixes, thousand
// separator stripping, and currency token spacing.
//
// Runs of two or more spaces inside a line are preserved: they encode the
// column structure the table extractor clusters on. Pure and idempotent;
// never fails, worst case returns the input unchanged.
func Normalize(s string) string {
	if s == "" {
		return s
	}
	s = norm.NFC.String(s)
	s = reCRLF.ReplaceAllString(s, "\n")
	s = reTabs.ReplaceAllString(s, "  ")
	s = reSymbols.ReplaceAllString(s, "")
	s = reMultiBlank.ReplaceAllString(s, "\n\n")

	for _, f := range confusionFixes {
		s = f.re.ReplaceAllString(s, f.repl)
	}
	// non-overlapping matches miss back-to-back groups ("1,234,567"),
	// so run to a fixed point
	for _, f := range separatorFixes {
		for {
			next := f.re.ReplaceAllString(s, f.repl)
			if next == s {
				break
			}
			s = next
		}
	}
	s = reCurrency.ReplaceAllString(s, "$1 $2")

	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
