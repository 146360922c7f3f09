package validate

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/invoicemd/invoicemd/internal/language"
)

// Accepted date layouts per language, tried in order; first match wins.
// Ambiguous numeric dates resolve day-first for Norwegian and month-first
// for English, which is what the layout ordering encodes.
var dateLayouts = map[language.Language][]string{
	language.Norwegian: {
		"02.01.2006",
		"2006-01-02",
		"02/01/2006",
		"02-01-2006",
		"2. January 2006",
	},
	language.English: {
		"2006-01-02",
		"01/02/2006",
		"Jan 2, 2006",
		"January 2, 2006",
		"02 Jan 2006",
	},
}

// Norwegian month names mapped onto the English forms time.Parse
// understands, so the written-out layout works for dates like
// "15. januar 2024".
var norwegianMonths = map[string]string{
	"januar":    "January",
	"februar":   "February",
	"mars":      "March",
	"april":     "April",
	"mai":       "May",
	"juni":      "June",
	"juli":      "July",
	"august":    "August",
	"september": "September",
	"oktober":   "October",
	"november":  "November",
	"desember":  "December",
}

var reNorwegianMonth = regexp.MustCompile(`(?i)\b(januar|februar|mars|april|mai|juni|juli|august|september|oktober|november|desember)\b`)

// Date parses a date string against the language's accepted layouts and
// returns the parsed time plus its canonical ISO form (YYYY-MM-DD).
func Date(raw string, lang language.Language) (time.Time, string, error) {
	s := strings.TrimSpace(raw)
	layouts := dateLayouts[lang]
	if layouts == nil {
		layouts = dateLayouts[language.Norwegian]
	}
	if lang != language.English {
		s = reNorwegianMonth.ReplaceAllStringFunc(s, func(m string) string {
			return norwegianMonths[strings.ToLower(m)]
		})
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, t.Format("2006-01-02"), nil
		}
	}
	return time.Time{}, "", fmt.Errorf("no accepted layout for date %q", raw)
}
