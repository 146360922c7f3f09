package validate

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/invoicemd/invoicemd/internal/language"
)

var currencyTokens = strings.NewReplacer(
	"NOK", "", "nok", "",
	"kr.", "", "kr", "", "Kr", "", "KR", "",
	"$", "", "£", "", "€", "",
	" ", " ", // non-breaking space
)

// Amount parses a monetary string into an exact decimal using the detected
// language's separator convention. Norwegian uses comma decimals with space
// or dot grouping; English uses dot decimals with comma grouping. Negative
// amounts are rejected.
func Amount(raw string, lang language.Language) (decimal.Decimal, error) {
	s := strings.TrimSpace(currencyTokens.Replace(raw))
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return decimal.Decimal{}, fmt.Errorf("empty amount %q", raw)
	}
	switch lang {
	case language.English:
		s = strings.ReplaceAll(s, ",", "")
	default:
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parse amount %q: %w", raw, err)
	}
	if d.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("negative amount %q", raw)
	}
	return d, nil
}

// FormatAmount renders an amount with two decimals in the language's
// convention: "5 000,00" for Norwegian, "5,000.00" for English.
func FormatAmount(d decimal.Decimal, lang language.Language) string {
	fixed := d.StringFixed(2)
	neg := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	parts := strings.SplitN(fixed, ".", 2)
	intPart, fracPart := parts[0], parts[1]

	var grouped strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			if lang == language.English {
				grouped.WriteByte(',')
			} else {
				grouped.WriteByte(' ')
			}
		}
		grouped.WriteRune(r)
	}

	out := grouped.String()
	if lang == language.English {
		out += "." + fracPart
	} else {
		out += "," + fracPart
	}
	if neg {
		out = "-" + out
	}
	return out
}
