package validate

import (
	"fmt"
	"strings"
)

// Phone normalizes a phone number to canonical international form when a
// recognizable national pattern matches: "+CC NN NN NN NN" for 8-digit
// subscriber numbers, "+CC NNN NN NN N" for 9-digit mobile blocks. The
// country code comes from configuration and defaults to Norway (47).
// Anything else is returned as extracted with Valid=false.
func Phone(raw, countryCode string) Result {
	cc := digitsOnly(countryCode)
	if cc == "" {
		cc = "47"
	}
	digits := digitsOnly(raw)

	// strip country prefix variants: +CC, 00CC, bare CC on an 8-digit
	// subscriber number
	switch {
	case strings.HasPrefix(digits, "00"+cc):
		digits = digits[2+len(cc):]
	case strings.HasPrefix(digits, cc) && len(digits) == len(cc)+8:
		digits = digits[len(cc):]
	}

	switch len(digits) {
	case 8:
		formatted := fmt.Sprintf("+%s %s %s %s %s", cc, digits[:2], digits[2:4], digits[4:6], digits[6:])
		return valid(formatted, formatted != raw)
	case 9:
		formatted := fmt.Sprintf("+%s %s %s %s %s", cc, digits[:3], digits[3:5], digits[5:7], digits[7:])
		return valid(formatted, formatted != raw)
	}
	return invalid(strings.TrimSpace(raw), fmt.Sprintf("no national pattern for %d digits", len(digits)))
}
