package validate

import (
	"fmt"
	"strings"
)

var (
	orgWeights     = []int{3, 2, 7, 6, 5, 4, 3, 2}
	accountWeights = []int{5, 4, 3, 2, 7, 6, 5, 4, 3, 2}
)

// mod11Check verifies a weighted modulo-11 control digit over digits.
// A remainder yielding control digit 10 is invalid by definition.
func mod11Check(digits string, weights []int) bool {
	sum := 0
	for i, w := range weights {
		sum += w * int(digits[i]-'0')
	}
	control := (11 - sum%11) % 11
	if control == 10 {
		return false
	}
	return control == int(digits[len(digits)-1]-'0')
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// OrgNumber validates a Norwegian organization number: nine digits with a
// weighted modulo-11 checksum. Accepts the registry forms seen on invoices
// ("NO 923 930 892 MVA", "923930892") and normalizes to bare digits.
func OrgNumber(raw string) Result {
	s := strings.ToUpper(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, "NO", "")
	s = strings.ReplaceAll(s, "MVA", "")
	digits := digitsOnly(s)
	if len(digits) != 9 {
		return invalid(raw, fmt.Sprintf("expected 9 digits, got %d", len(digits)))
	}
	if !mod11Check(digits, orgWeights) {
		return invalid(digits, "mod-11 checksum failed")
	}
	return valid(digits, digits != raw)
}

// AccountNumber validates a Norwegian bank account number: eleven digits
// with a weighted modulo-11 checksum. Normalizes to the canonical
// NNNN.NN.NNNNN form.
func AccountNumber(raw string) Result {
	digits := digitsOnly(raw)
	if len(digits) != 11 {
		return invalid(raw, fmt.Sprintf("expected 11 digits, got %d", len(digits)))
	}
	if !mod11Check(digits, accountWeights) {
		return invalid(digits, "mod-11 checksum failed")
	}
	formatted := digits[:4] + "." + digits[4:6] + "." + digits[6:]
	return valid(formatted, formatted != raw)
}

// KID validates a Norwegian structured payment reference using the
// modulo-10 (Luhn) checksum. KIDs are 2-25 digits including the control.
func KID(raw string) Result {
	digits := digitsOnly(raw)
	if len(digits) < 2 || len(digits) > 25 {
		return invalid(raw, fmt.Sprintf("expected 2-25 digits, got %d", len(digits)))
	}
	if !luhnCheck(digits) {
		return invalid(digits, "mod-10 checksum failed")
	}
	return valid(digits, digits != raw)
}

// luhnCheck verifies a Luhn mod-10 control digit: doubling every second
// digit from the right, summing digit values.
func luhnCheck(digits string) bool {
	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

// PostalCode validates a Norwegian postal code: four digits, not 0000.
func PostalCode(raw string) Result {
	digits := digitsOnly(raw)
	if len(digits) != 4 || digits == "0000" {
		return invalid(raw, "expected 4 digits")
	}
	return valid(digits, digits != raw)
}
