// Package validate holds the per-field checkers: Norwegian registry and
// payment checksums, currency parsing, phone and date normalization.
//
// Every checker is a pure function. Checkers never return an error that
// should abort document assembly; they report (possibly corrected value,
// validity, reason) so the caller can degrade gracefully and keep an audit
// trail of what was changed.
package validate

// Result is the outcome of a single field check.
type Result struct {
	Value     string // normalized value, or the raw input when unusable
	Valid     bool
	Corrected bool   // normalization changed the raw input
	Reason    string // empty when valid
}

func valid(value string, corrected bool) Result {
	return Result{Value: value, Valid: true, Corrected: corrected}
}

func invalid(value, reason string) Result {
	return Result{Value: value, Reason: reason}
}
