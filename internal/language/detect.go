package language

import "strings"

// keyword carries a vocabulary term and its weight. Field labels that only
// ever appear in one language score high; generic terms score low.
type keyword struct {
	term   string
	weight float64
}

// Curated per-language vocabularies: field labels, currency markers and
// month names as they appear on invoices. Matching is case-insensitive
// substring matching against the normalized text.
var vocabularies = map[Language][]keyword{
	Norwegian: {
		{"faktura", 3},
		{"fakturanr", 3},
		{"fakturadato", 3},
		{"forfallsdato", 3},
		{"kundenr", 2},
		{"beløp", 2},
		{"mva", 2},
		{"kid", 2},
		{"kontonummer", 2},
		{"organisasjonsnummer", 2},
		{"leveransedato", 2},
		{"org.nr", 1},
		{"prosjekt", 1},
		{"telefon", 1},
		{"kr", 1},
	},
	English: {
		{"invoice", 3},
		{"invoice number", 3},
		{"invoice date", 3},
		{"due date", 3},
		{"customer number", 2},
		{"amount", 2},
		{"vat", 2},
		{"tax", 2},
		{"account number", 2},
		{"delivery date", 2},
		{"reference", 1},
		{"project", 1},
		{"phone", 1},
		{"total", 1},
		{"usd", 1},
		{"$", 1},
	},
}

// weightTotals caches the maximum attainable score per language so a raw
// score can be expressed as a 0..1 coverage fraction.
var weightTotals = func() map[Language]float64 {
	totals := make(map[Language]float64, len(vocabularies))
	for lang, kws := range vocabularies {
		for _, kw := range kws {
			totals[lang] += kw.weight
		}
	}
	return totals
}()

// Detect classifies normalized text by weighted vocabulary scoring.
// Confidence is the winning language's matched weight as a fraction of its
// full vocabulary weight. Ties and confidence below threshold resolve to
// fallback. Deterministic for identical input and vocabulary version.
func Detect(text string, threshold float64, fallback Language) (Language, float64) {
	lower := strings.ToLower(text)

	score := func(lang Language) float64 {
		var s float64
		for _, kw := range vocabularies[lang] {
			if strings.Contains(lower, kw.term) {
				s += kw.weight
			}
		}
		return s
	}

	no := score(Norwegian)
	en := score(English)
	if no == en {
		return fallback, 0
	}

	winner, raw := Norwegian, no
	if en > no {
		winner, raw = English, en
	}
	conf := raw / weightTotals[winner]
	if conf < threshold {
		return fallback, conf
	}
	return winner, conf
}
