// Package normalize converts messy, human-authored numeric and currency
// text from scraped tables into canonical float64 values. Every function
// is pure and never panics: any input it cannot make sense of comes back
// as (0, false) — the missing marker — so a malformed cell never aborts
// a batch.
package normalize

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Suffixed token grammar: "500", "1.2k", "3 M". Suffix k/K multiplies by
// a thousand, m/M by a million.
var reSuffixed = regexp.MustCompile(`^([0-9]*\.?[0-9]+)\s*([kKmM]?)$`)

// reNumToken finds a numeric token with an optional magnitude suffix
// anywhere inside a larger string ("approx 1.2k USD" -> "1.2k").
var reNumToken = regexp.MustCompile(`([0-9]*\.?[0-9]+\s*[kKmM]?)`)

// ParseSuffixed parses a single trimmed token with an optional k/M
// magnitude suffix. Tokens that don't fit the grammar get one more
// chance as a plain float ("1e3", "+7").
func ParseSuffixed(tok string) (float64, bool) {
	tok = strings.TrimSpace(tok)
	if tok == "" {
		return 0, false
	}
	m := reSuffixed.FindStringSubmatch(tok)
	if m == nil {
		f, err := strconv.ParseFloat(tok, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	}
	f, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	switch strings.ToLower(m[2]) {
	case "k":
		f *= 1_000
	case "m":
		f *= 1_000_000
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// asString unwraps a raw cell. Scraped cells arrive as any: absent
// columns are nil, JSON numbers float64, everything else string. Only
// strings carry text worth parsing; the rest is missing.
func asString(cell any) (string, bool) {
	s, ok := cell.(string)
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	return s, true
}
