package normalize

import "strings"

// currency glyphs stripped before price parsing; the comma is a
// thousands separator on this path, never a token delimiter.
var priceGlyphs = strings.NewReplacer(",", "", "$", "", "£", "", "€", "")

// ParsePrice turns a price-like cell into a best-effort USD-equivalent
// float. It strips currency glyphs and thousands commas, understands
// k/M shorthand ("$1.2k"), and treats a hyphenated value as a range,
// returning the midpoint of the endpoints ("$12,000-$15,000" -> 13500).
//
// A hyphen used for anything other than a range (an embedded date, a
// part code) still splits the string and the pieces get averaged; that
// is the documented contract, not an accident worth guessing around.
func ParsePrice(cell any) (float64, bool) {
	s, ok := asString(cell)
	if !ok {
		return 0, false
	}
	clean := priceGlyphs.Replace(s)

	if strings.Contains(clean, "-") {
		sum, n := 0.0, 0
		for _, part := range strings.Split(clean, "-") {
			if strings.TrimSpace(part) == "" {
				continue
			}
			tok := reNumToken.FindString(part)
			if tok == "" {
				continue
			}
			if v, ok := ParseSuffixed(strings.ReplaceAll(tok, " ", "")); ok {
				sum += v
				n++
			}
		}
		if n == 0 {
			return 0, false
		}
		return sum / float64(n), true
	}

	tok := reNumToken.FindString(clean)
	if tok == "" {
		return 0, false
	}
	return ParseSuffixed(strings.ReplaceAll(tok, " ", ""))
}
