package normalize

import "strings"

// ExtractMean scans a cell for every numeric token (optionally k/M
// suffixed) and returns their arithmetic mean. Meant for spec columns
// that embed several numbers in one cell ("155 - 220 Nm", "300-350").
//
// Commas become token separators here, unlike ParsePrice where they are
// thousands separators. "1,500" is one token worth 1500 as a price but
// two tokens averaging 250.5 on this path. Both behaviors are load-
// bearing for existing datasets; keep them apart.
func ExtractMean(cell any) (float64, bool) {
	s, ok := asString(cell)
	if !ok {
		return 0, false
	}
	s = strings.ReplaceAll(s, ",", " ")

	sum, n := 0.0, 0
	for _, tok := range reNumToken.FindAllString(s, -1) {
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
