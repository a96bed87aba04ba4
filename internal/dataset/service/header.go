package service

import (
	"regexp"
	"sort"
	"strings"
)

var nonAlnum = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// normHeaderKey canonicalizes a header name: lower-case, NBSP variants
// to plain space, punctuation to space, collapsed whitespace. Scraped
// headers like "Performance(0 - 100 )KM/H" become comparable.
func normHeaderKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer("\u00A0", " ", "\u202F", " ").Replace(s)
	s = nonAlnum.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}

// resolveHeader finds the actual header for a requested column name.
// Alternatives may be given as "a|b|c". Resolution order: exact match,
// normalized match, substring containment (longest win), then fuzzy
// edit distance as a last resort for typos like "Horsepwoer".
func resolveHeader(rows []map[string]string, want string) string {
	want = strings.TrimSpace(want)
	if want == "" || len(rows) == 0 {
		return ""
	}
	rec := rows[0]

	alts := strings.Split(want, "|")
	for i := range alts {
		alts[i] = strings.TrimSpace(alts[i])
	}

	for _, a := range alts {
		if _, ok := rec[a]; ok {
			return a
		}
	}

	normAlts := make([]string, 0, len(alts))
	for _, a := range alts {
		if n := normHeaderKey(a); n != "" {
			normAlts = append(normAlts, n)
		}
	}
	if len(normAlts) == 0 {
		return ""
	}

	// map order is random; walk headers sorted so score ties always
	// resolve to the same (lexicographically smaller) header
	keys := make([]string, 0, len(rec))
	for k := range rec {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	bestKey, bestScore := "", 0
	var fuzzyKey string
	fuzzyBest := 0.0
	for _, k := range keys {
		nk := normHeaderKey(k)
		for _, n := range normAlts {
			if nk == n {
				return k
			}
			if strings.Contains(nk, n) || strings.Contains(n, nk) {
				if len(n) > bestScore {
					bestScore, bestKey = len(n), k
				}
			}
			if s := similarity(nk, n); s > fuzzyBest {
				fuzzyBest, fuzzyKey = s, k
			}
		}
	}
	if bestKey != "" {
		return bestKey
	}
	if fuzzyBest >= 0.8 {
		return fuzzyKey
	}
	return ""
}
