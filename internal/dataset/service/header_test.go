package service

import "testing"

func TestResolveHeader(t *testing.T) {
	rows := []map[string]string{{
		"Cars Prices":               "",
		"HorsePower":                "",
		"CC/Battery Capacity":       "",
		"Performance(0 - 100 )KM/H": "",
	}}

	tests := []struct {
		want string
		key  string
	}{
		{"Cars Prices", "Cars Prices"},                          // exact
		{"Cars Prices", "cars prices"},                          // normalized
		{"CC/Battery Capacity", "cc battery capacity"},          // punctuation-insensitive
		{"Performance(0 - 100 )KM/H", "performance 0 100 km h"}, // messy scraped header
		{"HorsePower", "Power|HorsePower"},                      // alternatives
		{"HorsePower", "horsepwoer"},                            // typo, fuzzy rescue
		{"Cars Prices", "prices"},                               // substring
		{"", "Torque"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := resolveHeader(rows, tt.key); got != tt.want {
			t.Errorf("resolveHeader(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

// Equal scores must not flip winners with map iteration order: the
// lexicographically smaller header wins a tie, run after run.
func TestResolveHeaderTies(t *testing.T) {
	rows := []map[string]string{{"Price B": "", "Price A": ""}}
	for i := 0; i < 20; i++ {
		if got := resolveHeader(rows, "price"); got != "Price A" {
			t.Fatalf("containment tie resolved to %q, want Price A", got)
		}
	}

	rows = []map[string]string{{"seatb": "", "seata": ""}}
	for i := 0; i < 20; i++ {
		if got := resolveHeader(rows, "seatz"); got != "seata" {
			t.Fatalf("fuzzy tie resolved to %q, want seata", got)
		}
	}
}

func TestSimilarity(t *testing.T) {
	if s := similarity("horsepower", "horsepower"); s != 1 {
		t.Errorf("identical strings: %v", s)
	}
	if s := similarity("horsepower", "horsepwoer"); s < 0.8 {
		t.Errorf("one transposition should stay above the fuzzy bar, got %v", s)
	}
	if s := similarity("seats", "torque"); s > 0.5 {
		t.Errorf("unrelated words too similar: %v", s)
	}
}

func TestDamerauLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "abc", 0},
		{"abc", "acb", 1}, // transposition
		{"abc", "axc", 1},
		{"abc", "ab", 1},
		{"", "abc", 3},
	}
	for _, tt := range tests {
		if got := damerauLevenshtein(tt.a, tt.b); got != tt.want {
			t.Errorf("damerauLevenshtein(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
