package normalize

import (
	"strconv"
	"testing"
)

func TestParseSuffixed(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"500", 500, true},
		{"1.2k", 1200, true},
		{"1.2K", 1200, true},
		{"3M", 3_000_000, true},
		{"3m", 3_000_000, true},
		{"0.5", 0.5, true},
		{".5", 0.5, true},
		{"12 k", 12_000, true},
		{"  42  ", 42, true},
		// not in the suffix grammar but a valid plain float
		{"1e3", 1000, true},
		{"+7", 7, true},
		{"", 0, false},
		{"   ", 0, false},
		{"abc", 0, false},
		{"1.2.3", 0, false},
		{"k", 0, false},
		{"12x", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseSuffixed(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseSuffixed(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

// A canonical float serialized back to text must parse to itself.
func TestParseSuffixedRoundTrip(t *testing.T) {
	for _, in := range []string{"500", "0.25", "1.2k", "9K", "3M", "0.004m", "750"} {
		v, ok := ParseSuffixed(in)
		if !ok {
			t.Fatalf("ParseSuffixed(%q) unexpectedly missing", in)
		}
		again, ok := ParseSuffixed(strconv.FormatFloat(v, 'g', -1, 64))
		if !ok || again != v {
			t.Errorf("round trip of %q: %v -> %v (ok=%v)", in, v, again, ok)
		}
	}
}
