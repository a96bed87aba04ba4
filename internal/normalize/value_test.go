package normalize

import (
	"encoding/json"
	"testing"
)

func TestValueJSON(t *testing.T) {
	b, err := json.Marshal([]Value{Some(13500), Missing, Some(0)})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(b), "[13500,null,0]"; got != want {
		t.Errorf("marshal = %s, want %s", got, want)
	}

	var back []Value
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatal(err)
	}
	if !back[0].Valid || back[0].Float64 != 13500 {
		t.Errorf("back[0] = %+v", back[0])
	}
	if back[1].Valid {
		t.Errorf("null should unmarshal as missing, got %+v", back[1])
	}
	if !back[2].Valid || back[2].Float64 != 0 {
		t.Errorf("zero is a real value, got %+v", back[2])
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   any
		want float64
		ok   bool
	}{
		{"5", 5, true},
		{" 4 ", 4, true},
		{"2,500", 2500, true},
		{"7.5", 7.5, true},
		{"-3", -3, true},
		{"", 0, false},
		{nil, 0, false},
		{"350 HP", 0, false}, // whole cell must be numeric
		{"-", 0, false},
		{".", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseNumber(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseNumber(%v) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
