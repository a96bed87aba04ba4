package normalize

import (
	"encoding/json"
	"strconv"
)

// Value is the wire form of a canonical cell: a finite float or an
// explicit missing marker. Missing marshals to JSON null, never to zero
// and never to NaN (NaN != NaN makes downstream equality checks lie).
type Value struct {
	Float64 float64
	Valid   bool
}

// Some wraps a successfully parsed float.
func Some(f float64) Value { return Value{Float64: f, Valid: true} }

// Missing is the absent-value marker.
var Missing = Value{}

func (v Value) MarshalJSON() ([]byte, error) {
	if !v.Valid {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, v.Float64, 'g', -1, 64), nil
}

func (v *Value) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*v = Missing
		return nil
	}
	if err := json.Unmarshal(b, &v.Float64); err != nil {
		return err
	}
	v.Valid = true
	return nil
}
