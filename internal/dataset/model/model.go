package model

import "cardata-service/internal/normalize"

// Kind selects the parsing policy for a column.
type Kind string

const (
	// KindPrice: currency text, commas as thousands separators,
	// hyphenated ranges collapse to their midpoint.
	KindPrice Kind = "price"
	// KindMean: mean of every embedded numeric token, commas split.
	KindMean Kind = "mean"
	// KindNumber: the whole cell must be a plain number.
	KindNumber Kind = "number"
)

// Rule maps a requested column name to its parsing policy.
type Rule struct {
	Column string `json:"column"`
	Kind   Kind   `json:"kind"`
}

// Request describes one cleaning run over an uploaded table.
type Request struct {
	HeaderRow int    // header row in the file (1-based)
	Rules     []Rule // columns to clean
	LabelKey  string // column used to label leaderboard rows (optional)
	RankBy    string // cleaned column to rank by (optional)
	TopN      int    // leaderboard size
}

// Column is one cleaned column: canonical values aligned with the input
// rows, plus the data-quality counters callers use to decide whether a
// column is usable at all.
type Column struct {
	Name    string            `json:"name"`   // requested name
	Header  string            `json:"header"` // header it resolved to, "" if none
	Kind    Kind              `json:"kind"`
	Values  []normalize.Value `json:"values"`
	Parsed  int               `json:"parsed"`
	Missing int               `json:"missing"`
	Stats   *Stats            `json:"stats,omitempty"`
}

// Stats summarizes the parsed (non-missing) values of a column.
type Stats struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	StdDev float64 `json:"stddev"`
	Median float64 `json:"median"`
}

// RankEntry is one leaderboard row.
type RankEntry struct {
	Row   int     `json:"row"` // 0-based data row index
	Label string  `json:"label,omitempty"`
	Value float64 `json:"value"`
}

type Result struct {
	Rows    int         `json:"rows"`
	Columns []Column    `json:"columns"`
	Top     []RankEntry `json:"top,omitempty"`
	RankBy  string      `json:"rankBy,omitempty"`
}
