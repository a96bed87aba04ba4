package service

import (
	"math"
	"sort"

	"cardata-service/internal/dataset/model"
	"cardata-service/internal/normalize"
)

// summarize computes column stats over the parsed values only. Nil when
// nothing parsed: a stats block full of zeros would read like data.
func summarize(vals []normalize.Value) *model.Stats {
	xs := make([]float64, 0, len(vals))
	for _, v := range vals {
		if v.Valid {
			xs = append(xs, v.Float64)
		}
	}
	if len(xs) == 0 {
		return nil
	}

	s := &model.Stats{Count: len(xs), Min: xs[0], Max: xs[0]}
	sum := 0.0
	for _, x := range xs {
		sum += x
		if x < s.Min {
			s.Min = x
		}
		if x > s.Max {
			s.Max = x
		}
	}
	s.Mean = sum / float64(len(xs))

	varSum := 0.0
	for _, x := range xs {
		d := x - s.Mean
		varSum += d * d
	}
	s.StdDev = math.Sqrt(varSum / float64(len(xs)))

	sort.Float64s(xs)
	mid := len(xs) / 2
	if len(xs)%2 == 1 {
		s.Median = xs[mid]
	} else {
		s.Median = (xs[mid-1] + xs[mid]) / 2
	}
	return s
}
