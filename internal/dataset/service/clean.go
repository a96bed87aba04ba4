package service

import (
	"cardata-service/internal/dataset/model"
	"cardata-service/internal/normalize"
)

// Clean applies the per-kind normalizer to every requested column of the
// loaded table. Cells are independent, so row order never affects the
// outcome; Missing is counted per column but never turned into zero.
func Clean(rows []map[string]string, req model.Request) model.Result {
	res := model.Result{Rows: len(rows), RankBy: req.RankBy}

	for _, rule := range req.Rules {
		col := model.Column{Name: rule.Column, Kind: rule.Kind}
		col.Header = resolveHeader(rows, rule.Column)
		col.Values = make([]normalize.Value, len(rows))

		for i, rec := range rows {
			v, ok := parseCell(rec, col.Header, rule.Kind)
			if ok {
				col.Values[i] = normalize.Some(v)
				col.Parsed++
			} else {
				col.Values[i] = normalize.Missing
				col.Missing++
			}
		}
		col.Stats = summarize(col.Values)
		res.Columns = append(res.Columns, col)
	}

	if req.RankBy != "" && req.TopN > 0 {
		res.Top = topN(rows, res.Columns, req)
	}
	return res
}

func parseCell(rec map[string]string, header string, kind model.Kind) (float64, bool) {
	if header == "" {
		return 0, false
	}
	raw, present := rec[header]
	if !present {
		return 0, false
	}
	switch kind {
	case model.KindPrice:
		return normalize.ParsePrice(raw)
	case model.KindMean:
		return normalize.ExtractMean(raw)
	case model.KindNumber:
		return normalize.ParseNumber(raw)
	default:
		return 0, false
	}
}
