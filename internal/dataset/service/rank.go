package service

import (
	"sort"
	"strings"

	"cardata-service/internal/dataset/model"
)

// topN ranks rows by a cleaned column, highest first. Rows whose value
// is missing never make the board.
func topN(rows []map[string]string, cols []model.Column, req model.Request) []model.RankEntry {
	var by *model.Column
	for i := range cols {
		if strings.EqualFold(cols[i].Name, req.RankBy) {
			by = &cols[i]
			break
		}
	}
	if by == nil {
		return nil
	}

	labelHeader := ""
	if req.LabelKey != "" {
		labelHeader = resolveHeader(rows, req.LabelKey)
	}

	entries := make([]model.RankEntry, 0, len(rows))
	for i, v := range by.Values {
		if !v.Valid {
			continue
		}
		e := model.RankEntry{Row: i, Value: v.Float64}
		if labelHeader != "" {
			e.Label = strings.TrimSpace(rows[i][labelHeader])
		}
		entries = append(entries, e)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Value > entries[j].Value
	})
	if len(entries) > req.TopN {
		entries = entries[:req.TopN]
	}
	return entries
}
