package handler

import (
	"net/http"
	"strconv"
	"strings"

	"cardata-service/internal/dataset/model"
)

func collectRules(r *http.Request) []model.Rule {
	var rules []model.Rule
	appendAll := func(field string, kind model.Kind) {
		for _, name := range splitList(r.FormValue(field)) {
			rules = append(rules, model.Rule{Column: name, Kind: kind})
		}
	}
	appendAll("price_cols", model.KindPrice)
	appendAll("mean_cols", model.KindMean)
	appendAll("number_cols", model.KindNumber)
	return rules
}

// splitList splits "a, b ,c" into trimmed non-empty names.
func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func atoi(s string, def int) int {
	if s == "" {
		return def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}
