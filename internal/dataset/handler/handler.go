package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"cardata-service/internal/config"
	"cardata-service/internal/dataset/model"
	"cardata-service/internal/dataset/service"
	"cardata-service/internal/fileio"
)

// Clean returns the POST /clean handler. The request is a multipart form:
// "file" carries the table (CSV/XLS/XLSX), and the remaining fields pick
// the columns to normalize:
//
//	header_row   header row, 1-based (default 1)
//	price_cols   comma-separated column names parsed as prices
//	mean_cols    comma-separated column names parsed as token means
//	number_cols  comma-separated column names parsed as plain numbers
//	rank_by      cleaned column to build a leaderboard from (optional)
//	label_col    column used to label leaderboard rows (optional)
//	top_n        leaderboard size (default 10 when rank_by is set)
func Clean(cfg config.Config, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		log := logger
		if reqID := r.Header.Get("X-Request-ID"); reqID != "" {
			log = logger.With().Str("req_id", reqID).Logger()
		}

		defer r.Body.Close()
		if err := r.ParseMultipartForm(int64(cfg.MaxUploadMB) << 20); err != nil {
			http.Error(w, "bad multipart form: "+err.Error(), http.StatusBadRequest)
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			http.Error(w, "missing file: "+err.Error(), http.StatusBadRequest)
			return
		}
		defer file.Close()

		headerRow := atoi(r.FormValue("header_row"), 1)
		rows, err := fileio.ReadAnyMaps(file, header.Filename, headerRow)
		if err != nil {
			http.Error(w, "failed to read table: "+err.Error(), http.StatusBadRequest)
			return
		}

		req := model.Request{
			HeaderRow: headerRow,
			Rules:     collectRules(r),
			LabelKey:  r.FormValue("label_col"),
			RankBy:    r.FormValue("rank_by"),
			TopN:      atoi(r.FormValue("top_n"), 10),
		}
		if len(req.Rules) == 0 {
			http.Error(w, "no columns requested: set price_cols, mean_cols or number_cols", http.StatusBadRequest)
			return
		}

		res := service.Clean(rows, req)

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			log.Error().Err(err).Msg("write json")
			return
		}

		// missing counts are the data-quality signal the core itself
		// never logs; surface them here
		parsed, missing := 0, 0
		for _, c := range res.Columns {
			parsed += c.Parsed
			missing += c.Missing
		}
		log.Info().
			Str("file", header.Filename).
			Int("rows", res.Rows).
			Int("columns", len(res.Columns)).
			Int("parsed", parsed).
			Int("missing", missing).
			Dur("elapsed", time.Since(start)).
			Msg("clean done")
	}
}
