package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"cardata-service/internal/config"
	"cardata-service/internal/dataset/model"
)

const sampleCSV = `Company Names,Cars Names,Cars Prices,HorsePower,Seats
Apex,Falcon,"$12,000-$15,000",350 HP,5
Bolt,Sprint,$1.2k,300-350,4
Crux,Vega,N/A,,seven
`

func postClean(t *testing.T, fields map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "cars.csv")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := fw.Write([]byte(sampleCSV)); err != nil {
		t.Fatal(err)
	}
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatal(err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodPost, "/clean", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()

	cfg := config.Config{MaxUploadMB: 16}
	Clean(cfg, zerolog.Nop())(rec, req)
	return rec
}

func TestCleanHandler(t *testing.T) {
	rec := postClean(t, map[string]string{
		"price_cols":  "Cars Prices",
		"mean_cols":   "HorsePower",
		"number_cols": "Seats",
		"rank_by":     "Cars Prices",
		"label_col":   "Company Names",
		"top_n":       "2",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var res model.Result
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if res.Rows != 3 || len(res.Columns) != 3 {
		t.Fatalf("rows=%d columns=%d", res.Rows, len(res.Columns))
	}

	price := res.Columns[0]
	if price.Kind != model.KindPrice || price.Parsed != 2 || price.Missing != 1 {
		t.Errorf("price column = %+v", price)
	}
	if v := price.Values[0]; !v.Valid || v.Float64 != 13500 {
		t.Errorf("price[0] = %+v, want 13500", v)
	}

	if len(res.Top) != 2 || res.Top[0].Label != "Apex" {
		t.Errorf("top = %+v", res.Top)
	}
}

func TestCleanHandlerNoColumns(t *testing.T) {
	rec := postClean(t, nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestCleanHandlerMissingFile(t *testing.T) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	_ = mw.WriteField("price_cols", "Cars Prices")
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/clean", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	Clean(config.Config{MaxUploadMB: 16}, zerolog.Nop())(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
