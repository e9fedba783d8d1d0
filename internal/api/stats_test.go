package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/chorus-search/chorus/internal/model"
	"github.com/chorus-search/chorus/internal/store"
)

func TestGetStats(t *testing.T) {
	batch := serveBatch(t, model.ParsedBatch{Results: []model.Result{
		{URL: "https://example.com/a", Score: 1},
	}})
	srv := newTestServer(t, &stubEngine{desc: stubDescriptor("one"), url: batch.URL})
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	for _, q := range []string{"first", "second"} {
		resp, err := http.Get(ts.URL + "/search?q=" + q)
		if err != nil {
			t.Fatalf("seed search: %v", err)
		}
		resp.Body.Close()
	}

	resp, err := http.Get(ts.URL + "/v1/stats")
	if err != nil {
		t.Fatalf("GET /v1/stats: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var stats store.SearchStats
	if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if stats.Total != 2 {
		t.Errorf("Total = %d, want 2", stats.Total)
	}
	if stats.CountByCategory["general"] != 2 {
		t.Errorf("CountByCategory[general] = %d, want 2", stats.CountByCategory["general"])
	}
	if stats.AvgSuccessRate != 1.0 {
		t.Errorf("AvgSuccessRate = %v, want 1.0", stats.AvgSuccessRate)
	}
}
