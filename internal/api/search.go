package api

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/chorus-search/chorus/internal/engine"
	"github.com/chorus-search/chorus/internal/model"
	"github.com/chorus-search/chorus/internal/search"
)

const defaultCategory = "general"

// searchResponse is the JSON response for GET /search.
type searchResponse struct {
	ID       string `json:"id"`
	Query    string `json:"query"`
	Category string `json:"category"`
	model.Aggregated
	DurationMS int `json:"duration_ms"`
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		s.writeError(w, http.StatusBadRequest, "q is required")
		return
	}

	category := r.URL.Query().Get("category")
	if category == "" {
		category = defaultCategory
	}

	params := model.Params{Page: 1, Locale: r.URL.Query().Get("locale")}
	if v := r.URL.Query().Get("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil || page < 1 {
			s.writeError(w, http.StatusBadRequest, "page must be a positive integer")
			return
		}
		params.Page = page
	}
	if v := r.URL.Query().Get("safesearch"); v != "" {
		if !model.ValidSafeSearch(v) {
			s.writeError(w, http.StatusBadRequest, "safesearch must be off, moderate or strict")
			return
		}
		params.SafeSearch = v
	}
	if v := r.URL.Query().Get("time_range"); v != "" {
		if !model.ValidTimeRange(v) {
			s.writeError(w, http.StatusBadRequest, "time_range must be day, week, month or year")
			return
		}
		params.TimeRange = v
	}

	opts := search.Options{MaxWait: s.maxWait}
	if v := r.URL.Query().Get("engines"); v != "" {
		for _, name := range strings.Split(v, ",") {
			if name = strings.TrimSpace(name); name != "" {
				opts.Engines = append(opts.Engines, name)
			}
		}
	}
	if v := r.URL.Query().Get("max_wait_ms"); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil || ms <= 0 {
			s.writeError(w, http.StatusBadRequest, "max_wait_ms must be a positive integer")
			return
		}
		opts.MaxWait = time.Duration(ms) * time.Millisecond
	}

	params.EngineData = s.primeTokens(r.Context(), category, opts.Engines)

	start := time.Now()
	agg := s.orchestrator.Search(r.Context(), q, category, params, opts)
	durationMS := int(time.Since(start).Milliseconds())

	rec := &model.SearchRecord{
		ID:                model.NewID(),
		Query:             q,
		Category:          category,
		TotalEngines:      agg.TotalEngines,
		SuccessfulEngines: agg.SuccessfulEngines,
		FailedEngines:     agg.FailedEngines,
		DurationMS:        durationMS,
		CreatedAt:         time.Now().UTC(),
	}
	// History is best-effort; a storage failure must not fail the search.
	if err := s.store.CreateSearch(r.Context(), rec); err != nil {
		s.logger.Error("persist search record", "error", err, "search_id", rec.ID)
	}

	s.writeJSON(w, http.StatusOK, searchResponse{
		ID:         rec.ID,
		Query:      q,
		Category:   category,
		Aggregated: agg,
		DurationMS: durationMS,
	})
}

// primeTokens runs the out-of-band token priming step for every candidate
// engine that declares a primer, consulting the injected TTL cache before
// fetching. Priming failures only log: the engine will fail its own call
// and be bookkept like any other failure.
func (s *Server) primeTokens(ctx context.Context, category string, allowList []string) map[string]string {
	allowed := map[string]bool{}
	for _, name := range allowList {
		allowed[name] = true
	}

	var data map[string]string
	for _, e := range s.registry.ByCategory(category) {
		name := e.Descriptor().Name
		if len(allowed) > 0 && !allowed[name] {
			continue
		}
		primer, ok := e.(engine.TokenPrimer)
		if !ok {
			continue
		}

		// The cache stores "key\x00value" so the engine-agreed data key
		// survives the round trip.
		if cached, hit := s.tokens.Get(name); hit {
			if k, v, found := strings.Cut(cached, "\x00"); found {
				if data == nil {
					data = make(map[string]string)
				}
				data[k] = v
				continue
			}
		}

		primeCtx, cancel := context.WithTimeout(ctx, primeTimeout)
		key, value, err := primer.PrimeToken(primeCtx, s.client)
		cancel()
		if err != nil {
			s.logger.Warn("token priming failed", "engine", name, "error", err)
			continue
		}
		if key == "" {
			continue
		}
		s.tokens.Set(name, key+"\x00"+value)
		if data == nil {
			data = make(map[string]string)
		}
		data[key] = value
	}
	return data
}
