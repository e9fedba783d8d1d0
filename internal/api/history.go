package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/chorus-search/chorus/internal/model"
	"github.com/chorus-search/chorus/internal/store"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

type listSearchesResponse struct {
	Searches []*model.SearchRecord `json:"searches"`
	Total    int                   `json:"total"`
	Limit    int                   `json:"limit"`
	Offset   int                   `json:"offset"`
}

func (s *Server) handleListSearches(w http.ResponseWriter, r *http.Request) {
	limit := defaultListLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			s.writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		if n > maxListLimit {
			n = maxListLimit
		}
		limit = n
	}

	offset := 0
	if v := r.URL.Query().Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			s.writeError(w, http.StatusBadRequest, "offset must be a non-negative integer")
			return
		}
		offset = n
	}

	records, total, err := s.store.ListSearches(r.Context(), limit, offset)
	if err != nil {
		s.logger.Error("list searches", "error", err)
		s.writeError(w, http.StatusInternalServerError, "failed to list searches")
		return
	}

	s.writeJSON(w, http.StatusOK, listSearchesResponse{
		Searches: records,
		Total:    total,
		Limit:    limit,
		Offset:   offset,
	})
}

func (s *Server) handleGetSearch(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	rec, err := s.store.GetSearch(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.writeError(w, http.StatusNotFound, "search not found")
			return
		}
		s.logger.Error("get search", "error", err, "search_id", id)
		s.writeError(w, http.StatusInternalServerError, "failed to get search")
		return
	}

	s.writeJSON(w, http.StatusOK, rec)
}
