package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// engineResponse is the JSON representation of a registered engine.
type engineResponse struct {
	Name           string   `json:"name"`
	Shortcut       string   `json:"shortcut,omitempty"`
	Categories     []string `json:"categories"`
	SupportsPaging bool     `json:"supports_paging"`
	MaxPage        int      `json:"max_page,omitempty"`
	TimeoutMS      int      `json:"timeout_ms"`
	Weight         float64  `json:"weight"`
	Disabled       bool     `json:"disabled"`
}

func (s *Server) handleListEngines(w http.ResponseWriter, r *http.Request) {
	descs := s.registry.List()
	out := make([]engineResponse, 0, len(descs))
	for _, d := range descs {
		out = append(out, engineResponse{
			Name:           d.Name,
			Shortcut:       d.Shortcut,
			Categories:     d.Categories,
			SupportsPaging: d.SupportsPaging,
			MaxPage:        d.MaxPage,
			TimeoutMS:      int(d.Timeout.Milliseconds()),
			Weight:         d.Weight,
			Disabled:       d.Disabled,
		})
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleDisableEngine(w http.ResponseWriter, r *http.Request) {
	s.setEngineDisabled(w, r, true)
}

func (s *Server) handleEnableEngine(w http.ResponseWriter, r *http.Request) {
	s.setEngineDisabled(w, r, false)
}

func (s *Server) setEngineDisabled(w http.ResponseWriter, r *http.Request, disabled bool) {
	name := chi.URLParam(r, "name")
	if !s.registry.SetDisabled(name, disabled) {
		s.writeError(w, http.StatusNotFound, "engine not found")
		return
	}
	s.logger.Info("engine state changed", "engine", name, "disabled", disabled)
	s.writeJSON(w, http.StatusOK, map[string]any{"name": name, "disabled": disabled})
}
