package api

import "net/http"

type healthResponse struct {
	Status          string `json:"status"`
	EnginesTotal    int    `json:"engines_total"`
	EnginesDisabled int    `json:"engines_disabled"`
}

// handleHealthz reports service readiness: the history store must be
// reachable, and the engine counts let operators spot a service that came
// up with an empty or fully disabled registry.
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{Status: "ok"}
	for _, d := range s.registry.List() {
		resp.EnginesTotal++
		if d.Disabled {
			resp.EnginesDisabled++
		}
	}

	if err := s.store.Ping(r.Context()); err != nil {
		s.logger.Error("health check: store unreachable", "error", err)
		resp.Status = "degraded"
		s.writeJSON(w, http.StatusServiceUnavailable, resp)
		return
	}

	s.writeJSON(w, http.StatusOK, resp)
}
