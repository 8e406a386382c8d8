package api

import (
	"net/http"

	"github.com/jeebeez/jeebeecard/internal/logger"
)

// handleHealth is the liveness probe.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// handleReady reports 503 when the store cannot be reached.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if err := s.Store.Ping(r.Context()); err != nil {
		logger.FromContext(r.Context()).Warn("readiness check failed - store: %v", err)
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("Store unavailable"))
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Ready"))
}
