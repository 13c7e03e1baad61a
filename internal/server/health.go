package server

import (
	"net/http"

	"github.com/maloquacious/commdir/internal/store"
)

func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// handleReady is not ready until the store answers and its schema matches.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := s.store.Ping(ctx); err != nil {
		s.log.Warn("readiness: ping failed: %v", err)
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("NOT READY"))
		return
	}
	state, err := s.store.CheckState(ctx)
	if err != nil || state != store.StateReady {
		s.log.Warn("readiness: store is %s: %v", state, err)
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("NOT READY"))
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("READY"))
}
