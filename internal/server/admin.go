package server

import (
	"net/http"
	"time"

	"github.com/maloquacious/commdir/internal/store"
)

type statusResponse struct {
	Version string           `json:"version"`
	State   store.StoreState `json:"state"`
	People  int              `json:"people"`
	Time    string           `json:"time"`
	Mode    string           `json:"mode"`
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	state, err := s.store.CheckState(ctx)
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	resp := statusResponse{
		Version: s.version,
		State:   state,
		Time:    s.now().UTC().Format(time.RFC3339),
		Mode:    "running",
	}
	if state == store.StateReady {
		if resp.People, err = s.store.CountPeople(ctx); err != nil {
			s.internalError(w, r, err)
			return
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleShutdown(w http.ResponseWriter, r *http.Request) {
	if s.shutdown == nil {
		writeJSONError(w, http.StatusNotImplemented, "not_implemented", "shutdown is not wired")
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "shutting down"})
	s.log.Info("shutdown requested via admin (request %s)", GetRequestID(r.Context()))
	s.shutdown()
}
