package server

import (
	"errors"
	"net/http"
	"path/filepath"

	"github.com/maloquacious/commdir/internal/people"
)

type peopleList struct {
	People []people.Person `json:"people"`
}

func (s *Server) handleListPeople(w http.ResponseWriter, r *http.Request) {
	list, err := s.store.ListPeople(r.Context())
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	if list == nil {
		list = []people.Person{}
	}
	writeJSON(w, http.StatusOK, peopleList{People: list})
}

func (s *Server) handleCreatePerson(w http.ResponseWriter, r *http.Request) {
	in, err := people.DecodeInput(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		s.log.Debug("rejected body (request %s): %v", GetRequestID(r.Context()), err)
		s.metrics.Rejected.WithLabelValues("malformed").Inc()
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "Invalid JSON payload"})
		return
	}

	person, err := s.store.CreatePerson(r.Context(), in)
	if err != nil {
		var verr *people.ValidationError
		if !errors.As(err, &verr) {
			s.internalError(w, r, err)
			return
		}
		reason := "invalid"
		if errors.Is(err, people.ErrMissingFields) {
			reason = "missing_fields"
		}
		s.metrics.Rejected.WithLabelValues(reason).Inc()
		writeJSON(w, http.StatusBadRequest, errorBody{Error: verr.Message, Details: verr.Fields})
		return
	}

	s.metrics.PeopleCreated.Inc()
	writeJSON(w, http.StatusCreated, person)
}

// internalError reports a storage fault. Faults are never retried.
func (s *Server) internalError(w http.ResponseWriter, r *http.Request, err error) {
	s.log.Error("%s %s (request %s): %v", r.Method, r.URL.Path, GetRequestID(r.Context()), err)
	writeJSON(w, http.StatusInternalServerError, errorBody{Error: "Internal server error"})
}

// handleIndex serves index.html from the public directory.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, filepath.Join(s.cfg.PublicDir, "index.html"))
}

func (s *Server) handleStatic(w http.ResponseWriter, r *http.Request) {
	s.static.ServeHTTP(w, r)
}
