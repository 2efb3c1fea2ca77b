package server

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"net/http"

	"github.com/EngBahadin/portfolio/internal/loading"
	"github.com/EngBahadin/portfolio/internal/metrics"
)

var ErrNoSession = errors.New("no active session")

// A page load carries its own token, so two tabs never share a session.
// Browsers send it as a header; EventSource cannot set headers and uses the
// query parameter instead.
const (
	sessionHeader = "X-Session-Token"
	sessionParam  = "session"
)

// createSession starts a page session with its own loading flag.
func (s *Server) createSession() (string, *loading.State) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		panic("failed to generate session token: " + err.Error())
	}
	token := hex.EncodeToString(bytes)

	state := loading.New(loading.WithObserver(metrics.ObserveLoading))
	s.sessions.Set(token, state)
	metrics.ActiveSessions.Set(float64(s.sessions.Len()))

	return token, state
}

func (s *Server) lookupSession(token string) (*loading.State, error) {
	if token == "" {
		return nil, ErrNoSession
	}
	state, ok := s.sessions.Get(token)
	if !ok {
		s.deleteSession(token)
		return nil, ErrNoSession
	}
	return state, nil
}

func (s *Server) deleteSession(token string) {
	s.sessions.Delete(token)
	metrics.ActiveSessions.Set(float64(s.sessions.Len()))
}

// sweepSessions drops expired sessions.
func (s *Server) sweepSessions() int {
	removed := s.sessions.Sweep()
	metrics.ActiveSessions.Set(float64(s.sessions.Len()))
	return removed
}

func (s *Server) getSessionFromRequest(r *http.Request) string {
	if token := r.Header.Get(sessionHeader); token != "" {
		return token
	}
	return r.URL.Query().Get(sessionParam)
}

func (s *Server) sessionFromRequest(r *http.Request) (*loading.State, error) {
	return s.lookupSession(s.getSessionFromRequest(r))
}

// RequireSession rejects API calls that do not belong to a live page session.
func (s *Server) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := s.sessionFromRequest(r); err != nil {
			s.writeError(w, http.StatusUnauthorized, err)
			return
		}
		next.ServeHTTP(w, r)
	})
}
