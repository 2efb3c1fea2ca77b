package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"path"
	"strings"

	"github.com/EngBahadin/portfolio/internal/loading"
	"github.com/EngBahadin/portfolio/internal/metrics"
	"github.com/EngBahadin/portfolio/internal/models"
	"github.com/EngBahadin/portfolio/internal/nav"

	"github.com/go-chi/chi/v5"
)

func (s *Server) renderError(w http.ResponseWriter, status int) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.tmplFunc(w, "error.html", nil); err != nil {
		slog.Error("Failed to render error template", "error", err)
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, models.ErrorResponse{Error: err.Error()})
}

func (s *Server) HandleIndex(w http.ResponseWriter, r *http.Request) {
	// Every page load is a new session, so the loading flag starts over.
	// Sessions of earlier loads stay valid until they expire.
	token, state := s.createSession()

	data := models.IndexPageData{
		Site:     s.site.Config(),
		NavLinks: nav.Links(),
		Loading:  state.Loading(),
		Session:  token,
		Version:  s.version,
	}

	var buf bytes.Buffer
	if err := s.tmplFunc(&buf, "index.html", data); err != nil {
		slog.Error("Failed to render index template", "error", err)
		s.renderError(w, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
	metrics.PageViews.Inc()
}

func (s *Server) HandleConfig(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.site.Config())
}

func (s *Server) HandleNav(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, nav.Links())
}

func loadingStatus(v loading.View) models.LoadingStatus {
	return models.LoadingStatus{
		Loading: v.Loading(),
		Phase:   v.Phase().String(),
	}
}

func (s *Server) HandleGetLoading(w http.ResponseWriter, r *http.Request) {
	state, err := s.sessionFromRequest(r)
	if err != nil {
		s.writeError(w, http.StatusUnauthorized, err)
		return
	}
	s.writeJSON(w, http.StatusOK, loadingStatus(state.View()))
}

func (s *Server) HandleSetLoading(w http.ResponseWriter, r *http.Request) {
	state, err := s.sessionFromRequest(r)
	if err != nil {
		s.writeError(w, http.StatusUnauthorized, err)
		return
	}

	var req models.SetLoadingRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, 1<<10)).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	if req.Loading == nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("missing field %q", "loading"))
		return
	}

	state.SetLoading(*req.Loading)
	slog.Debug("Loading flag updated", slog.Bool("loading", *req.Loading))

	s.writeJSON(w, http.StatusOK, loadingStatus(state.View()))
}

// HandleLoadingEvents streams the session's loading flag as server-sent
// events. The current value is sent first, then one event per change.
func (s *Server) HandleLoadingEvents(w http.ResponseWriter, r *http.Request) {
	state, err := s.sessionFromRequest(r)
	if err != nil {
		s.writeError(w, http.StatusUnauthorized, err)
		return
	}
	view := state.View()
	updates := view.Subscribe(r.Context())
	rc := http.NewResponseController(w)

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	send := func(v bool) bool {
		status := models.LoadingStatus{Loading: v, Phase: phaseName(v)}
		payload, err := json.Marshal(status)
		if err != nil {
			slog.Error("Failed to encode loading event", "error", err)
			return false
		}
		if _, err := fmt.Fprintf(w, "event: loading\ndata: %s\n\n", payload); err != nil {
			return false
		}
		return rc.Flush() == nil
	}

	if !send(view.Loading()) {
		return
	}
	for v := range updates {
		if !send(v) {
			return
		}
	}
}

func phaseName(v bool) string {
	if v {
		return loading.Loading.String()
	}
	return loading.Ready.String()
}

func (s *Server) HandleVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, FormatBuildVersion(s.version))
}

// HandleHeroImage serves the hero pictures referenced by the site config
// from static/hero.
func (s *Server) HandleHeroImage(w http.ResponseWriter, r *http.Request) {
	name := path.Base(chi.URLParam(r, "file"))
	if name == "." || name == "/" || strings.HasPrefix(name, ".") {
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}
	s.serveFile(path.Join("static/hero", name))(w, r)
}

func (s *Server) serveFile(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		file, err := s.assets.Open(name)
		if err != nil {
			http.Error(w, "File not found", http.StatusNotFound)
			return
		}
		defer func() { _ = file.Close() }()
		if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
			w.Header().Set("Content-Type", ct)
		}
		_, _ = io.Copy(w, file)
	}
}

func (s *Server) cacheControl(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/static/"):
			w.Header().Set("Cache-Control", "public, max-age=86400")
		case r.URL.Path == "/api/config" || r.URL.Path == "/api/nav":
			w.Header().Set("Cache-Control", "no-cache")
		default:
			w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		}
		next.ServeHTTP(w, r)
	})
}
