package server

import (
	"net/http"
	"time"

	"github.com/EngBahadin/portfolio/internal/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/go-http-utils/etag"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(httprate.Limit(500, time.Minute))
	r.Use(middleware.Heartbeat("/health"))
	r.Use(s.cacheControl)

	r.Mount("/static", http.FileServer(s.assets))

	r.Handle("/robots.txt", s.serveFile("static/robots.txt"))
	r.Handle("/favicon.svg", s.serveFile("static/images/favicon.svg"))
	r.Get("/hero/{file}", s.HandleHeroImage)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/version", s.HandleVersion)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))
		r.Use(middleware.Compress(5))

		r.Get("/", s.HandleIndex)
		r.Method(http.MethodGet, "/api/config", etag.Handler(http.HandlerFunc(s.HandleConfig), false))
		r.Get("/api/nav", s.HandleNav)

		r.Group(func(r chi.Router) {
			r.Use(s.RequireSession)
			r.Get("/api/loading", s.HandleGetLoading)
			r.Put("/api/loading", s.HandleSetLoading)
		})
	})

	// Long-lived stream; kept outside the timeout and compression group.
	r.With(s.RequireSession).Get("/api/loading/events", s.HandleLoadingEvents)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/", http.StatusMovedPermanently)
	})

	return r
}
