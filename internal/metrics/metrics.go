// Package metrics exposes Prometheus collectors for the portfolio server.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/EngBahadin/portfolio/internal/loading"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PageViews counts rendered index pages.
	PageViews = promauto.NewCounter(prometheus.CounterOpts{
		Name: "portfolio_page_views_total",
		Help: "Total number of rendered portfolio pages.",
	})

	// LoadingTransitions counts loading flag writes by target phase.
	LoadingTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "portfolio_loading_transitions_total",
		Help: "Total number of loading flag writes, by previous and new phase.",
	}, []string{"from", "to"})

	// ActiveSessions tracks page sessions that have not expired yet.
	ActiveSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "portfolio_active_sessions",
		Help: "Current number of tracked page sessions.",
	})

	// RequestDuration observes HTTP latency by route pattern and status code.
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "portfolio_http_request_duration_seconds",
		Help:    "HTTP request latency, by route pattern, method and status code.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "method", "code"})
)

// ObserveLoading records a loading transition. It matches loading.Observer.
func ObserveLoading(from, to loading.Phase) {
	LoadingTransitions.WithLabelValues(from.String(), to.String()).Inc()
}

// Middleware records RequestDuration. Labels use the chi route pattern so
// unknown paths collapse into one series.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				route = p
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		RequestDuration.WithLabelValues(route, r.Method, strconv.Itoa(status)).Observe(time.Since(start).Seconds())
	})
}
