package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"runtime"
	"time"

	"github.com/EngBahadin/portfolio/internal/cache"
	"github.com/EngBahadin/portfolio/internal/loading"
	"github.com/EngBahadin/portfolio/internal/site"
)

type ExecuteTemplateFunc func(wr io.Writer, name string, data any) error

type Server struct {
	version  string
	port     string
	server   *http.Server
	assets   http.FileSystem
	tmplFunc ExecuteTemplateFunc
	site     *site.Provider
	sessions *cache.Cache[string, *loading.State]
	stop     context.CancelFunc
}

func NewServer(version string, port string, assets http.FileSystem, tmplFunc ExecuteTemplateFunc, provider *site.Provider, sessionTTL time.Duration) *Server {

	s := &Server{
		version:  version,
		port:     port,
		assets:   assets,
		tmplFunc: tmplFunc,
		site:     provider,
		sessions: cache.NewCache[string, *loading.State](sessionTTL),
	}

	s.server = &http.Server{
		Addr:              ":" + port,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

func (s *Server) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	s.stop = cancel
	go s.sweepLoop(ctx, time.Minute)

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		panic(err)
	}
}

func (s *Server) Close() {
	if s.stop != nil {
		s.stop()
	}
	if err := s.server.Close(); err != nil {
		panic(err)
	}
}

func (s *Server) sweepLoop(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.sweepSessions(); n > 0 {
				slog.Debug("Swept expired sessions", slog.Int("count", n))
			}
		}
	}
}

func FormatBuildVersion(version string) string {
	return fmt.Sprintf("Go Version: %s\nVersion: %s\nOS/Arch: %s/%s", runtime.Version(), version, runtime.GOOS, runtime.GOARCH)
}
