package main

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/EngBahadin/portfolio/internal/config"
	"github.com/EngBahadin/portfolio/internal/database"
	"github.com/EngBahadin/portfolio/internal/site"
	"github.com/EngBahadin/portfolio/server"
)

var (
	version = "dev"
)

//go:embed templates/*.html
var templatesFiles embed.FS

//go:embed static/*
var staticFiles embed.FS

func main() {

	var (
		tmplFunc server.ExecuteTemplateFunc
		assets   http.FileSystem
	)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Errorf("failed to load config: %w", err))
	}
	slog.SetDefault(cfg.Logger(os.Stdout))

	overrides, err := loadOverrides(ctx, cfg, database.NewDatabase)
	if err != nil {
		panic(err)
	}
	provider := site.New(time.Now(), overrides...)

	tmpl, err := template.New("").ParseFS(templatesFiles, "templates/*.html")
	if err != nil {
		panic(fmt.Errorf("failed to parse templates: %w", err))
	}
	tmplFunc = tmpl.ExecuteTemplate
	assets = http.FS(staticFiles)

	srv := server.NewServer(version, cfg.Port, assets, tmplFunc, provider, cfg.SessionTTL)

	go srv.Start()
	defer srv.Close()

	slog.Info("Started server", slog.String("listen_addr", ":"+cfg.Port), slog.String("version", version))
	si := make(chan os.Signal, 1)
	signal.Notify(si, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-si
	slog.Info("Shutting down server")
}

type openDatabaseFunc func(ctx context.Context, dbURL string) (database.Database, error)

// loadOverrides collects site overrides from the YAML file first and the
// settings table second, so database values take precedence. The database is
// only needed for this one read and is closed before returning.
func loadOverrides(ctx context.Context, cfg config.Config, openDB openDatabaseFunc) ([]site.Overrides, error) {
	var overrides []site.Overrides

	fileOverrides, err := site.LoadFile(cfg.SiteFile)
	if err != nil {
		return nil, err
	}
	if !fileOverrides.Empty() {
		slog.Info("Loaded site overrides", slog.String("source", cfg.SiteFile))
		overrides = append(overrides, fileOverrides)
	}

	if cfg.DatabaseURL == "" {
		return overrides, nil
	}

	db, err := openDB(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	dbOverrides, err := db.GetSiteOverrides(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load site overrides: %w", err)
	}
	if !dbOverrides.Empty() {
		slog.Info("Loaded site overrides", slog.String("source", "database"))
		overrides = append(overrides, dbOverrides)
	}
	return overrides, nil
}
