package database

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/EngBahadin/portfolio/internal/site"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Database interface {
	Close()
	GetSiteOverrides(ctx context.Context) (site.Overrides, error)
}

type database struct {
	db *pgxpool.Pool
}

func NewDatabase(ctx context.Context, dbURL string) (Database, error) {
	config, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	config.MaxConns = 4
	config.MinConns = 1
	config.MaxConnLifetime = 30 * time.Minute
	config.MaxConnIdleTime = 5 * time.Minute
	config.HealthCheckPeriod = 1 * time.Minute
	config.ConnConfig.ConnectTimeout = 10 * time.Second

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create database pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &database{db: pool}, nil
}

func (d *database) Close() {
	d.db.Close()
}

// GetSiteOverrides reads the site_* rows of the settings table. It is called
// once at startup; the result is frozen into the site provider.
func (d *database) GetSiteOverrides(ctx context.Context) (site.Overrides, error) {
	rows, err := d.db.Query(ctx, `SELECT key, value FROM settings WHERE key LIKE 'site_%'`)
	if err != nil {
		return site.Overrides{}, err
	}
	defer rows.Close()

	settings := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return site.Overrides{}, err
		}
		settings[key] = value
	}
	if err := rows.Err(); err != nil {
		return site.Overrides{}, err
	}

	return overridesFromSettings(settings)
}

func overridesFromSettings(settings map[string]string) (site.Overrides, error) {
	var o site.Overrides
	for key, value := range settings {
		v := value
		switch key {
		case "site_picture_dark":
			o.PictureDark = &v
		case "site_picture_light":
			o.PictureLight = &v
		case "site_picture_alt":
			o.PictureAlt = &v
		case "site_meeting_link":
			o.MeetingLink = &v
		case "site_email":
			o.Email = &v
		case "site_credits":
			o.Credits = &v
		case "site_available":
			available, err := strconv.ParseBool(v)
			if err != nil {
				return o, fmt.Errorf("invalid site_available value %q: %w", v, err)
			}
			o.Available = &available
		}
	}
	return o, nil
}
