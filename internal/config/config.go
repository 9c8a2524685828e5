// Package config holds the dashboard configuration and its loader
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/myusername/records-dashboard/pkg/scraper"
)

// Config contains process configuration
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error
	LogLevel string `koanf:"log_level"`

	// RecordsURL is the page the records tables are scraped from
	RecordsURL string `koanf:"records_url"`

	// HTTPTimeout bounds a single page fetch
	HTTPTimeout time.Duration `koanf:"http_timeout"`

	// OutputDir receives saved HTML and exported tables
	OutputDir string `koanf:"output_dir"`

	// SaveHTML keeps a copy of every fetched page under OutputDir/html
	SaveHTML bool `koanf:"save_html"`

	// ListenAddr is the HTTP address of the dashboard server, e.g. ":8080"
	ListenAddr string `koanf:"listen_addr"`

	// ChartWidth is the width in characters of the longest terminal bar
	ChartWidth int `koanf:"chart_width"`

	// RosterPath is the default roster file for the roster command
	RosterPath string `koanf:"roster_path"`
}

// New returns a Config with defaults
func New() *Config {
	return &Config{
		LogLevel:    "info",
		RecordsURL:  scraper.DefaultRecordsURL,
		HTTPTimeout: 30 * time.Second,
		OutputDir:   ".",
		ListenAddr:  ":8080",
		ChartWidth:  40,
		RosterPath:  "WU_directory.csv",
	}
}

// Validate reports the first invalid field
func (c *Config) Validate() error {
	switch {
	case strings.TrimSpace(c.RecordsURL) == "":
		return fmt.Errorf("%w: records_url must not be empty", ErrInvalidConfig)
	case c.HTTPTimeout <= 0:
		return fmt.Errorf("%w: http_timeout must be positive", ErrInvalidConfig)
	case c.ChartWidth <= 0:
		return fmt.Errorf("%w: chart_width must be positive", ErrInvalidConfig)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// ParseLevel accepts debug, info, warn/warning and error (case-insensitive)
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level: %s", level)
	}
}
