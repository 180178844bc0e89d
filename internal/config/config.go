// Package config provides configuration loading and validation for the CLI.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Defaults for optional settings.
const (
	// DefaultDownloadDir is where resumes are downloaded before upload.
	DefaultDownloadDir = "/tmp"
	// DefaultElementWait bounds each browser element lookup.
	DefaultElementWait = 15 * time.Second
	// DefaultHTTPTimeout bounds page fetches and resume downloads.
	DefaultHTTPTimeout = 30 * time.Second
)

// Config holds all runtime configuration. It is constructed once at process
// start and passed explicitly into components; nothing reads the environment
// after FromEnv returns.
type Config struct {
	// DatabaseURL is the PostgreSQL connection string for the record store.
	DatabaseURL string
	// StorageServiceKey authenticates resume downloads from storage.
	StorageServiceKey string

	DownloadDir string
	ElementWait time.Duration
	HTTPTimeout time.Duration
	Verbose     bool
}

// FromEnv builds a Config from environment variables. DATABASE_URL and
// STORAGE_SERVICE_KEY are required; missing values are a fatal precondition
// and no external state is touched before this check passes.
func FromEnv() (*Config, error) {
	cfg := &Config{
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		StorageServiceKey: os.Getenv("STORAGE_SERVICE_KEY"),
		DownloadDir:       DefaultDownloadDir,
		ElementWait:       DefaultElementWait,
		HTTPTimeout:       DefaultHTTPTimeout,
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if cfg.StorageServiceKey == "" {
		return nil, fmt.Errorf("STORAGE_SERVICE_KEY environment variable is required")
	}

	if dir := os.Getenv("DOWNLOAD_DIR"); dir != "" {
		cfg.DownloadDir = dir
	}
	if wait := os.Getenv("ELEMENT_WAIT_SECONDS"); wait != "" {
		secs, err := strconv.Atoi(wait)
		if err != nil || secs <= 0 {
			return nil, fmt.Errorf("ELEMENT_WAIT_SECONDS must be a positive integer, got %q", wait)
		}
		cfg.ElementWait = time.Duration(secs) * time.Second
	}

	return cfg, nil
}
