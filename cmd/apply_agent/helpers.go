package main

import (
	"context"
	"fmt"

	"github.com/jonathan/apply-agent/internal/config"
	"github.com/jonathan/apply-agent/internal/db"
)

// openStore loads configuration and connects to the record store. Missing
// configuration fails here, before any external state is touched.
func openStore(ctx context.Context) (*config.Config, *db.Store, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, nil, err
	}

	store, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to record store: %w", err)
	}
	return cfg, store, nil
}
