package engine

import (
	"context"

	"github.com/jonathan/apply-agent/internal/db"
)

// pgStore adapts *db.Store to the engine's Store interface.
type pgStore struct {
	store *db.Store
}

// NewStore wraps the PostgreSQL record store for the engine.
func NewStore(store *db.Store) Store {
	return pgStore{store: store}
}

func (s pgStore) ClaimOldestPending(ctx context.Context) (Claim, error) {
	claim, err := s.store.ClaimOldestPending(ctx)
	if err != nil {
		return nil, err
	}
	if claim == nil {
		// Avoid wrapping a typed nil in a non-nil interface.
		return nil, nil
	}
	return claim, nil
}
