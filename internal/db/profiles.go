package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Profiles are owned by the onboarding flow; the store exposes reads only.

// GetProfileByID retrieves a profile by ID, or (nil, nil) when absent.
func (s *Store) GetProfileByID(ctx context.Context, id uuid.UUID) (*Profile, error) {
	return s.getProfile(ctx, `WHERE id = $1`, id)
}

// GetProfileByEmail retrieves a profile by email, or (nil, nil) when absent.
func (s *Store) GetProfileByEmail(ctx context.Context, email string) (*Profile, error) {
	return s.getProfile(ctx, `WHERE email = $1`, email)
}

func (s *Store) getProfile(ctx context.Context, where string, arg any) (*Profile, error) {
	var p Profile
	err := s.pool.QueryRow(ctx,
		`SELECT id, full_name, email, phone, COALESCE(resume_url, ''), created_at, updated_at
		 FROM profiles `+where,
		arg,
	).Scan(&p.ID, &p.FullName, &p.Email, &p.Phone, &p.ResumeURL, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &p, nil
}
