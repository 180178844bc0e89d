package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ErrAlreadyApplied is returned when an application already exists for the
// same job and profile. The (job_id, profile_id) unique constraint is the
// arbiter, not a client-side existence check.
var ErrAlreadyApplied = errors.New("an application already exists for this job and profile")

// CreateApplication queues a new pending application.
func (s *Store) CreateApplication(ctx context.Context, jobID, profileID uuid.UUID) (*Application, error) {
	var a Application
	err := s.pool.QueryRow(ctx,
		`INSERT INTO applications (job_id, profile_id, status)
		 VALUES ($1, $2, 'pending')
		 RETURNING id, job_id, profile_id, status, details, created_at, updated_at`,
		jobID, profileID,
	).Scan(&a.ID, &a.JobID, &a.ProfileID, &a.Status, &a.Details, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrAlreadyApplied
		}
		return nil, fmt.Errorf("failed to create application: %w", err)
	}
	return &a, nil
}

// GetApplication retrieves an application by ID, or (nil, nil) when absent.
func (s *Store) GetApplication(ctx context.Context, id uuid.UUID) (*Application, error) {
	var a Application
	err := s.pool.QueryRow(ctx,
		`SELECT id, job_id, profile_id, status, details, created_at, updated_at
		 FROM applications WHERE id = $1`,
		id,
	).Scan(&a.ID, &a.JobID, &a.ProfileID, &a.Status, &a.Details, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	return &a, nil
}

// Claim holds the row lock on a single pending application for the duration
// of one engine run. Exactly one of Resolve or Close must end it: Resolve
// writes the terminal status and commits, Close rolls back an unresolved
// claim so the row returns to the pending pool.
type Claim struct {
	tx       pgx.Tx
	app      *PendingApplication
	resolved bool
}

// ClaimOldestPending atomically claims the single oldest pending application,
// joined with its job URL and profile fields. Row-level locking with SKIP
// LOCKED guarantees two concurrent runs never claim the same row: the second
// run observes no pending work. Returns (nil, nil) when nothing is pending.
func (s *Store) ClaimOldestPending(ctx context.Context) (*Claim, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin claim transaction: %w", err)
	}

	var (
		app       PendingApplication
		profileID *uuid.UUID
		fullName  *string
		email     *string
		phone     *string
		resumeURL *string
	)
	// LEFT JOINs keep applications with dangling job or profile references
	// claimable; the engine records those as failed rather than never
	// seeing them.
	err = tx.QueryRow(ctx,
		`SELECT a.id, COALESCE(j.url, ''), p.id, p.full_name, p.email, p.phone, p.resume_url
		 FROM applications a
		 LEFT JOIN jobs j ON j.id = a.job_id
		 LEFT JOIN profiles p ON p.id = a.profile_id
		 WHERE a.status = 'pending'
		 ORDER BY a.created_at
		 LIMIT 1
		 FOR UPDATE OF a SKIP LOCKED`,
	).Scan(&app.ID, &app.JobURL, &profileID, &fullName, &email, &phone, &resumeURL)
	if err != nil {
		rollback(ctx, tx)
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to claim pending application: %w", err)
	}

	if profileID != nil {
		app.Profile = &Profile{ID: *profileID}
		if fullName != nil {
			app.Profile.FullName = *fullName
		}
		if email != nil {
			app.Profile.Email = *email
		}
		if phone != nil {
			app.Profile.Phone = *phone
		}
		if resumeURL != nil {
			app.Profile.ResumeURL = *resumeURL
		}
	}

	return &Claim{tx: tx, app: &app}, nil
}

// Application returns the claimed unit of work.
func (c *Claim) Application() *PendingApplication {
	return c.app
}

// Resolve writes the single terminal status for the claimed application and
// commits. It is the only status write of the run.
func (c *Claim) Resolve(ctx context.Context, status, details string) error {
	if c.resolved {
		return fmt.Errorf("application %s already resolved", c.app.ID)
	}
	if !IsTerminal(status) {
		return fmt.Errorf("invalid terminal status %q", status)
	}

	_, err := c.tx.Exec(ctx,
		`UPDATE applications SET status = $1, details = $2, updated_at = NOW() WHERE id = $3`,
		status, details, c.app.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update application status: %w", err)
	}
	if err := c.tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit status update: %w", err)
	}
	c.resolved = true
	return nil
}

// Close rolls back an unresolved claim. Safe to defer alongside Resolve.
func (c *Claim) Close(ctx context.Context) {
	if !c.resolved {
		rollback(ctx, c.tx)
	}
}

func rollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && err != pgx.ErrTxClosed {
		fmt.Printf("Rollback error: %v\n", err)
	}
}
