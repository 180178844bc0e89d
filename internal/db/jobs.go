package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// InsertJob inserts a discovered job. The jobs.url unique constraint is the
// dedup arbiter: a conflicting insert is not an error, it means another run
// (or an earlier batch entry) already recorded the URL. Returns true only
// when this call actually inserted a row.
func (s *Store) InsertJob(ctx context.Context, input JobInput) (bool, error) {
	tag, err := s.pool.Exec(ctx,
		`INSERT INTO jobs (url, title, company, location, source)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (url) DO NOTHING`,
		input.URL, input.Title, input.Company, input.Location, input.Source,
	)
	if err != nil {
		// Conflict races that slip past DO NOTHING (e.g. concurrent
		// serialization failures surfacing as 23505) are still "already
		// exists", not failures.
		if isUniqueViolation(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to insert job: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// GetJobByURL retrieves a job by its URL, or (nil, nil) when absent.
func (s *Store) GetJobByURL(ctx context.Context, url string) (*Job, error) {
	var j Job
	err := s.pool.QueryRow(ctx,
		`SELECT id, url, title, company, location, source, created_at
		 FROM jobs WHERE url = $1`,
		url,
	).Scan(&j.ID, &j.URL, &j.Title, &j.Company, &j.Location, &j.Source, &j.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return &j, nil
}

// ListJobs retrieves recent jobs, optionally filtered by source platform.
func (s *Store) ListJobs(ctx context.Context, source string, limit int) ([]Job, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `SELECT id, url, title, company, location, source, created_at
		FROM jobs`
	args := []any{}
	if source != "" {
		query += ` WHERE source = $1`
		args = append(args, source)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d`, len(args)+1)
	args = append(args, limit)

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []Job
	for rows.Next() {
		var j Job
		if err := rows.Scan(&j.ID, &j.URL, &j.Title, &j.Company, &j.Location, &j.Source, &j.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, j)
	}
	return jobs, nil
}
