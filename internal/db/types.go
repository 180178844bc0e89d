package db

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Application status constants. The lifecycle is a strict state machine:
// pending transitions exactly once to completed, skipped, or failed, and a
// terminal application is never re-read or re-transitioned.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusSkipped   = "skipped"
	StatusFailed    = "failed"
)

// IsTerminal reports whether status is one of the terminal states.
func IsTerminal(status string) bool {
	return status == StatusCompleted || status == StatusSkipped || status == StatusFailed
}

// Job represents a discovered job posting. Rows are created by the discovery
// loop and immutable thereafter; url is the dedup key.
type Job struct {
	ID        uuid.UUID `json:"id"`
	URL       string    `json:"url"`
	Title     string    `json:"title"`
	Company   string    `json:"company"`
	Location  string    `json:"location"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"created_at"`
}

// JobInput is used when inserting a discovered job.
type JobInput struct {
	URL      string
	Title    string
	Company  string
	Location string
	Source   string
}

// Profile holds the applicant identity used to fill forms. Profiles are
// owned by the onboarding flow; this core only reads them.
type Profile struct {
	ID        uuid.UUID `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	ResumeURL string    `json:"resume_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FirstName returns the first word of the full name.
func (p *Profile) FirstName() string {
	parts := strings.Fields(p.FullName)
	if len(parts) == 0 {
		return ""
	}
	return parts[0]
}

// LastName returns the last word of the full name.
func (p *Profile) LastName() string {
	parts := strings.Fields(p.FullName)
	if len(parts) == 0 {
		return ""
	}
	return parts[len(parts)-1]
}

// Application links a profile to a job and tracks the submission outcome.
type Application struct {
	ID        uuid.UUID `json:"id"`
	JobID     uuid.UUID `json:"job_id"`
	ProfileID uuid.UUID `json:"profile_id"`
	Status    string    `json:"status"`
	Details   *string   `json:"details,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PendingApplication is the claimed unit of work: the oldest pending
// application joined with its job URL and profile fields.
type PendingApplication struct {
	ID      uuid.UUID
	JobURL  string
	Profile *Profile
}
