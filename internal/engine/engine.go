// Package engine orchestrates one application submission end-to-end: claim
// the oldest pending application, resolve its resume, drive the matching
// site adapter through a browser session, and persist exactly one terminal
// status.
package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/apply-agent/internal/adapters"
	"github.com/jonathan/apply-agent/internal/browser"
	"github.com/jonathan/apply-agent/internal/config"
	"github.com/jonathan/apply-agent/internal/db"
	"github.com/jonathan/apply-agent/internal/fetch"
	"github.com/jonathan/apply-agent/internal/platform"
)

// resumeFileName is the scratch file the resume is downloaded to, overwritten
// on each run. Safe only because each run executes in an isolated
// environment; concurrent runs sharing a filesystem would need per-run paths.
const resumeFileName = "resume.pdf"

var validate = validator.New()

// Claim is one claimed pending application. Resolve writes its single
// terminal status; Close releases an unresolved claim back to the pending
// pool.
type Claim interface {
	Application() *db.PendingApplication
	Resolve(ctx context.Context, status, details string) error
	Close(ctx context.Context)
}

// Store is the slice of the record store the engine needs.
type Store interface {
	// ClaimOldestPending returns the next unit of work, or (nil, nil)
	// when nothing is pending.
	ClaimOldestPending(ctx context.Context) (Claim, error)
}

// DownloadFunc streams a remote resume to a local file.
type DownloadFunc func(ctx context.Context, url, dest string) error

// SessionFunc starts a browser session.
type SessionFunc func(ctx context.Context) (browser.Session, error)

// Engine processes pending applications one at a time.
type Engine struct {
	Store          Store
	DownloadResume DownloadFunc
	StartSession   SessionFunc
	Registry       map[platform.Platform]adapters.Adapter
	DownloadDir    string
	Out            io.Writer
}

// New wires an Engine against the real record store, resource fetcher, and
// headless browser.
func New(store *db.Store, cfg *config.Config, out io.Writer) *Engine {
	return &Engine{
		Store: NewStore(store),
		DownloadResume: func(ctx context.Context, url, dest string) error {
			opts := fetch.DefaultOptions()
			opts.Timeout = cfg.HTTPTimeout
			opts.Headers = map[string]string{
				"Authorization": "Bearer " + cfg.StorageServiceKey,
			}
			return fetch.Download(ctx, url, dest, opts)
		},
		StartSession: func(ctx context.Context) (browser.Session, error) {
			return browser.StartChrome(ctx, browser.Options{
				ElementWait: cfg.ElementWait,
				Verbose:     cfg.Verbose,
			})
		},
		Registry:    adapters.Registry(),
		DownloadDir: cfg.DownloadDir,
		Out:         out,
	}
}

// Run processes exactly one pending application. Every handled outcome —
// no pending work, incomplete data, unsupported platform, adapter success or
// failure — ends the run normally with at most one persisted status write;
// a non-nil error means the outcome itself could not be claimed or recorded.
func (e *Engine) Run(ctx context.Context) error {
	claim, err := e.Store.ClaimOldestPending(ctx)
	if err != nil {
		return fmt.Errorf("failed to claim pending application: %w", err)
	}
	if claim == nil {
		fmt.Fprintln(e.Out, "No pending applications found.")
		return nil
	}
	defer claim.Close(ctx)

	app := claim.Application()
	fmt.Fprintf(e.Out, "Processing application %s\n", app.ID)

	var status, details string
	if err := validateClaim(app); err != nil {
		// No browser session is ever created for incomplete data.
		status, details = db.StatusFailed, err.Error()
	} else {
		status, details = e.process(ctx, app)
	}

	if err := claim.Resolve(ctx, status, details); err != nil {
		return fmt.Errorf("failed to record outcome for application %s: %w", app.ID, err)
	}
	fmt.Fprintf(e.Out, "Updated application %s status to: %s\n", app.ID, status)
	return nil
}

// process acquires resources, classifies, and dispatches. It is the single
// boundary that converts any failure — including a panic out of an adapter
// or the browser layer — into a failed status instead of crashing the run.
func (e *Engine) process(ctx context.Context, app *db.PendingApplication) (status, details string) {
	defer func() {
		if r := recover(); r != nil {
			status, details = db.StatusFailed, fmt.Sprintf("unexpected error: %v", r)
		}
	}()

	resumePath := filepath.Join(e.DownloadDir, resumeFileName)
	fmt.Fprintf(e.Out, "Downloading resume to %s\n", resumePath)
	if err := e.DownloadResume(ctx, app.Profile.ResumeURL, resumePath); err != nil {
		return db.StatusFailed, err.Error()
	}

	session, err := e.StartSession(ctx)
	if err != nil {
		return db.StatusFailed, err.Error()
	}
	// The session is torn down on every exit path, panics included.
	defer session.Close()

	p := platform.Classify(app.JobURL)
	adapter, ok := e.Registry[p]
	if !ok {
		return db.StatusSkipped, "Bot does not support this job site yet."
	}

	outcome := adapter.Apply(ctx, session, app.JobURL, app.Profile, resumePath)
	if !outcome.Success {
		return db.StatusFailed, outcome.Note
	}
	return db.StatusCompleted, outcome.Note
}

// validateClaim checks the claimed data is complete enough to attempt a
// submission.
func validateClaim(app *db.PendingApplication) error {
	if app.Profile == nil {
		return errors.New("incomplete data: missing job URL, profile, or resume URL")
	}

	data := struct {
		JobURL    string `validate:"required,url"`
		ResumeURL string `validate:"required,url"`
	}{app.JobURL, app.Profile.ResumeURL}

	if err := validate.Struct(data); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fe.Field())
			}
			return fmt.Errorf("incomplete data: missing or invalid %s", strings.Join(fields, ", "))
		}
		return fmt.Errorf("incomplete data: %w", err)
	}
	return nil
}
