// Package adapters implements the per-platform form-filling contract. Each
// adapter drives a browser session through one platform's DOM structure and
// reports the result as a value; no adapter lets a failure escape to crash
// the engine run, and none clicks a final submit control.
package adapters

import (
	"context"

	"github.com/jonathan/apply-agent/internal/browser"
	"github.com/jonathan/apply-agent/internal/db"
	"github.com/jonathan/apply-agent/internal/platform"
)

// Outcome is the transient result of one adapter invocation. It is never
// persisted directly; the engine translates it into a status transition.
type Outcome struct {
	Success bool
	Note    string
}

// Adapter fills a platform-specific application form. The session is
// exclusively owned by the caller for the duration of the call.
type Adapter interface {
	Apply(ctx context.Context, session browser.Session, jobURL string, profile *db.Profile, resumePath string) Outcome
}

// Registry maps each supported platform to its adapter. Supporting a new
// platform means adding one classifier rule and one entry here; the engine's
// orchestration never changes.
func Registry() map[platform.Platform]Adapter {
	return map[platform.Platform]Adapter{
		platform.Greenhouse: &GreenhouseAdapter{},
		platform.Lever:      &LeverAdapter{},
	}
}

// failure wraps an unrecoverable error as a failed outcome carrying the
// underlying cause.
func failure(err error) Outcome {
	return Outcome{Success: false, Note: err.Error()}
}
