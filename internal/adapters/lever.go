package adapters

import (
	"context"
	"log"

	"github.com/jonathan/apply-agent/internal/browser"
	"github.com/jonathan/apply-agent/internal/db"
)

// leverRevealSelector is the "Apply for this job" button that expands the
// application form on jobs.lever.co posting pages.
const leverRevealSelector = `a.postings-btn.template-btn-submit.cerulean`

// LeverAdapter fills the jobs.lever.co application form.
type LeverAdapter struct{}

// Apply runs the Lever two-phase sequence: first the reveal click that
// expands the form, then field population. The reveal button is an
// optimization, not a requirement — some Lever pages render the form
// directly — so a missing button falls through to manual field population
// instead of aborting.
func (a *LeverAdapter) Apply(ctx context.Context, session browser.Session, jobURL string, profile *db.Profile, resumePath string) Outcome {
	if err := session.Navigate(ctx, jobURL); err != nil {
		return failure(err)
	}

	if err := session.Click(ctx, leverRevealSelector); err != nil {
		log.Printf("Lever apply button not found, continuing with direct form fill: %v", err)
	}

	fields := []struct {
		selector string
		value    string
	}{
		{`input[name="name"]`, profile.FullName},
		{`input[name="email"]`, profile.Email},
		{`input[name="phone"]`, profile.Phone},
	}
	for _, f := range fields {
		if err := session.Fill(ctx, f.selector, f.value); err != nil {
			return failure(err)
		}
	}

	if err := session.Upload(ctx, resumeInputSelector, resumePath); err != nil {
		return failure(err)
	}

	return Outcome{Success: true, Note: "Bot successfully filled Lever form."}
}
