package adapters

import (
	"context"

	"github.com/jonathan/apply-agent/internal/browser"
	"github.com/jonathan/apply-agent/internal/db"
)

// resumeInputSelector locates the resume upload control. Both Greenhouse and
// Lever expose a plain file input.
const resumeInputSelector = `input[type="file"]`

// GreenhouseAdapter fills the standard boards.greenhouse.io application form.
type GreenhouseAdapter struct{}

// Apply navigates to the posting and populates the identity fields and
// resume upload. Greenhouse splits the name into separate first/last inputs.
func (a *GreenhouseAdapter) Apply(ctx context.Context, session browser.Session, jobURL string, profile *db.Profile, resumePath string) Outcome {
	if err := session.Navigate(ctx, jobURL); err != nil {
		return failure(err)
	}

	fields := []struct {
		selector string
		value    string
	}{
		{"#first_name", profile.FirstName()},
		{"#last_name", profile.LastName()},
		{"#email", profile.Email},
		{"#phone", profile.Phone},
	}
	for _, f := range fields {
		if err := session.Fill(ctx, f.selector, f.value); err != nil {
			return failure(err)
		}
	}

	if err := session.Upload(ctx, resumeInputSelector, resumePath); err != nil {
		return failure(err)
	}

	return Outcome{Success: true, Note: "Bot successfully filled Greenhouse form."}
}
