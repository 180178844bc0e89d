package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLeverAdapter_ClicksRevealThenFills(t *testing.T) {
	session := newFakeSession()
	adapter := &LeverAdapter{}

	outcome := adapter.Apply(context.Background(), session,
		"https://jobs.lever.co/acme/job-id", testProfile(), "/tmp/resume.pdf")

	assert.True(t, outcome.Success)
	assert.Contains(t, outcome.Note, "Lever")
	assert.Equal(t, []string{leverRevealSelector}, session.clicked)
	assert.Equal(t, "Ada Lovelace", session.filled[`input[name="name"]`])
	assert.Equal(t, "ada@example.com", session.filled[`input[name="email"]`])
	assert.Equal(t, "+1 555 0100", session.filled[`input[name="phone"]`])
	assert.Equal(t, "/tmp/resume.pdf", session.uploaded[resumeInputSelector])
}

func TestLeverAdapter_DegradesWithoutRevealButton(t *testing.T) {
	session := newFakeSession()
	session.failOn(leverRevealSelector)
	adapter := &LeverAdapter{}

	outcome := adapter.Apply(context.Background(), session,
		"https://jobs.lever.co/acme/job-id", testProfile(), "/tmp/resume.pdf")

	// The reveal click is an optimization; its absence must not abort the run.
	assert.True(t, outcome.Success)
	assert.Empty(t, session.clicked)
	assert.Equal(t, "Ada Lovelace", session.filled[`input[name="name"]`])
	assert.Equal(t, "/tmp/resume.pdf", session.uploaded[resumeInputSelector])
}

func TestLeverAdapter_MissingRequiredField(t *testing.T) {
	session := newFakeSession()
	session.failOn(`input[name="phone"]`)
	adapter := &LeverAdapter{}

	outcome := adapter.Apply(context.Background(), session,
		"https://jobs.lever.co/acme/job-id", testProfile(), "/tmp/resume.pdf")

	assert.False(t, outcome.Success)
	assert.Contains(t, outcome.Note, "phone")
	assert.Empty(t, session.uploaded)
}
