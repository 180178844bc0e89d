package discovery

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLoop(store JobStore, fetchPage FetchFunc) *Loop {
	loop := NewLoop(store, &bytes.Buffer{})
	loop.FetchPage = fetchPage
	return loop
}

func TestLoop_RecordsJobsFromEverySite(t *testing.T) {
	store := newFakeJobStore()
	loop := testLoop(store, func(_ context.Context, url string) (string, error) {
		switch {
		case strings.Contains(url, "jobs.lever.co"):
			return `<a href="/url?q=https://jobs.lever.co/acme/a&sa=U">A</a>`, nil
		case strings.Contains(url, "boards.greenhouse.io"):
			return `<a href="/url?q=https://boards.greenhouse.io/acme/jobs/1&sa=U">B</a>`, nil
		default:
			return "<html></html>", nil
		}
	})

	total, err := loop.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, store.jobs, 2)
}

func TestLoop_FailedSiteContinues(t *testing.T) {
	store := newFakeJobStore()
	loop := testLoop(store, func(_ context.Context, url string) (string, error) {
		if strings.Contains(url, "jobs.lever.co") {
			return "", fmt.Errorf("HTTP status 429")
		}
		if strings.Contains(url, "boards.greenhouse.io") {
			return `<a href="/url?q=https://boards.greenhouse.io/acme/jobs/1&sa=U">B</a>`, nil
		}
		return "<html></html>", nil
	})

	total, err := loop.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, total)
}

func TestLoop_DuplicateAcrossSearchResults(t *testing.T) {
	// The same posting surfacing in two different sites' results is
	// recorded exactly once.
	store := newFakeJobStore()
	shared := `<a href="/url?q=https://jobs.lever.co/acme/a&sa=U">A</a>`
	loop := testLoop(store, func(_ context.Context, _ string) (string, error) {
		return shared, nil
	})

	total, err := loop.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Len(t, store.jobs, 1)
}

func TestLoop_NoResultsIsNotAnError(t *testing.T) {
	store := newFakeJobStore()
	loop := testLoop(store, func(_ context.Context, _ string) (string, error) {
		return "<html><body></body></html>", nil
	})

	total, err := loop.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, total)
}
