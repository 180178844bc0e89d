package discovery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const searchResultsHTML = `<html><body>
<a href="/url?q=https://jobs.lever.co/acme/backend-engineer&sa=U">Backend Engineer</a>
<a href="/url?q=https://boards.greenhouse.io/acme/jobs/123&sa=U">Platform Engineer</a>
<a href="/url?q=https://jobs.lever.co/acme/backend-engineer&sa=U">Backend Engineer (again)</a>
<a href="/url?q=https://example.com/not-a-job&sa=U">Unrelated</a>
<a href="https://www.google.com/preferences">Settings</a>
<a href="/search?q=next-page">Next</a>
</body></html>`

func TestExtractResultLinks(t *testing.T) {
	links, err := ExtractResultLinks(searchResultsHTML, TargetSites)
	require.NoError(t, err)

	// Duplicates collapse, off-target and non-redirect links are dropped.
	assert.Equal(t, []string{
		"https://jobs.lever.co/acme/backend-engineer",
		"https://boards.greenhouse.io/acme/jobs/123",
	}, links)
}

func TestExtractResultLinks_NoResults(t *testing.T) {
	links, err := ExtractResultLinks("<html><body><p>No results</p></body></html>", TargetSites)
	require.NoError(t, err)
	assert.Empty(t, links)
}

func TestExtractResultLinks_MissingQueryParam(t *testing.T) {
	html := `<a href="/url?sa=U">broken redirect</a>`
	links, err := ExtractResultLinks(html, TargetSites)
	require.NoError(t, err)
	assert.Empty(t, links)
}

func TestBuildSearchURL(t *testing.T) {
	url := BuildSearchURL("software engineer", "Remote", "jobs.lever.co")

	assert.Contains(t, url, "https://www.google.com/search?")
	assert.Contains(t, url, "tbs=qdr%3Ad")
	assert.Contains(t, url, "site%3Ajobs.lever.co")
}
