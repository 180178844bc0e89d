package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_Greenhouse(t *testing.T) {
	tests := []struct {
		url      string
		expected Platform
	}{
		{"https://boards.greenhouse.io/acme/jobs/123", Greenhouse},
		{"https://job-boards.greenhouse.io/doordashusa/jobs/7063751", Greenhouse},
		{"https://greenhouse.io/jobs/456", Greenhouse},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.url))
		})
	}
}

func TestClassify_Lever(t *testing.T) {
	tests := []struct {
		url      string
		expected Platform
	}{
		{"https://jobs.lever.co/acme/job-id", Lever},
		{"https://lever.co/jobs/123", Lever},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.url))
		})
	}
}

func TestClassify_Unsupported(t *testing.T) {
	tests := []string{
		"https://example.com/jobs",
		"https://wd1.myworkdayjobs.com/en-US/External",
		"https://jobs.bamboohr.com/acme",
		"https://www.smartrecruiters.com/acme/123",
		"https://linkedin.com/jobs/123",
	}

	for _, url := range tests {
		t.Run(url, func(t *testing.T) {
			assert.Equal(t, Unsupported, Classify(url))
		})
	}
}

func TestClassify_CaseInsensitive(t *testing.T) {
	assert.Equal(t, Greenhouse, Classify("https://Boards.Greenhouse.IO/acme/jobs/123"))
}
