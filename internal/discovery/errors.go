// Package discovery finds new job postings on the target career-site
// platforms and records each URL exactly once.
package discovery

import "fmt"

// ExtractionError represents a failure in extracting links from a
// search-results page.
type ExtractionError struct {
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("link extraction error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("link extraction error: %s", e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
