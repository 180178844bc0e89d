package adapters

import (
	"context"
	"fmt"
)

// fakeSession records browser interactions and fails on configured selectors.
type fakeSession struct {
	navigated []string
	filled    map[string]string
	clicked   []string
	uploaded  map[string]string
	closed    bool

	failNavigate  bool
	failSelectors map[string]error
}

func newFakeSession() *fakeSession {
	return &fakeSession{
		filled:        make(map[string]string),
		uploaded:      make(map[string]string),
		failSelectors: make(map[string]error),
	}
}

func (s *fakeSession) failOn(selector string) {
	s.failSelectors[selector] = fmt.Errorf("timed out waiting for %s", selector)
}

func (s *fakeSession) Navigate(_ context.Context, url string) error {
	if s.failNavigate {
		return fmt.Errorf("failed to navigate to %s: connection refused", url)
	}
	s.navigated = append(s.navigated, url)
	return nil
}

func (s *fakeSession) Fill(_ context.Context, selector, value string) error {
	if err := s.failSelectors[selector]; err != nil {
		return err
	}
	s.filled[selector] = value
	return nil
}

func (s *fakeSession) Click(_ context.Context, selector string) error {
	if err := s.failSelectors[selector]; err != nil {
		return err
	}
	s.clicked = append(s.clicked, selector)
	return nil
}

func (s *fakeSession) Upload(_ context.Context, selector, path string) error {
	if err := s.failSelectors[selector]; err != nil {
		return err
	}
	s.uploaded[selector] = path
	return nil
}

func (s *fakeSession) Close() {
	s.closed = true
}
