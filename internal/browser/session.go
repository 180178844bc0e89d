// Package browser provides an exclusively-owned headless browser session for
// driving platform application forms.
package browser

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/chromedp/chromedp"
)

// DefaultElementWait bounds each element lookup. Exceeding it is a failure,
// not a retry.
const DefaultElementWait = 15 * time.Second

// Session is a live browser session. One session is owned by exactly one
// engine run and must be closed on every exit path. Each operation that
// locates an element carries its own bounded wait.
type Session interface {
	// Navigate loads the given URL and waits for the document body.
	Navigate(ctx context.Context, url string) error
	// Fill waits for the element matching selector and types value into it.
	Fill(ctx context.Context, selector, value string) error
	// Click waits for the element matching selector and clicks it.
	Click(ctx context.Context, selector string) error
	// Upload attaches a local file to the file input matching selector.
	Upload(ctx context.Context, selector, path string) error
	// Close tears the session down. Safe to call more than once.
	Close()
}

// Options configures a chrome session.
type Options struct {
	ElementWait time.Duration
	Verbose     bool
}

type chromeSession struct {
	ctx     context.Context
	cancels []context.CancelFunc
	wait    time.Duration
	verbose bool
	closed  bool
}

// StartChrome launches a headless Chrome session. The sandbox is disabled
// for constrained container environments; Chrome/Chromium must be installed
// on the system.
func StartChrome(ctx context.Context, opts Options) (Session, error) {
	wait := opts.ElementWait
	if wait <= 0 {
		wait = DefaultElementWait
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)

	// Run a no-op to start the browser process eagerly, so a missing or
	// broken Chrome install surfaces here instead of mid-form.
	if err := chromedp.Run(browserCtx); err != nil {
		cancelBrowser()
		cancelAlloc()
		return nil, fmt.Errorf("failed to start browser: %w", err)
	}

	if opts.Verbose {
		log.Printf("[BROWSER] Headless session started")
	}

	return &chromeSession{
		ctx:     browserCtx,
		cancels: []context.CancelFunc{cancelBrowser, cancelAlloc},
		wait:    wait,
		verbose: opts.Verbose,
	}, nil
}

// run executes actions against the browser context under the per-element
// wait. Cancellation of the caller's context also cancels the run.
func (s *chromeSession) run(ctx context.Context, actions ...chromedp.Action) error {
	runCtx, cancel := context.WithTimeout(s.ctx, s.wait)
	defer cancel()
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	return chromedp.Run(runCtx, actions...)
}

func (s *chromeSession) Navigate(ctx context.Context, url string) error {
	if s.verbose {
		log.Printf("[BROWSER] Navigating to %s", url)
	}
	if err := s.run(ctx, chromedp.Navigate(url), chromedp.WaitReady("body")); err != nil {
		return fmt.Errorf("failed to navigate to %s: %w", url, err)
	}
	return nil
}

func (s *chromeSession) Fill(ctx context.Context, selector, value string) error {
	err := s.run(ctx,
		chromedp.WaitVisible(selector, chromedp.ByQuery),
		chromedp.SendKeys(selector, value, chromedp.ByQuery),
	)
	if err != nil {
		return fmt.Errorf("failed to fill %s: %w", selector, err)
	}
	return nil
}

func (s *chromeSession) Click(ctx context.Context, selector string) error {
	err := s.run(ctx,
		chromedp.WaitVisible(selector, chromedp.ByQuery),
		chromedp.Click(selector, chromedp.ByQuery),
	)
	if err != nil {
		return fmt.Errorf("failed to click %s: %w", selector, err)
	}
	return nil
}

func (s *chromeSession) Upload(ctx context.Context, selector, path string) error {
	// File inputs are frequently hidden behind styled buttons, so wait for
	// presence rather than visibility.
	err := s.run(ctx,
		chromedp.WaitReady(selector, chromedp.ByQuery),
		chromedp.SetUploadFiles(selector, []string{path}, chromedp.ByQuery),
	)
	if err != nil {
		return fmt.Errorf("failed to upload file to %s: %w", selector, err)
	}
	return nil
}

func (s *chromeSession) Close() {
	if s.closed {
		return
	}
	s.closed = true
	for _, cancel := range s.cancels {
		cancel()
	}
	if s.verbose {
		log.Printf("[BROWSER] Session closed")
	}
}
