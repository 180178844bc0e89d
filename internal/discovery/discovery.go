package discovery

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/jonathan/apply-agent/internal/fetch"
)

// FetchFunc retrieves a search-results page and returns its HTML.
type FetchFunc func(ctx context.Context, url string) (string, error)

// Loop iterates the target platforms, searches each for fresh postings, and
// records new job URLs exactly once. One Run is a single-threaded,
// run-to-completion invocation; a failed site never aborts the loop.
type Loop struct {
	Query     string
	Location  string
	Sites     []string
	FetchPage FetchFunc
	Dedupe    *Deduplicator
	Out       io.Writer
}

// NewLoop creates a discovery loop over the default target sites and search
// criteria.
func NewLoop(store JobStore, out io.Writer) *Loop {
	return &Loop{
		Query:     DefaultQuery,
		Location:  DefaultLocation,
		Sites:     TargetSites,
		FetchPage: fetchSearchPage,
		Dedupe:    NewDeduplicator(store, DefaultQuery, DefaultLocation),
		Out:       out,
	}
}

// Run searches every target site once and returns the total number of new
// jobs recorded across all of them.
func (l *Loop) Run(ctx context.Context) (int, error) {
	total := 0
	for _, site := range l.Sites {
		searchURL := BuildSearchURL(l.Query, l.Location, site)
		fmt.Fprintf(l.Out, "Searching %s for %q %q\n", site, l.Query, l.Location)

		html, err := l.FetchPage(ctx, searchURL)
		if err != nil {
			if ctx.Err() != nil {
				return total, ctx.Err()
			}
			log.Printf("Failed to fetch search results for %s: %v", site, err)
			continue
		}

		urls, err := ExtractResultLinks(html, l.Sites)
		if err != nil {
			log.Printf("Failed to extract links for %s: %v", site, err)
			continue
		}
		if len(urls) == 0 {
			fmt.Fprintf(l.Out, "No new job URLs found in search results.\n")
			continue
		}

		inserted, err := l.Dedupe.Dedupe(ctx, urls, site)
		total += inserted
		if err != nil {
			return total, err
		}
		fmt.Fprintf(l.Out, "Recorded %d new jobs from %s\n", inserted, site)
	}
	return total, nil
}

func fetchSearchPage(ctx context.Context, url string) (string, error) {
	result, err := fetch.Page(ctx, url, nil)
	if err != nil {
		return "", err
	}
	return result.HTML, nil
}
