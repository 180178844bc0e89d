package discovery

import (
	"context"
	"log"
	"net/url"

	"github.com/jonathan/apply-agent/internal/db"
)

// JobStore is the slice of the record store the discovery loop needs. The
// store's unique constraint on jobs.url is the authoritative arbiter of new
// vs. duplicate; InsertJob reports whether a row was actually inserted.
type JobStore interface {
	InsertJob(ctx context.Context, input db.JobInput) (bool, error)
}

// Deduplicator records candidate URLs exactly once, relying on the store's
// uniqueness constraint rather than client-side existence checks.
type Deduplicator struct {
	store    JobStore
	query    string
	location string
}

// NewDeduplicator creates a Deduplicator that tags new jobs with the search
// query and location they were discovered under.
func NewDeduplicator(store JobStore, query, location string) *Deduplicator {
	return &Deduplicator{store: store, query: query, location: location}
}

// Dedupe inserts each URL not already present, tagged with the platform it
// came from, and returns the number of rows this invocation actually
// inserted. A duplicate is a silent skip. Any other insert error is logged
// and the batch continues with the next URL; order within the batch carries
// no meaning.
func (d *Deduplicator) Dedupe(ctx context.Context, urls []string, platformTag string) (int, error) {
	inserted := 0
	for _, jobURL := range urls {
		if err := ctx.Err(); err != nil {
			return inserted, err
		}

		ok, err := d.store.InsertJob(ctx, db.JobInput{
			URL:      jobURL,
			Title:    d.query,
			Company:  hostnameOf(jobURL),
			Location: d.location,
			Source:   platformTag,
		})
		if err != nil {
			log.Printf("Error recording job %s: %v", jobURL, err)
			continue
		}
		if ok {
			inserted++
		}
	}
	return inserted, nil
}

func hostnameOf(jobURL string) string {
	parsed, err := url.Parse(jobURL)
	if err != nil {
		return ""
	}
	return parsed.Hostname()
}
