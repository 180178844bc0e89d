package discovery

import (
	"fmt"
	"net/url"
)

// Default search criteria.
const (
	DefaultQuery    = "software engineer"
	DefaultLocation = "Remote"
)

// TargetSites is the closed set of career-site platforms the discovery loop
// searches. Postings outside these domains are never recorded.
var TargetSites = []string{
	"jobs.lever.co",
	"boards.greenhouse.io",
	"wd1.myworkdayjobs.com",
	"jobs.bamboohr.com",
	"smartrecruiters.com",
}

// BuildSearchURL composes a Google search URL scoped to one target site,
// restricted to results from the last 24 hours.
func BuildSearchURL(query, location, site string) string {
	term := fmt.Sprintf("%q %q site:%s", query, location, site)
	params := url.Values{}
	params.Set("q", term)
	params.Set("tbs", "qdr:d")
	return "https://www.google.com/search?" + params.Encode()
}
