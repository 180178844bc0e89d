// Package platform classifies job URLs into the closed set of career-site
// platforms the bot knows how to drive.
package platform

import "strings"

// Platform identifies a known job board platform.
type Platform string

const (
	// Greenhouse is the Greenhouse ATS platform
	Greenhouse Platform = "greenhouse"
	// Lever is the Lever ATS platform
	Lever Platform = "lever"
	// Unsupported is any URL outside the supported set. It is a valid
	// classification, not an error; the engine routes it to "skipped".
	Unsupported Platform = "unsupported"
)

// rule maps a URL substring to a platform. Rules are evaluated in order and
// the first match wins.
type rule struct {
	substring string
	platform  Platform
}

// rules is the static classification registry. Supporting a new platform
// means adding one rule here and one adapter; no other code path changes.
var rules = []rule{
	{"boards.greenhouse.io", Greenhouse},
	{"greenhouse.io", Greenhouse},
	{"jobs.lever.co", Lever},
	{"lever.co", Lever},
}

// Classify maps a job URL to its platform, or Unsupported if no rule matches.
func Classify(url string) Platform {
	lower := strings.ToLower(url)
	for _, r := range rules {
		if strings.Contains(lower, r.substring) {
			return r.platform
		}
	}
	return Unsupported
}
