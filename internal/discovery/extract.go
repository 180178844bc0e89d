package discovery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// resultPrefix marks Google redirect hrefs on a search-results page; the
// real destination is in the "q" query parameter.
const resultPrefix = "/url?q="

// ExtractResultLinks parses a search-results page and returns the outbound
// job URLs pointing at one of the target sites. The result is a
// de-duplicated set in document order.
func ExtractResultLinks(htmlContent string, targetSites []string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, &ExtractionError{
			Message: "failed to parse HTML",
			Cause:   err,
		}
	}

	linkSet := make(map[string]bool)
	links := make([]string, 0)

	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, exists := s.Attr("href")
		if !exists || !strings.HasPrefix(href, resultPrefix) {
			return
		}

		parsed, err := url.Parse(href)
		if err != nil {
			// Skip malformed URLs
			return
		}

		target := parsed.Query().Get("q")
		if target == "" || !matchesAnySite(target, targetSites) {
			return
		}

		if !linkSet[target] {
			linkSet[target] = true
			links = append(links, target)
		}
	})

	return links, nil
}

func matchesAnySite(urlStr string, sites []string) bool {
	for _, site := range sites {
		if strings.Contains(urlStr, site) {
			return true
		}
	}
	return false
}
