package listing

import (
	"regexp"
	"strings"
)

var imgSrcPattern = regexp.MustCompile(`<img[^>]+src="([^"]*)"[^>]*>`)

// ExtractImageURLs scans raw markup for image sources, keeping candidates that
// are already absolute or that carry the marketplace domain token. Relative
// protocol references get an https: prefix. Order is first-seen in the
// document; no de-duplication.
//
// Extraction must run against the full markup, before any truncation applied
// for the summarization prompt, or trailing image tags get lost.
func ExtractImageURLs(markup string, domainToken string) []string {
	matches := imgSrcPattern.FindAllStringSubmatch(markup, -1)
	urls := make([]string, 0, len(matches))
	for _, match := range matches {
		src := match[1]
		if src == "" {
			continue
		}
		if !strings.HasPrefix(src, "http") && !strings.Contains(src, domainToken) {
			continue
		}
		if strings.HasPrefix(src, "http") {
			urls = append(urls, src)
		} else {
			urls = append(urls, "https:"+src)
		}
	}
	return urls
}
