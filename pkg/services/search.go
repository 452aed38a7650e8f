package services

import (
	"regexp"
	"strings"

	"github.com/kerbaras/audiobooks/pkg/data"
	"github.com/kerbaras/audiobooks/pkg/providers"
)

// PageFetcher is the slice of the web client the search engine and
// controller need.
type PageFetcher interface {
	FetchPage(url string) (string, error)
}

// numericRefs matches HTML numeric character references, which the
// providers sprinkle through result titles.
var numericRefs = regexp.MustCompile(`&#.*?;`)

// PreparePhrase makes a phrase safe for substitution into a search
// URL template.
func PreparePhrase(phrase string) string {
	phrase = strings.ReplaceAll(phrase, " ", "+")
	return strings.ReplaceAll(phrase, "/", "+")
}

// Search queries every provider that exposes a search template and
// aggregates (link, title) results in provider order. Links pair with
// titles by position; a link without a matching title gets an error
// marker. There is no ranking or dedup across providers. A failed
// search-page fetch aborts the whole search, same as any page fetch.
// Providers are used unresolved: aliased entries search with their own
// templates.
func Search(fetcher PageFetcher, provs []providers.Provider, phrase string) ([]data.SearchResult, error) {
	query := PreparePhrase(phrase)

	var results []data.SearchResult
	for _, p := range provs {
		if !p.Searchable() {
			continue
		}
		url := strings.ReplaceAll(p.Search, "%q", query)
		html, err := fetcher.FetchPage(url)
		if err != nil {
			return nil, err
		}

		links := allCaptures(p.SearchLinks, html)
		titles := allCaptures(p.SearchTitles, html)

		for k, link := range links {
			if link == "" {
				continue
			}
			title := "<ERROR>"
			if k < len(titles) {
				title = titles[k]
			}
			results = append(results, data.SearchResult{
				Link:     p.SearchLinkPrefix + link,
				Title:    numericRefs.ReplaceAllString(title, ""),
				Provider: p.URLPrefix,
			})
		}
	}
	return results, nil
}

func allCaptures(rx *regexp.Regexp, s string) []string {
	matches := rx.FindAllStringSubmatch(s, -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		if len(m) > 1 {
			out = append(out, m[1])
		} else {
			out = append(out, m[0])
		}
	}
	return out
}
