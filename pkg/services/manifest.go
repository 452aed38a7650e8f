package services

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/kerbaras/audiobooks/pkg/data"
	"github.com/kerbaras/audiobooks/pkg/providers"
)

// BuildManifest applies each provider's chapter pattern to the page
// and returns the ordered manifest of discovered chapters. Providers
// must already be alias-resolved. Zero matches is not an error; the
// caller gets an empty manifest.
//
// One global ordinal numbers the candidates across all providers. It
// advances for every fragment the pattern finds, including fragments
// later dropped for an empty href, so ordinals reflect position on the
// page rather than final manifest size.
func BuildManifest(html string, provs []providers.Provider) *data.Manifest {
	manifest := data.NewManifest()
	ordinal := 0

	for _, p := range provs {
		if p.Chapters == nil {
			continue
		}
		for _, match := range p.Chapters.FindAllStringSubmatch(html, -1) {
			ordinal++

			fragment := match[0]
			if len(match) > 1 {
				fragment = match[1]
			}

			href := fragment
			if p.Href != nil {
				href = firstCapture(p.Href, fragment)
				if href == "" {
					continue
				}
			}

			var title string
			switch {
			case p.TitleFromHref:
				title = titleFromHref(href)
			case p.Title != nil:
				title = firstCapture(p.Title, fragment)
			}

			ext := p.Ext
			if ext == "" {
				ext = "unknown"
			}

			var filename string
			if title == "" {
				filename = fmt.Sprintf("Part %03d.%s", ordinal, ext)
				title = filename
			} else {
				filename = fmt.Sprintf("%s (%03d).%s", title, ordinal, ext)
			}

			manifest.Put(&data.Entry{
				Filename: filename,
				Href:     href,
				Title:    title,
			})
		}
	}
	return manifest
}

// firstCapture returns the first capture group of the first match, or
// the whole match when the pattern has no groups.
func firstCapture(rx *regexp.Regexp, s string) string {
	m := rx.FindStringSubmatch(s)
	switch {
	case len(m) > 1:
		return m[1]
	case len(m) == 1:
		return m[0]
	}
	return ""
}

// titleFromHref takes the last /-delimited segment of the URL and cuts
// it at the first dot.
func titleFromHref(href string) string {
	seg := href
	if idx := strings.LastIndex(seg, "/"); idx >= 0 {
		seg = seg[idx+1:]
	}
	title, _, _ := strings.Cut(seg, ".")
	return title
}
