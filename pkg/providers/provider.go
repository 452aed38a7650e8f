package providers

import (
	"regexp"
	"strings"
)

// Provider describes how to extract chapters and search results from
// one site's markup. All extraction is regex-based: the pages these
// sites serve are hand-written HTML, and the fragments we need are raw
// substrings rather than well-formed elements.
type Provider struct {
	// URLPrefix matches input URLs by prefix and doubles as the
	// provider's display name.
	URLPrefix string

	// Ext is the default file extension when a chapter title is empty.
	Ext string

	// CopyFrom aliases this provider's extraction rules to another
	// registry entry, identified by its URLPrefix. The whole rule is
	// inherited; URLPrefix and the search fields below stay local.
	CopyFrom string

	// Chapters yields one raw fragment per candidate chapter when
	// matched repeatedly against the full page. If the pattern has a
	// capture group, the group is the fragment; otherwise the whole
	// match is.
	Chapters *regexp.Regexp

	// Href extracts the resource URL from a fragment (first capture).
	// When nil, the fragment itself is the URL.
	Href *regexp.Regexp

	// Title extracts a human title from a fragment (first capture).
	Title *regexp.Regexp

	// TitleFromHref derives the title from the URL's last path segment
	// instead of Title.
	TitleFromHref bool

	// Search is a search URL template with a %q placeholder for the
	// query phrase.
	Search string

	// SearchLinks and SearchTitles extract parallel (link, title)
	// lists from a search-results page.
	SearchLinks  *regexp.Regexp
	SearchTitles *regexp.Regexp

	// SearchLinkPrefix is prepended to extracted search links, for
	// sites that emit relative URLs.
	SearchLinkPrefix string
}

// Searchable reports whether the provider exposes a usable search rule.
func (p Provider) Searchable() bool {
	return p.Search != "" && p.SearchLinks != nil && p.SearchTitles != nil
}

// Registry is the ordered, immutable table of supported providers.
type Registry struct {
	providers []Provider
}

func NewRegistry() *Registry {
	return &Registry{providers: defaults()}
}

// All returns the providers in registry order, unresolved.
func (r *Registry) All() []Provider {
	return r.providers
}

// Match returns every provider whose URLPrefix is a prefix of url, in
// registry order, with aliases already resolved. An empty result means
// the URL belongs to no supported provider.
func (r *Registry) Match(url string) []Provider {
	var matched []Provider
	for _, p := range r.providers {
		if strings.HasPrefix(url, p.URLPrefix) {
			matched = append(matched, r.Resolve(p))
		}
	}
	return matched
}

// Resolve flattens an aliased provider into the rule it copies from,
// so extraction logic never has to chase aliases. The target's
// extraction fields are inherited verbatim; the provider keeps its own
// URLPrefix. Unknown targets leave the provider as-is.
func (r *Registry) Resolve(p Provider) Provider {
	if p.CopyFrom == "" {
		return p
	}
	for _, target := range r.providers {
		if target.URLPrefix == p.CopyFrom {
			resolved := target
			resolved.URLPrefix = p.URLPrefix
			return resolved
		}
	}
	return p
}
