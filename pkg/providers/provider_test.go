package providers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_MatchByPrefix(t *testing.T) {
	r := NewRegistry()

	matched := r.Match("https://librivox.org/the-art-of-war-by-sun-tzu/")
	require.Len(t, matched, 1)
	assert.Equal(t, "https://librivox.org/", matched[0].URLPrefix)
	assert.True(t, matched[0].TitleFromHref)
}

func TestRegistry_MatchUnsupported(t *testing.T) {
	r := NewRegistry()
	assert.Empty(t, r.Match("https://example.com/not-a-provider/"))
}

func TestRegistry_MatchResolvesAlias(t *testing.T) {
	r := NewRegistry()

	matched := r.Match("https://goldenaudiobooks.com/some-book/")
	require.Len(t, matched, 1)

	// Extraction fields come from fulllengthaudiobooks, the alias
	// target; the prefix stays local.
	assert.Equal(t, "https://goldenaudiobooks.com/", matched[0].URLPrefix)
	assert.Equal(t, "mp3", matched[0].Ext)
	require.NotNil(t, matched[0].Chapters)
	assert.Nil(t, matched[0].Href)
}

func TestRegistry_ResolvePlainProviderUnchanged(t *testing.T) {
	r := NewRegistry()
	p := r.All()[0]
	assert.Equal(t, p, r.Resolve(p))
}

func TestRegistry_ResolveUnknownTarget(t *testing.T) {
	r := NewRegistry()
	p := Provider{URLPrefix: "https://x.example/", CopyFrom: "https://unknown.example/"}
	assert.Equal(t, p, r.Resolve(p))
}

func TestProvider_Searchable(t *testing.T) {
	r := NewRegistry()

	searchable := 0
	for _, p := range r.All() {
		if p.Searchable() {
			searchable++
		}
	}
	// librivox is the only provider without a search template.
	assert.Equal(t, len(r.All())-1, searchable)
}

func TestRegistry_OrderIsStable(t *testing.T) {
	r := NewRegistry()
	prefixes := []string{}
	for _, p := range r.All() {
		prefixes = append(prefixes, p.URLPrefix)
	}
	assert.Equal(t, []string{
		"https://fulllengthaudiobooks.com/",
		"https://librivox.org/",
		"https://goldenaudiobooks.com/",
		"https://bookaudiobooks.com/",
		"https://archive.org",
	}, prefixes)
}
