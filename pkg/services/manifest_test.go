package services

import (
	"fmt"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kerbaras/audiobooks/pkg/providers"
)

// testProvider extracts <item href="..." title="..."/> pseudo-markup,
// keeping the builder tests independent from any real site's rules.
func testProvider() providers.Provider {
	return providers.Provider{
		URLPrefix: "https://test.example/",
		Ext:       "mp3",
		Chapters:  regexp.MustCompile(`(?s)<item>(.*?)</item>`),
		Href:      regexp.MustCompile(`href="(.*?)"`),
		Title:     regexp.MustCompile(`title="(.*?)"`),
	}
}

func item(href, title string) string {
	return fmt.Sprintf(`<item>href="%s" title="%s"</item>`, href, title)
}

func TestBuildManifest_ThreeChapters(t *testing.T) {
	html := item("https://a/1.mp3", "Intro") +
		item("https://a/2.mp3", "Ch1") +
		item("https://a/3.mp3", "Ch2")

	m := BuildManifest(html, []providers.Provider{testProvider()})

	require.Equal(t, 3, m.Len())
	entries := m.Entries()
	assert.Equal(t, "Intro (001).mp3", entries[0].Filename)
	assert.Equal(t, "Ch1 (002).mp3", entries[1].Filename)
	assert.Equal(t, "Ch2 (003).mp3", entries[2].Filename)
	assert.Equal(t, "https://a/2.mp3", entries[1].Href)
	assert.Equal(t, "Ch1", entries[1].Title)
}

func TestBuildManifest_EmptyHrefAdvancesOrdinal(t *testing.T) {
	html := item("", "Broken") +
		item("https://a/2.mp3", "Ch1") +
		item("https://a/3.mp3", "Ch2")

	m := BuildManifest(html, []providers.Provider{testProvider()})

	require.Equal(t, 2, m.Len())
	entries := m.Entries()
	assert.Equal(t, "Ch1 (002).mp3", entries[0].Filename)
	assert.Equal(t, "Ch2 (003).mp3", entries[1].Filename)
}

func TestBuildManifest_NoMatches(t *testing.T) {
	m := BuildManifest("<html><body>nothing here</body></html>", []providers.Provider{testProvider()})
	assert.Equal(t, 0, m.Len())
}

func TestBuildManifest_FragmentIsHrefWhenNoHrefPattern(t *testing.T) {
	p := providers.Provider{
		URLPrefix: "https://test.example/",
		Ext:       "mp3",
		Chapters:  regexp.MustCompile(` src="(https://.*?mp3.*?)"`),
	}
	html := `<audio src="https://cdn/ch1.mp3"></audio><audio src="https://cdn/ch2.mp3"></audio>`

	m := BuildManifest(html, []providers.Provider{p})

	require.Equal(t, 2, m.Len())
	entries := m.Entries()
	// No title pattern either: the filename doubles as the title.
	assert.Equal(t, "Part 001.mp3", entries[0].Filename)
	assert.Equal(t, "Part 001.mp3", entries[0].Title)
	assert.Equal(t, "https://cdn/ch1.mp3", entries[0].Href)
	assert.Equal(t, "Part 002.mp3", entries[1].Filename)
}

func TestBuildManifest_TitleFromHref(t *testing.T) {
	p := testProvider()
	p.TitleFromHref = true

	html := item("https://host/dir/art_of_war_01.mp3?x=1", "ignored")
	m := BuildManifest(html, []providers.Provider{p})

	require.Equal(t, 1, m.Len())
	assert.Equal(t, "art_of_war_01", m.Entries()[0].Title)
	assert.Equal(t, "art_of_war_01 (001).mp3", m.Entries()[0].Filename)
}

func TestBuildManifest_OrdinalContinuesAcrossProviders(t *testing.T) {
	p1 := testProvider()
	p2 := providers.Provider{
		URLPrefix: "https://other.example/",
		Ext:       "ogg",
		Chapters:  regexp.MustCompile(`(?s)<other>(.*?)</other>`),
		Href:      regexp.MustCompile(`href="(.*?)"`),
		Title:     regexp.MustCompile(`title="(.*?)"`),
	}
	html := item("https://a/1.mp3", "One") +
		`<other>href="https://b/2.ogg" title="Two"</other>`

	m := BuildManifest(html, []providers.Provider{p1, p2})

	require.Equal(t, 2, m.Len())
	entries := m.Entries()
	assert.Equal(t, "One (001).mp3", entries[0].Filename)
	assert.Equal(t, "Two (002).ogg", entries[1].Filename)
}

func TestBuildManifest_ZeroPadding(t *testing.T) {
	var html strings.Builder
	for i := 0; i < 12; i++ {
		html.WriteString(item(fmt.Sprintf("https://a/%d.mp3", i), ""))
	}

	m := BuildManifest(html.String(), []providers.Provider{testProvider()})

	require.Equal(t, 12, m.Len())
	assert.Equal(t, "Part 001.mp3", m.Entries()[0].Filename)
	assert.Equal(t, "Part 012.mp3", m.Entries()[11].Filename)
}

func TestBuildManifest_DefaultExtension(t *testing.T) {
	p := testProvider()
	p.Ext = ""

	m := BuildManifest(item("https://a/1.bin", ""), []providers.Provider{p})

	require.Equal(t, 1, m.Len())
	assert.Equal(t, "Part 001.unknown", m.Entries()[0].Filename)
}
