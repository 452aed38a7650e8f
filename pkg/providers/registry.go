package providers

import "regexp"

// defaults is the static provider table. Order matters: manifests and
// search results aggregate over providers in this order.
func defaults() []Provider {
	return []Provider{
		{
			URLPrefix:    "https://fulllengthaudiobooks.com/",
			Ext:          "mp3",
			Chapters:     regexp.MustCompile(` src="(https://.*?mp3.*?)"`),
			Search:       "https://fulllengthaudiobooks.com/?s=%q",
			SearchLinks:  regexp.MustCompile(`<h2 class="entry-title post-title"><a href="(.*?)".*?rel="bookmark">.*?</a></h2>`),
			SearchTitles: regexp.MustCompile(`<h2 class="entry-title post-title"><a href=".*?".*?rel="bookmark">(.*?)</a></h2>`),
		},
		{
			URLPrefix:     "https://librivox.org/",
			Ext:           "mp3",
			Chapters:      regexp.MustCompile(`(?s)<tr>(.*?)</tr>`),
			Href:          regexp.MustCompile(`(?s)</td>.*?<td><a href="(.*?\.mp3.*?)" class="chapter-name">`),
			Title:         regexp.MustCompile(`(?s)class="chapter-name">(.*?)</a></td>`),
			TitleFromHref: true,
		},
		{
			URLPrefix:    "https://goldenaudiobooks.com/",
			CopyFrom:     "https://fulllengthaudiobooks.com/",
			Search:       "https://goldenaudiobooks.com/?s=%q",
			SearchLinks:  regexp.MustCompile(`<h2 class="entry-title"><a href="(.*?)".*?rel="bookmark">.*?</a></h2>`),
			SearchTitles: regexp.MustCompile(`<h2 class="entry-title"><a href=".*?".*?rel="bookmark">(.*?)</a></h2>`),
		},
		{
			URLPrefix:    "https://bookaudiobooks.com/",
			CopyFrom:     "https://fulllengthaudiobooks.com/",
			Search:       "https://bookaudiobooks.com/?s=%q",
			SearchLinks:  regexp.MustCompile(`<h2 class="entry-title"><a href="(.*?)".*?rel="bookmark">.*?</a></h2>`),
			SearchTitles: regexp.MustCompile(`<h2 class="entry-title"><a href=".*?".*?rel="bookmark">(.*?)</a></h2>`),
		},
		{
			URLPrefix:        "https://archive.org",
			Ext:              "mp3",
			Chapters:         regexp.MustCompile(`(?s)<div itemprop="(.*?)</div>`),
			Href:             regexp.MustCompile(`(?s)<link itemprop="associatedMedia" href="([^<]*?\.mp3)">`),
			Title:            regexp.MustCompile(`content="(.*?)"`),
			Search:           "https://archive.org/search.php?query=%q&and[]=mediatype%3A%22audio%22&and[]=subject%3A%22audiobook%22",
			SearchLinks:      regexp.MustCompile(`(?s)<a href="([^<]*?)" title=".*?".*?data-event-click-tracking="GenericNonCollection|ItemTile">`),
			SearchTitles:     regexp.MustCompile(`(?s)<a href="[^<]*?" title="(.*?)".*?data-event-click-tracking="GenericNonCollection|ItemTile">`),
			SearchLinkPrefix: "https://archive.org",
		},
	}
}
