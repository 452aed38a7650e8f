package services

import (
	"fmt"
	"log"

	"github.com/kerbaras/audiobooks/pkg/data"
	"github.com/kerbaras/audiobooks/pkg/integrations"
	"github.com/kerbaras/audiobooks/pkg/providers"
)

// Fetcher is the full web client surface the controller needs.
type Fetcher interface {
	PageFetcher
	ResourceFetcher
}

// Options control one Process run.
type Options struct {
	OutputDir      string
	DryRun         bool
	Playlist       bool
	PlaylistFormat string
	NoTag          bool
	Workers        int
}

// Controller runs the full pipeline for one page URL:
// match providers, fetch page, build manifest, download, then the
// optional playlist, retag and history stages.
type Controller struct {
	registry *providers.Registry
	fetcher  Fetcher
	tagger   integrations.Tagger
	repo     *data.Repository // optional download history, may be nil
}

func NewController(registry *providers.Registry, fetcher Fetcher, tagger integrations.Tagger, repo *data.Repository) *Controller {
	return &Controller{registry: registry, fetcher: fetcher, tagger: tagger, repo: repo}
}

// Search runs the provider search path. It never touches the manifest
// pipeline.
func (c *Controller) Search(phrase string) ([]data.SearchResult, error) {
	return Search(c.fetcher, c.registry.All(), phrase)
}

// Process handles one URL end to end. Fatal conditions (unsupported
// provider, unreadable page, missing output dir) come back as errors;
// per-chapter failures are logged and reflected in entry statuses only.
func (c *Controller) Process(url string, opts Options) error {
	matched := c.registry.Match(url)
	if len(matched) == 0 {
		return fmt.Errorf("provider not supported: %s", url)
	}

	html, err := c.fetcher.FetchPage(url)
	if err != nil {
		return fmt.Errorf("downloading main page: %w", err)
	}

	manifest := BuildManifest(html, matched)
	if manifest.Len() == 0 {
		fmt.Println("No chapters found.")
	}

	downloader := NewDownloader(c.fetcher, opts.Workers)
	if err := downloader.Run(manifest, opts.OutputDir, opts.DryRun); err != nil {
		return err
	}

	if opts.Playlist {
		format := opts.PlaylistFormat
		if format == "" {
			format = integrations.PlaylistFormatPLS
		}
		if err := integrations.WritePlaylist(manifest, opts.OutputDir, format, opts.DryRun); err != nil {
			log.Printf("Error writing playlist: %v", err)
		}
	}

	if !opts.NoTag && !opts.DryRun {
		integrations.Retag(manifest, c.tagger)
	}

	if c.repo != nil && !opts.DryRun {
		if err := c.record(url, matched[0].URLPrefix, manifest); err != nil {
			log.Printf("Error recording history: %v", err)
		}
	}
	return nil
}

// record saves the run outcome to the history repository.
func (c *Controller) record(url, provider string, manifest *data.Manifest) error {
	status := "completed"
	if manifest.Len() == 0 {
		status = "empty"
	}
	for _, entry := range manifest.Entries() {
		if entry.Status == data.StatusFailed {
			status = "partial"
			break
		}
	}

	book := &data.Book{URL: url, Provider: provider, Status: status}
	if err := c.repo.SaveBook(book); err != nil {
		return err
	}
	for _, entry := range manifest.Entries() {
		if err := c.repo.SaveChapter(book.ID, entry); err != nil {
			return err
		}
	}
	return nil
}
