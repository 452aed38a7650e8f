package services

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/kerbaras/audiobooks/pkg/data"
)

// ResourceFetcher is the slice of the web client the downloader needs.
type ResourceFetcher interface {
	FetchResource(url string) ([]byte, error)
}

// Downloader fetches manifest entries into an output directory with
// bounded concurrency. Per-entry failures never abort the pass; the
// only fatal condition is a missing output directory.
type Downloader struct {
	fetcher ResourceFetcher
	workers int
}

func NewDownloader(fetcher ResourceFetcher, workers int) *Downloader {
	if workers < 1 {
		workers = 1
	}
	return &Downloader{fetcher: fetcher, workers: workers}
}

// Run processes every manifest entry in insertion order, marking each
// one done, skipped or failed. Existing files are never overwritten.
// In dry-run mode nothing is fetched or written; the planned
// (path, href) pairs are printed instead.
//
// Fetches may overlap up to the worker limit, but each goroutine owns
// exactly one entry and its result slot, and all reporting happens
// after the wait, in manifest order.
func (d *Downloader) Run(manifest *data.Manifest, outputDir string, dryRun bool) error {
	info, err := os.Stat(outputDir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("target directory %s does not exist", outputDir)
	}

	entries := manifest.Entries()
	notes := make([]string, len(entries))

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, d.workers)

	for idx, entry := range entries {
		if entry.Href == "" {
			entry.Status = data.StatusFailed
			notes[idx] = fmt.Sprintf("Empty URL for %s. Ignoring...", entry.Filename)
			continue
		}

		entry.FilePath = filepath.Join(outputDir, entry.Filename)

		if dryRun {
			notes[idx] = fmt.Sprintf("%s:  <--- %s", entry.FilePath, entry.Href)
			continue
		}

		if _, err := os.Stat(entry.FilePath); err == nil {
			entry.Status = data.StatusSkipped
			notes[idx] = fmt.Sprintf("File %s already exists! Ignoring...", entry.FilePath)
			continue
		}

		wg.Add(1)
		go func(idx int, entry *data.Entry) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			body, err := d.fetcher.FetchResource(entry.Href)
			if err != nil {
				entry.Status = data.StatusFailed
				notes[idx] = fmt.Sprintf("Error downloading %s: %v", entry.Href, err)
				return
			}
			if err := os.WriteFile(entry.FilePath, body, 0o644); err != nil {
				entry.Status = data.StatusFailed
				notes[idx] = fmt.Sprintf("Error writing %s: %v", entry.FilePath, err)
				return
			}
			entry.Status = data.StatusDone
			notes[idx] = fmt.Sprintf("Downloaded: %s", entry.Href)
		}(idx, entry)
	}

	wg.Wait()

	for _, note := range notes {
		if note != "" {
			fmt.Println(note)
		}
	}
	return nil
}
