package integrations

import (
	"fmt"
	"log"
	"strings"

	"github.com/kerbaras/audiobooks/pkg/data"
)

// Retag appends each chapter title to its file's title tag to help
// sorting in media players. Entries whose file never materialized are
// skipped; per-file errors are logged and do not stop the pass.
//
// The pass is idempotent: a title already containing the chapter title
// as a substring is left alone.
func Retag(manifest *data.Manifest, tagger Tagger) {
	for _, entry := range manifest.Entries() {
		if entry.FilePath == "" {
			continue
		}
		if entry.Status != data.StatusDone && entry.Status != data.StatusSkipped {
			continue
		}

		file, err := tagger.Load(entry.FilePath)
		if err != nil {
			log.Printf("Error tagging %s: %v", entry.FilePath, err)
			continue
		}

		title := file.Title()
		if !strings.Contains(title, entry.Title) {
			title = strings.TrimSpace(title + " " + entry.Title)
			file.SetTitle(title)
			if err := file.Save(); err != nil {
				log.Printf("Error tagging %s: %v", entry.FilePath, err)
			} else {
				fmt.Printf("File %s: title tag changed to %q\n", entry.FilePath, title)
			}
		}
		file.Close()
	}
}
