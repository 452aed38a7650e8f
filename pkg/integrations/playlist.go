package integrations

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kerbaras/audiobooks/pkg/data"
)

// PlaylistFormatPLS is the only playlist format currently supported.
const PlaylistFormatPLS = "pls"

// PlaylistPath computes the playlist location inside the output dir.
func PlaylistPath(outputDir, format string) string {
	return filepath.Join(outputDir, "playlist."+format)
}

// WritePlaylist serializes the manifest, in insertion order, into
// {outputDir}/playlist.{format}. An existing playlist file is never
// overwritten; that case is reported and treated as a no-op. Dry-run
// reports the target path without writing.
func WritePlaylist(manifest *data.Manifest, outputDir, format string, dryRun bool) error {
	if format != PlaylistFormatPLS {
		return fmt.Errorf("unsupported playlist format: %s", format)
	}
	path := PlaylistPath(outputDir, format)

	if _, err := os.Stat(path); err == nil {
		fmt.Printf("File %s already exists! Ignoring...\n", path)
		return nil
	}

	if dryRun {
		fmt.Printf("Playlist saved to %s...\n", path)
		return nil
	}

	var b strings.Builder
	b.WriteString("[playlist]\n\n")
	for n, entry := range manifest.Entries() {
		fmt.Fprintf(&b, "File%d=%s\nTitle%d=%s\n\n", n+1, entry.Filename, n+1, entry.Title)
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write playlist %s: %w", path, err)
	}
	fmt.Printf("Playlist saved to %s...\n", path)
	return nil
}
