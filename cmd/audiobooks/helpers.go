package cmd

import (
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kerbaras/audiobooks/pkg/config"
	"github.com/kerbaras/audiobooks/pkg/data"
	"github.com/kerbaras/audiobooks/pkg/integrations"
	"github.com/kerbaras/audiobooks/pkg/providers"
	"github.com/kerbaras/audiobooks/pkg/services"
	"github.com/kerbaras/audiobooks/pkg/utils"
)

func loadConfig() config.Config {
	cfg, err := config.Load(cfgPath)
	cobra.CheckErr(err)
	return cfg
}

// registerPipelineFlags adds the flags shared by every command that
// can end up running the download pipeline.
func registerPipelineFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("output-dir", "o", "", "where files should be downloaded (default: working directory)")
	cmd.Flags().Bool("pls", false, "create a playlist file in the target directory")
	cmd.Flags().Bool("no-tag", false, "skip updating title tags with chapter titles")
	cmd.Flags().Bool("dry-run", false, "only display the planned file list and hrefs")
	cmd.Flags().IntP("workers", "w", 0, "max concurrent chapter downloads (default: 1)")
}

// pipelineOptions merges flags over the config file values.
func pipelineOptions(cmd *cobra.Command, cfg config.Config) services.Options {
	opts := services.Options{
		OutputDir:      cfg.OutputDir,
		PlaylistFormat: cfg.PlaylistFormat,
		Workers:        cfg.Workers,
	}
	if v, _ := cmd.Flags().GetString("output-dir"); v != "" {
		opts.OutputDir = v
	}
	if v, _ := cmd.Flags().GetInt("workers"); v > 0 {
		opts.Workers = v
	}
	opts.Playlist, _ = cmd.Flags().GetBool("pls")
	opts.NoTag, _ = cmd.Flags().GetBool("no-tag")
	opts.DryRun, _ = cmd.Flags().GetBool("dry-run")
	return opts
}

// newController wires up the registry, web client, tagger and history
// repository. History is best-effort: when the database cannot be
// opened the pipeline still runs, just without recording.
func newController(cfg config.Config) (*services.Controller, func()) {
	web := utils.NewWeb(cfg.UserAgent)

	var repo *data.Repository
	if err := os.MkdirAll(filepath.Dir(cfg.HistoryDB), 0o755); err == nil {
		r, err := data.NewRepository(cfg.HistoryDB)
		if err != nil {
			log.Printf("History disabled: %v", err)
		} else {
			repo = r
		}
	}

	ctrl := services.NewController(providers.NewRegistry(), web, integrations.NewID3Tagger(), repo)
	cleanup := func() {
		if repo != nil {
			repo.Close()
		}
	}
	return ctrl, cleanup
}

func truncateString(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
