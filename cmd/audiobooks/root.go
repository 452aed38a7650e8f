package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/kerbaras/audiobooks/pkg/config"
)

const version = "1.0.0"

var cfgPath string

var rootCmd = &cobra.Command{
	Use:     "audiobooks",
	Short:   "Download audiobook chapters from supported providers",
	Long:    "Discover, download, tag and build playlists for audiobook chapters published on supported WWW pages",
	Version: version,
	Run: func(cmd *cobra.Command, args []string) {
		// Launch the interactive search screen by default
		runInteractiveSearch(cmd, "")
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", config.DefaultPath(), "config file path")
	registerPipelineFlags(rootCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
