package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var downloadCmd = &cobra.Command{
	Use:   "download [urls...]",
	Short: "Download all chapters referenced from the given pages",
	Long:  "Download every chapter referenced from the given WWW pages, then optionally build a playlist and update title tags",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		opts := pipelineOptions(cmd, cfg)

		ctrl, cleanup := newController(cfg)
		defer cleanup()

		for _, url := range args {
			fmt.Printf("📖 Processing %s\n", url)
			if err := ctrl.Process(url, opts); err != nil {
				cleanup()
				cobra.CheckErr(err)
			}
		}
	},
}

func init() {
	registerPipelineFlags(downloadCmd)
	rootCmd.AddCommand(downloadCmd)
}
