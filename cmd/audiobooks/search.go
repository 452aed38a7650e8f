package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/kerbaras/audiobooks/pkg/app"
)

var searchCmd = &cobra.Command{
	Use:   "search [phrase]",
	Short: "Search providers for audiobooks",
	Long:  "Search every provider that supports it and display matching audiobooks; with --interactive, pick one to download",
	Args:  cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		phrase := strings.Join(args, " ")
		interactive, _ := cmd.Flags().GetBool("interactive")

		if interactive {
			runInteractiveSearch(cmd, phrase)
			return
		}

		if phrase == "" {
			cobra.CheckErr(fmt.Errorf("no search phrase given"))
		}

		cfg := loadConfig()
		ctrl, cleanup := newController(cfg)
		defer cleanup()

		results, err := ctrl.Search(phrase)
		cobra.CheckErr(err)

		if len(results) == 0 {
			fmt.Println("No matching audiobooks found!")
			return
		}

		var (
			purple = lipgloss.Color("99")

			headerStyle = lipgloss.NewStyle().Foreground(purple).Bold(true).Align(lipgloss.Center)
			cellStyle   = lipgloss.NewStyle().Padding(0, 1)
		)

		t := table.New().
			Border(lipgloss.HiddenBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(purple)).
			StyleFunc(func(row, col int) lipgloss.Style {
				switch {
				case row == table.HeaderRow:
					return headerStyle
				default:
					return cellStyle
				}
			}).
			Headers("#", "Title", "Link")

		for i, r := range results {
			t.Row(fmt.Sprintf("%d", i+1), truncateString(r.Title, 48), r.Link)
		}

		fmt.Printf("Found %d matching audiobooks:\n", len(results))
		fmt.Println(t)
	},
}

// runInteractiveSearch shows the TUI picker and downloads whatever the
// user selects.
func runInteractiveSearch(cmd *cobra.Command, phrase string) {
	cfg := loadConfig()
	ctrl, cleanup := newController(cfg)
	defer cleanup()

	result, err := app.RunSearch(ctrl.Search, phrase)
	cobra.CheckErr(err)
	if result == nil {
		return
	}

	fmt.Printf("⬇️  Downloading %q\n", result.Title)
	opts := pipelineOptions(cmd, cfg)
	if err := ctrl.Process(result.Link, opts); err != nil {
		cleanup()
		cobra.CheckErr(err)
	}
}

func init() {
	searchCmd.Flags().BoolP("interactive", "i", false, "pick a result interactively and download it")
	registerPipelineFlags(searchCmd)
	rootCmd.AddCommand(searchCmd)
}
