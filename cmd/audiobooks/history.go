package cmd

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/kerbaras/audiobooks/pkg/data"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List previously downloaded audiobooks",
	Long:  "Display every recorded download run with its chapter counts",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()

		repo, err := data.NewRepository(cfg.HistoryDB)
		cobra.CheckErr(err)
		defer repo.Close()

		books, err := repo.ListBooks()
		cobra.CheckErr(err)

		if len(books) == 0 {
			fmt.Println("📚 No downloads recorded yet.")
			return
		}

		columns := []table.Column{
			{Title: "URL", Width: 44},
			{Title: "Provider", Width: 28},
			{Title: "Status", Width: 10},
			{Title: "Chapters", Width: 9},
			{Title: "Downloaded", Width: 11},
		}

		rows := []table.Row{}
		for _, book := range books {
			_, total, downloaded, _ := repo.GetBookWithChapterCount(book.ID)
			rows = append(rows, table.Row{
				truncateString(book.URL, 42),
				truncateString(book.Provider, 26),
				book.Status,
				fmt.Sprintf("%d", total),
				fmt.Sprintf("%d", downloaded),
			})
		}

		t := table.New(
			table.WithColumns(columns),
			table.WithRows(rows),
			table.WithFocused(false),
			table.WithHeight(len(rows)),
		)

		s := table.DefaultStyles()
		s.Header = s.Header.
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			BorderBottom(true).
			Bold(true)
		s.Selected = s.Selected.
			Foreground(lipgloss.Color("229")).
			Bold(false)
		t.SetStyles(s)

		fmt.Printf("\n📚 History (%d books)\n\n", len(books))
		fmt.Println(t.View())
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
}
