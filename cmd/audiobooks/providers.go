package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/kerbaras/audiobooks/pkg/providers"
)

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List supported audiobook providers",
	Run: func(cmd *cobra.Command, args []string) {
		registry := providers.NewRegistry()

		headerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true)
		cellStyle := lipgloss.NewStyle().Padding(0, 1)

		t := table.New().
			Border(lipgloss.HiddenBorder()).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return headerStyle
				}
				return cellStyle
			}).
			Headers("Provider", "Extension", "Search")

		for _, p := range registry.All() {
			resolved := registry.Resolve(p)
			search := "no"
			if p.Searchable() {
				search = "yes"
			}
			t.Row(p.URLPrefix, resolved.Ext, search)
		}

		fmt.Println(t)
	},
}

func init() {
	rootCmd.AddCommand(providersCmd)
}
