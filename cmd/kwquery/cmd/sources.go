package cmd

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"keyscout/internal/source"
)

func init() {
	rootCmd.AddCommand(sourcesCmd)
}

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "Prints the keyword source variants.",
	Run: func(cmd *cobra.Command, args []string) {
		t := table.NewWriter()
		t.SetOutputMirror(cmd.OutOrStdout())
		t.AppendHeader(table.Row{"Source", "Active"})

		for _, name := range source.Names() {
			active := ""
			if name == cfg.KeywordSource {
				active = "*"
			}
			t.AppendRow(table.Row{name, active})
		}

		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
