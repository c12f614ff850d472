package cmd

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"keyscout/internal/config"
	"keyscout/internal/keywords"
	"keyscout/internal/ranking"
	"keyscout/internal/source"
)

var (
	country  string
	lang     string
	sortRows bool
)

func init() {
	queryCmd.Flags().StringVar(&country, "country", "", "two-letter country code (default $DEFAULT_COUNTRY)")
	queryCmd.Flags().StringVar(&lang, "lang", "", "two-letter language code (default $DEFAULT_LANGUAGE)")
	queryCmd.Flags().BoolVar(&sortRows, "sort", false, "order rows by descending score")
	rootCmd.AddCommand(queryCmd)
}

var queryCmd = &cobra.Command{
	Use:   "query <seed keyword>",
	Short: "Fetches keyword ideas for a seed keyword and prints them scored.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		yamlCfg, err := config.LoadYAMLConfig(cfg.SourcesFile)
		if err != nil {
			return fmt.Errorf("failed to load sources file: %w", err)
		}

		src, err := source.Build(source.Deps{Config: cfg, Templates: yamlCfg})
		if err != nil {
			return err
		}

		svc := keywords.NewService(src, keywords.Options{
			Timeout:         cfg.SourceTimeout,
			DefaultCountry:  cfg.DefaultCountry,
			DefaultLanguage: cfg.DefaultLanguage,
		})

		resp, err := svc.Query(cmd.Context(), keywords.Request{
			Keyword:  strings.Join(args, " "),
			Country:  country,
			Language: lang,
		})
		if err != nil {
			return err
		}

		result := resp.Ranked()
		view := ranking.Format(result, resp.Country, resp.Language)
		if sortRows {
			view = ranking.Format(ranking.Result{Rows: result.SortedByScore(), Best: result.Best}, resp.Country, resp.Language)
		}

		out := cmd.OutOrStdout()
		if len(view.Rows) == 0 {
			fmt.Fprintf(out, "No keyword candidates for %q from %s.\n", resp.Keyword, resp.Source)
			return nil
		}

		t := table.NewWriter()
		t.SetOutputMirror(out)
		t.AppendHeader(table.Row{"Keyword", "Volume", "Competition", "CPC", "Score", "Grade"})
		for _, row := range view.Rows {
			t.AppendRow(table.Row{row.Keyword, row.Volume, row.Competition, row.CPC, row.Score, row.GradeLabel})
		}
		t.SetStyle(table.StyleRounded)
		t.Render()

		if best := view.Best; best != nil {
			fmt.Fprintf(out, "Best pick: %s (%d, %s)\n", best.Keyword, best.Score, best.GradeLabel)
		}
		return nil
	},
}
