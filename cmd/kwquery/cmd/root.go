package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"keyscout/internal/config"
)

var (
	cfg         *config.Config
	sourcesFile string
	sourceName  string
)

var rootCmd = &cobra.Command{
	Use:   "kwquery",
	Short: "kwquery scores keyword ideas for a seed keyword from the command line.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = config.Load()
		if sourcesFile != "" {
			cfg.SourcesFile = sourcesFile
		}
		if sourceName != "" {
			cfg.KeywordSource = sourceName
		}
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&sourcesFile, "sources-file", "", "YAML file overriding the source templates (default $SOURCES_FILE)")
	rootCmd.PersistentFlags().StringVar(&sourceName, "source", "", "keyword source variant (default $KEYWORD_SOURCE)")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
