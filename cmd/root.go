package cmd

import (
	"io"
	"log"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/research-desk/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "researchdesk",
	Short: "AI research assistant for article search, proposals and meta-analysis",
	Long: `Research Desk helps you find academic articles, draft Persian research
proposals and run quick meta-analyses. Every request goes through a
completion proxy that holds the API key, so no key is needed here.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.LoadDotEnv()
		if !verbose && !longRunning[cmd.Name()] {
			log.SetOutput(io.Discard)
		}
	},
}

// longRunning commands always log to stderr.
var longRunning = map[string]bool{"serve": true, "mcp": true}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
