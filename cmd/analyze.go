package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/research-desk/internal/progress"
)

var (
	analyzeLimit int
	analyzeJSON  bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <question>",
	Short: "Search articles for a research question and analyse each abstract",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		svc := newServices(cfg)

		limit := cfg.AnalysisLimit
		if cmd.Flags().Changed("limit") {
			limit = analyzeLimit
		}

		query := strings.Join(args, " ")
		report, err := svc.analyzer.Run(cmd.Context(), query, limit, progress.NewReporter())
		if err != nil {
			return fmt.Errorf("meta-analysis: %w", err)
		}

		out := cmd.OutOrStdout()
		if analyzeJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		}

		fmt.Fprintf(out, "Meta-analysis for %q\n\n", report.Query)
		for _, r := range report.Analyzed {
			fmt.Fprintf(out, "[%d] %s\n%s\n\n", r.ArticleID, r.Title, r.Analysis)
		}
		if len(report.Skipped) > 0 {
			fmt.Fprintf(out, "Skipped %d article(s):\n", len(report.Skipped))
			for _, r := range report.Skipped {
				fmt.Fprintf(out, "  [%d] %s: %s\n", r.ArticleID, r.Title, r.Error)
			}
		}
		return nil
	},
}

func init() {
	analyzeCmd.Flags().IntVar(&analyzeLimit, "limit", 5, "maximum number of articles to analyse (overrides analysis_limit)")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "print the report as JSON")
	rootCmd.AddCommand(analyzeCmd)
}
