package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var searchJSON bool

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Find academic articles for a research topic",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		svc := newServices(cfg)

		query := strings.Join(args, " ")
		result, err := svc.searcher.FindArticles(cmd.Context(), query)
		if err != nil {
			return fmt.Errorf("searching articles: %w", err)
		}

		out := cmd.OutOrStdout()
		if searchJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		}

		if result.ResultsCount == 0 {
			fmt.Fprintln(os.Stderr, "No articles found.")
			return nil
		}
		fmt.Fprintf(out, "Found %d article(s) for %q:\n\n", result.ResultsCount, query)
		for i, a := range result.Articles {
			fmt.Fprintf(out, "%d. %s\n", i+1, a.Title)
			fmt.Fprintf(out, "   %s. %s (%d). Citations: %d\n", a.Authors, a.Journal, a.Year, a.Citations)
			if a.Abstract != "" {
				fmt.Fprintf(out, "   %s\n", a.Abstract)
			}
			fmt.Fprintln(out)
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "print the result as JSON")
	rootCmd.AddCommand(searchCmd)
}
