package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/research-desk/internal/llm"
)

var (
	proposalTopic    string
	proposalSections []string
	proposalOutput   string
)

var proposalCmd = &cobra.Command{
	Use:   "proposal",
	Short: "Generate a Persian research proposal in Markdown",
	Example: `  researchdesk proposal --topic "اثر خواب بر حافظه" \
    --section "مقدمه:بیان مسئله" --section "روش‌شناسی"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		topic := strings.TrimSpace(proposalTopic)
		if topic == "" {
			return fmt.Errorf("--topic is required")
		}
		sections, err := parseSectionFlags(proposalSections)
		if err != nil {
			return err
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		svc := newServices(cfg)

		fmt.Fprintf(os.Stderr, "Generating proposal with %d section(s)...\n", len(sections))
		text, err := svc.client.GenerateProposal(cmd.Context(), topic, sections)
		if err != nil {
			return fmt.Errorf("generating proposal: %w", err)
		}

		if proposalOutput != "" {
			if err := os.WriteFile(proposalOutput, []byte(text), 0644); err != nil {
				return fmt.Errorf("writing proposal: %w", err)
			}
			fmt.Fprintf(os.Stderr, "Proposal written to %s\n", proposalOutput)
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), text)
		return nil
	},
}

// parseSectionFlags reads "title" or "title:instructions" values.
func parseSectionFlags(values []string) ([]llm.ProposalSection, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("at least one --section is required")
	}
	sections := make([]llm.ProposalSection, 0, len(values))
	for _, v := range values {
		title, instructions, _ := strings.Cut(v, ":")
		title = strings.TrimSpace(title)
		if title == "" {
			return nil, fmt.Errorf("section %q has no title", v)
		}
		sections = append(sections, llm.ProposalSection{
			Title:        title,
			Instructions: strings.TrimSpace(instructions),
		})
	}
	return sections, nil
}

func init() {
	proposalCmd.Flags().StringVar(&proposalTopic, "topic", "", "main topic of the proposal")
	proposalCmd.Flags().StringArrayVar(&proposalSections, "section", nil, "section as title[:instructions] (repeatable)")
	proposalCmd.Flags().StringVarP(&proposalOutput, "output", "o", "", "write the proposal to a file instead of stdout")
	rootCmd.AddCommand(proposalCmd)
}
