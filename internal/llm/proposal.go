package llm

import (
	"context"
	"strings"
)

// GenerateProposal asks the model for a Persian research proposal on topic
// with the given sections. The Markdown reply is returned unmodified.
func (c *Client) GenerateProposal(ctx context.Context, topic string, sections []ProposalSection) (string, error) {
	return c.prompt(ctx, proposalPrompt(topic, sections))
}

// AnalyzeAbstract asks the model how relevant article is to query. The reply
// is returned unmodified.
func (c *Client) AnalyzeAbstract(ctx context.Context, article Article, query string) (string, error) {
	if strings.TrimSpace(article.Abstract) == "" {
		return "", ErrMissingAbstract
	}
	return c.prompt(ctx, analysisPrompt(article, query))
}
