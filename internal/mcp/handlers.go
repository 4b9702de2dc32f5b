package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/research-desk/internal/llm"
)

// handleFindArticles searches articles for a topic.
func (s *Server) handleFindArticles(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil || strings.TrimSpace(query) == "" {
		return mcp.NewToolResultError("missing required parameter: query"), nil
	}

	result, err := s.searcher.FindArticles(ctx, strings.TrimSpace(query))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("search failed: %v", err)), nil
	}

	return jsonResult(result)
}

// handleGenerateProposal drafts a proposal from a topic and a JSON list of
// sections.
func (s *Server) handleGenerateProposal(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	topic, err := request.RequireString("topic")
	if err != nil || strings.TrimSpace(topic) == "" {
		return mcp.NewToolResultError("missing required parameter: topic"), nil
	}
	raw, err := request.RequireString("sections")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: sections"), nil
	}

	var sections []llm.ProposalSection
	if err := json.Unmarshal([]byte(raw), &sections); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("sections must be a JSON array of {title, instructions}: %v", err)), nil
	}
	if len(sections) == 0 {
		return mcp.NewToolResultError("at least one section is required"), nil
	}
	for i := range sections {
		sections[i].Title = strings.TrimSpace(sections[i].Title)
		if err := s.validate.Struct(sections[i]); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid section %d: %v", i+1, err)), nil
		}
	}

	text, err := s.writer.GenerateProposal(ctx, strings.TrimSpace(topic), sections)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("proposal generation failed: %v", err)), nil
	}

	return mcp.NewToolResultText(text), nil
}

// handleAnalyzeArticles runs a meta-analysis for a research question.
func (s *Server) handleAnalyzeArticles(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil || strings.TrimSpace(query) == "" {
		return mcp.NewToolResultError("missing required parameter: query"), nil
	}

	limit := request.GetInt("limit", s.defaultLimit)
	if limit <= 0 {
		limit = s.defaultLimit
	}

	report, err := s.analyzer.Run(ctx, strings.TrimSpace(query), limit, nil)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	return jsonResult(report)
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
