package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/research-desk/internal/analysis"
	"github.com/ziadkadry99/research-desk/internal/llm"
)

// mockAdapter implements the llm interfaces for testing.
type mockAdapter struct {
	err      error
	topic    string
	sections []llm.ProposalSection
}

func (m *mockAdapter) FindArticles(_ context.Context, query string) (*llm.SearchResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	articles := []llm.Article{
		{ID: 1, Title: query + " one", Abstract: "a"},
		{ID: 2, Title: query + " two", Abstract: "b"},
		{ID: 3, Title: query + " three", Abstract: "c"},
	}
	return &llm.SearchResult{ResultsCount: len(articles), Articles: articles}, nil
}

func (m *mockAdapter) GenerateProposal(_ context.Context, topic string, sections []llm.ProposalSection) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.topic = topic
	m.sections = sections
	return "# " + topic, nil
}

func (m *mockAdapter) AnalyzeAbstract(_ context.Context, article llm.Article, _ string) (string, error) {
	return "ok " + article.Title, nil
}

func newTestServer(m *mockAdapter) *Server {
	return NewServer(m, m, analysis.New(m, m), 2)
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) == 0 {
		t.Fatal("empty tool result")
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content is %T, want text", result.Content[0])
	}
	return text.Text
}

func TestToolDefinitions(t *testing.T) {
	tests := []struct {
		name     string
		tool     mcp.Tool
		wantName string
	}{
		{"find_articles", findArticlesTool, "find_articles"},
		{"generate_proposal", generateProposalTool, "generate_proposal"},
		{"analyze_articles", analyzeArticlesTool, "analyze_articles"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.tool.Name != tt.wantName {
				t.Errorf("tool name = %q, want %q", tt.tool.Name, tt.wantName)
			}
			if tt.tool.Description == "" {
				t.Error("tool description should not be empty")
			}
		})
	}
}

func TestNewServer(t *testing.T) {
	srv := newTestServer(&mockAdapter{})
	if srv == nil {
		t.Fatal("NewServer returned nil")
	}
	if srv.mcp == nil {
		t.Fatal("MCP server not initialized")
	}
	if srv.defaultLimit != 2 {
		t.Errorf("defaultLimit = %d, want 2", srv.defaultLimit)
	}
}

func TestHandleFindArticles(t *testing.T) {
	ctx := context.Background()

	t.Run("basic search", func(t *testing.T) {
		srv := newTestServer(&mockAdapter{})
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"query": " sleep "}

		result, err := srv.handleFindArticles(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Fatalf("unexpected tool error: %v", result.Content)
		}
		var got llm.SearchResult
		if err := json.Unmarshal([]byte(resultText(t, result)), &got); err != nil {
			t.Fatalf("decoding result: %v", err)
		}
		if got.ResultsCount != 3 || got.Articles[0].Title != "sleep one" {
			t.Errorf("result = %+v", got)
		}
	})

	t.Run("missing query", func(t *testing.T) {
		srv := newTestServer(&mockAdapter{})
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{}

		result, err := srv.handleFindArticles(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Error("expected error for missing query")
		}
	})

	t.Run("adapter failure", func(t *testing.T) {
		srv := newTestServer(&mockAdapter{err: &llm.ProxyError{StatusCode: 500}})
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"query": "x"}

		result, err := srv.handleFindArticles(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Fatal("expected tool error")
		}
		if !strings.Contains(resultText(t, result), "backend proxy") {
			t.Errorf("error text = %q", resultText(t, result))
		}
	})
}

func TestHandleGenerateProposal(t *testing.T) {
	ctx := context.Background()

	t.Run("valid sections", func(t *testing.T) {
		m := &mockAdapter{}
		srv := newTestServer(m)
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{
			"topic":    "X",
			"sections": `[{"title":"Intro","instructions":"brief"},{"title":"Methods"}]`,
		}

		result, err := srv.handleGenerateProposal(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Fatalf("unexpected tool error: %v", result.Content)
		}
		if resultText(t, result) != "# X" {
			t.Errorf("text = %q", resultText(t, result))
		}
		if len(m.sections) != 2 || m.sections[0].Instructions != "brief" {
			t.Errorf("sections = %+v", m.sections)
		}
	})

	invalid := []struct {
		name string
		args map[string]any
	}{
		{"missing topic", map[string]any{"sections": `[{"title":"A"}]`}},
		{"bad json", map[string]any{"topic": "X", "sections": "Intro"}},
		{"empty list", map[string]any{"topic": "X", "sections": "[]"}},
		{"blank title", map[string]any{"topic": "X", "sections": `[{"title":"  "}]`}},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			m := &mockAdapter{}
			srv := newTestServer(m)
			req := mcp.CallToolRequest{}
			req.Params.Arguments = tt.args

			result, err := srv.handleGenerateProposal(ctx, req)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !result.IsError {
				t.Error("expected tool error")
			}
			if m.topic != "" {
				t.Error("invalid request reached the adapter")
			}
		})
	}
}

func TestHandleAnalyzeArticles(t *testing.T) {
	ctx := context.Background()

	t.Run("default limit", func(t *testing.T) {
		srv := newTestServer(&mockAdapter{})
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"query": "q"}

		result, err := srv.handleAnalyzeArticles(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var report analysis.Report
		if err := json.Unmarshal([]byte(resultText(t, result)), &report); err != nil {
			t.Fatalf("decoding report: %v", err)
		}
		if len(report.Analyzed) != 2 {
			t.Errorf("analyzed %d, want 2", len(report.Analyzed))
		}
	})

	t.Run("explicit limit", func(t *testing.T) {
		srv := newTestServer(&mockAdapter{})
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"query": "q", "limit": float64(3)}

		result, err := srv.handleAnalyzeArticles(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var report analysis.Report
		if err := json.Unmarshal([]byte(resultText(t, result)), &report); err != nil {
			t.Fatalf("decoding report: %v", err)
		}
		if len(report.Analyzed) != 3 {
			t.Errorf("analyzed %d, want 3", len(report.Analyzed))
		}
	})

	t.Run("search failure", func(t *testing.T) {
		srv := newTestServer(&mockAdapter{err: errors.New("down")})
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"query": "q"}

		result, err := srv.handleAnalyzeArticles(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Error("expected tool error")
		}
	})
}
