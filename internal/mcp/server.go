package mcp

import (
	"github.com/go-playground/validator/v10"
	"github.com/mark3labs/mcp-go/server"

	"github.com/ziadkadry99/research-desk/internal/analysis"
	"github.com/ziadkadry99/research-desk/internal/llm"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes the research tools.
type Server struct {
	searcher     llm.Searcher
	writer       llm.ProposalWriter
	analyzer     *analysis.Analyzer
	defaultLimit int
	validate     *validator.Validate
	mcp          *server.MCPServer
}

// NewServer creates a new MCP server. defaultLimit caps analyze_articles
// when the caller gives no limit.
func NewServer(searcher llm.Searcher, writer llm.ProposalWriter, analyzer *analysis.Analyzer, defaultLimit int) *Server {
	s := &Server{
		searcher:     searcher,
		writer:       writer,
		analyzer:     analyzer,
		defaultLimit: defaultLimit,
		validate:     validator.New(),
	}

	s.mcp = server.NewMCPServer(
		"researchdesk",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(findArticlesTool, s.handleFindArticles)
	s.mcp.AddTool(generateProposalTool, s.handleGenerateProposal)
	s.mcp.AddTool(analyzeArticlesTool, s.handleAnalyzeArticles)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
