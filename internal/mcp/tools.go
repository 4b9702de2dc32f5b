package mcp

import "github.com/mark3labs/mcp-go/mcp"

// findArticlesTool defines the find_articles MCP tool.
var findArticlesTool = mcp.NewTool("find_articles",
	mcp.WithDescription("Find academic articles related to a research topic. Returns a JSON object with results_count and articles (id, title, authors, journal, year, Persian abstract, citations, pdf_url)."),
	mcp.WithString("query",
		mcp.Required(),
		mcp.Description("Research topic or question"),
	),
)

// generateProposalTool defines the generate_proposal MCP tool.
var generateProposalTool = mcp.NewTool("generate_proposal",
	mcp.WithDescription("Write a Persian research proposal in Markdown for a topic, one section per requested heading."),
	mcp.WithString("topic",
		mcp.Required(),
		mcp.Description("Main topic of the proposal"),
	),
	mcp.WithString("sections",
		mcp.Required(),
		mcp.Description(`JSON array of sections, e.g. [{"title":"Introduction","instructions":"state the problem"}]. instructions is optional.`),
	),
)

// analyzeArticlesTool defines the analyze_articles MCP tool.
var analyzeArticlesTool = mcp.NewTool("analyze_articles",
	mcp.WithDescription("Search articles for a research question and analyse how each abstract relates to it."),
	mcp.WithString("query",
		mcp.Required(),
		mcp.Description("Research question"),
	),
	mcp.WithNumber("limit",
		mcp.Description("Maximum number of articles to analyse"),
	),
)
