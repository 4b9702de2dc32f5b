package llm

import "context"

// Completer sends an ordered message sequence to the completion backend and
// returns the first choice's content.
type Completer interface {
	CallLLM(ctx context.Context, messages []Message) (string, error)
}

// Searcher finds articles for a free-text query.
type Searcher interface {
	FindArticles(ctx context.Context, query string) (*SearchResult, error)
}

// ProposalWriter drafts research proposals.
type ProposalWriter interface {
	GenerateProposal(ctx context.Context, topic string, sections []ProposalSection) (string, error)
}

// Adapter is the full set of application-level operations views and commands
// depend on.
type Adapter interface {
	Completer
	Searcher
	ProposalWriter
	AnalyzeAbstract(ctx context.Context, article Article, query string) (string, error)
}
