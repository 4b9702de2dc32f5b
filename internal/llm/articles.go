package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
)

// FindArticles asks the model for ArticleCount articles on query and parses
// the JSON array out of its reply.
func (c *Client) FindArticles(ctx context.Context, query string) (*SearchResult, error) {
	raw, err := c.prompt(ctx, findArticlesPrompt(query))
	if err != nil {
		return nil, err
	}
	return ParseArticles(raw)
}

// ParseArticles extracts the text between the first '[' and the last ']' of
// raw and decodes it as an article array. Models wrap output in prose or code
// fences despite instructions; brackets inside that surrounding prose defeat
// the heuristic.
func ParseArticles(raw string) (*SearchResult, error) {
	cleaned, ok := extractJSONArray(raw)
	if !ok {
		err := &FormatError{Raw: raw, Err: fmt.Errorf("no JSON array delimiters found")}
		log.Printf("llm: error parsing JSON from LLM response: %v; response was: %q", err.Err, raw)
		return nil, err
	}

	var articles []Article
	if err := json.Unmarshal([]byte(cleaned), &articles); err != nil {
		log.Printf("llm: error parsing JSON from LLM response: %v; response was: %q", err, raw)
		return nil, &FormatError{Raw: raw, Err: err}
	}

	return &SearchResult{
		ResultsCount: len(articles),
		Articles:     articles,
	}, nil
}

func extractJSONArray(raw string) (string, bool) {
	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start < 0 || end < start {
		return "", false
	}
	return raw[start : end+1], true
}
