package llm

import (
	"context"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// CachedSearcher memoizes successful searches in memory for ttl. Failures
// are never cached.
type CachedSearcher struct {
	next  Searcher
	cache *expirable.LRU[string, *SearchResult]
}

// NewCachedSearcher wraps next with an LRU of at most size entries. A size of
// zero means unbounded; a ttl of zero means entries never expire.
func NewCachedSearcher(next Searcher, size int, ttl time.Duration) *CachedSearcher {
	return &CachedSearcher{
		next:  next,
		cache: expirable.NewLRU[string, *SearchResult](size, nil, ttl),
	}
}

// FindArticles returns a cached result for query or delegates to the wrapped
// searcher. Every caller gets its own copy of the result.
func (s *CachedSearcher) FindArticles(ctx context.Context, query string) (*SearchResult, error) {
	key := cacheKey(query)
	if res, ok := s.cache.Get(key); ok {
		return res.clone(), nil
	}

	res, err := s.next.FindArticles(ctx, query)
	if err != nil {
		return nil, err
	}
	s.cache.Add(key, res.clone())
	return res, nil
}

// Len returns the number of cached queries.
func (s *CachedSearcher) Len() int { return s.cache.Len() }

// cacheKey folds case and runs of whitespace, so "Sleep  Memory" and
// "sleep memory" share an entry.
func cacheKey(query string) string {
	return strings.ToLower(strings.Join(strings.Fields(query), " "))
}

func (r *SearchResult) clone() *SearchResult {
	c := *r
	c.Articles = append([]Article(nil), r.Articles...)
	return &c
}

// AbstractAnalyzer judges one article against a research question.
type AbstractAnalyzer interface {
	AnalyzeAbstract(ctx context.Context, article Article, query string) (string, error)
}

// CachedAnalyzer memoizes successful abstract analyses in memory for ttl,
// keyed by the abstract and the query.
type CachedAnalyzer struct {
	next  AbstractAnalyzer
	cache *expirable.LRU[string, string]
}

// NewCachedAnalyzer wraps next the way NewCachedSearcher wraps a searcher.
func NewCachedAnalyzer(next AbstractAnalyzer, size int, ttl time.Duration) *CachedAnalyzer {
	return &CachedAnalyzer{
		next:  next,
		cache: expirable.NewLRU[string, string](size, nil, ttl),
	}
}

// AnalyzeAbstract returns a cached analysis or delegates to the wrapped
// analyzer. Articles without an abstract are never cached.
func (a *CachedAnalyzer) AnalyzeAbstract(ctx context.Context, article Article, query string) (string, error) {
	if strings.TrimSpace(article.Abstract) == "" {
		return a.next.AnalyzeAbstract(ctx, article, query)
	}

	key := cacheKey(query) + "\x00" + strings.TrimSpace(article.Abstract)
	if text, ok := a.cache.Get(key); ok {
		return text, nil
	}

	text, err := a.next.AnalyzeAbstract(ctx, article, query)
	if err != nil {
		return "", err
	}
	a.cache.Add(key, text)
	return text, nil
}

// Len returns the number of cached analyses.
func (a *CachedAnalyzer) Len() int { return a.cache.Len() }
