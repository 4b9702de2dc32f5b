// Package analysis runs a literature meta-analysis: search articles for a
// question, then ask the model about each abstract in turn.
package analysis

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/ziadkadry99/research-desk/internal/llm"
	"github.com/ziadkadry99/research-desk/internal/progress"
)

// Analyst judges one article against a research question.
type Analyst interface {
	AnalyzeAbstract(ctx context.Context, article llm.Article, query string) (string, error)
}

// Result is the outcome for one article. Exactly one of Analysis and Error
// is set.
type Result struct {
	ArticleID int    `json:"article_id"`
	Title     string `json:"title"`
	Analysis  string `json:"analysis,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Report collects the results of one run.
type Report struct {
	Query    string   `json:"query"`
	Analyzed []Result `json:"analyzed"`
	Skipped  []Result `json:"skipped"`
}

// Analyzer runs meta-analyses.
type Analyzer struct {
	searcher llm.Searcher
	analyst  Analyst
}

// New creates an Analyzer.
func New(searcher llm.Searcher, analyst Analyst) *Analyzer {
	return &Analyzer{searcher: searcher, analyst: analyst}
}

// Run searches for query and analyses at most limit of the articles found,
// one at a time. Articles that fail are skipped and reported; a failed
// search fails the run.
func (a *Analyzer) Run(ctx context.Context, query string, limit int, rep progress.Reporter) (*Report, error) {
	if rep == nil {
		rep = progress.Nop{}
	}

	found, err := a.searcher.FindArticles(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("searching articles: %w", err)
	}

	articles := found.Articles
	if limit > 0 && len(articles) > limit {
		articles = articles[:limit]
	}

	report := &Report{Query: query, Analyzed: []Result{}, Skipped: []Result{}}
	rep.Start(len(articles))
	defer rep.Finish()

	for i, article := range articles {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rep.Update(i, fmt.Sprintf("Analyzing article %d/%d: %s", i+1, len(articles), truncate(article.Title, 60)))

		res := Result{ArticleID: article.ID, Title: article.Title}
		text, err := a.analyst.AnalyzeAbstract(ctx, article, query)
		if err != nil {
			if !errors.Is(err, llm.ErrMissingAbstract) {
				log.Printf("analysis: error analyzing article %d: %v", article.ID, err)
			}
			res.Error = err.Error()
			report.Skipped = append(report.Skipped, res)
			rep.Warn(fmt.Sprintf("skipped article %d: %s", i+1, res.Error))
		} else {
			res.Analysis = text
			report.Analyzed = append(report.Analyzed, res)
		}
		rep.Update(i+1, fmt.Sprintf("Analyzed article %d/%d", i+1, len(articles)))
	}

	return report, nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "…"
}
