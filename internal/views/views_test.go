package views

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/ziadkadry99/research-desk/internal/analysis"
	"github.com/ziadkadry99/research-desk/internal/llm"
	"github.com/ziadkadry99/research-desk/internal/page"
)

type fakeAdapter struct {
	articles *llm.SearchResult
	proposal string
	err      error
	queries  []string
	topics   []string
	sections [][]llm.ProposalSection
	analyzed int
}

func (f *fakeAdapter) FindArticles(_ context.Context, query string) (*llm.SearchResult, error) {
	f.queries = append(f.queries, query)
	if f.err != nil {
		return nil, f.err
	}
	return f.articles, nil
}

func (f *fakeAdapter) GenerateProposal(_ context.Context, topic string, sections []llm.ProposalSection) (string, error) {
	f.topics = append(f.topics, topic)
	f.sections = append(f.sections, sections)
	if f.err != nil {
		return "", f.err
	}
	return f.proposal, nil
}

func (f *fakeAdapter) AnalyzeAbstract(_ context.Context, article llm.Article, _ string) (string, error) {
	f.analyzed++
	return fmt.Sprintf("analysis of %d", article.ID), nil
}

func openPage(t *testing.T, fake *fakeAdapter) *page.Page {
	t.Helper()
	svc := Services{
		Articles:      fake,
		Writer:        fake,
		Analyzer:      analysis.New(fake, fake),
		AnalysisLimit: 2,
		Go:            func(fn func()) { fn() },
	}
	p, err := page.Open(Table(context.Background(), svc), page.ShellOptions{Title: "test", Nav: Nav()}, "")
	if err != nil {
		t.Fatalf("page.Open: %v", err)
	}
	return p
}

func sampleResult() *llm.SearchResult {
	return &llm.SearchResult{ResultsCount: 3, Articles: []llm.Article{
		{ID: 1, Title: "First <Study>", Abstract: "چکیده", PDFURL: "#"},
		{ID: 2, Title: "Second", Abstract: "چکیده"},
		{ID: 3, Title: "Third", Abstract: "چکیده"},
	}}
}

func TestNavMatchesTable(t *testing.T) {
	table := Table(context.Background(), Services{})
	nav := Nav()
	if len(nav) != len(table) {
		t.Fatalf("nav has %d entries, table %d", len(nav), len(table))
	}
	for _, n := range nav {
		if _, ok := table[n.View]; !ok {
			t.Errorf("nav target %q has no view", n.View)
		}
	}
}

func TestDashboardLinksOtherViews(t *testing.T) {
	p := openPage(t, &fakeAdapter{})
	if p.Current().CurrentView != Dashboard {
		t.Fatalf("current = %q, want dashboard", p.Current().CurrentView)
	}
	content := p.Shell.Content()
	for _, v := range []string{"new-proposal", "search", "meta-analysis"} {
		if !strings.Contains(content, `data-navigate="`+v+`"`) {
			t.Errorf("dashboard missing card for %s", v)
		}
	}
	if strings.Contains(content, `data-navigate="dashboard"`) {
		t.Error("dashboard should not link to itself")
	}
}

func TestSearchRendersArticles(t *testing.T) {
	fake := &fakeAdapter{articles: sampleResult()}
	p := openPage(t, fake)
	if err := p.Click(Search); err != nil {
		t.Fatal(err)
	}

	if !p.Shell.Dispatch("search", map[string]string{"query": "  sleep and memory "}) {
		t.Fatal("search action not bound")
	}
	if len(fake.queries) != 1 || fake.queries[0] != "sleep and memory" {
		t.Fatalf("queries = %q", fake.queries)
	}
	out, ok := p.Shell.Region(searchResultsRegion)
	if !ok {
		t.Fatal("search-results region missing")
	}
	if !strings.Contains(out, `data-article-id="2"`) {
		t.Errorf("results missing article 2: %s", out)
	}
	if strings.Contains(out, "<Study>") {
		t.Error("article title was not escaped")
	}
}

func TestSearchRejectsEmptyQuery(t *testing.T) {
	fake := &fakeAdapter{articles: sampleResult()}
	p := openPage(t, fake)
	p.NavigateTo(Search)

	p.Shell.Dispatch("search", map[string]string{"query": "   "})
	if len(fake.queries) != 0 {
		t.Fatal("empty query reached the adapter")
	}
	out, _ := p.Shell.Region(searchResultsRegion)
	if !strings.Contains(out, msgInvalid) {
		t.Errorf("region = %s, want invalid input message", out)
	}
}

func TestSearchErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"proxy", &llm.ProxyError{StatusCode: 502}, msgProxy},
		{"format", &llm.FormatError{Raw: "nope"}, msgFormat},
		{"other", errors.New("boom"), msgFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := openPage(t, &fakeAdapter{err: tt.err})
			p.NavigateTo(Search)
			p.Shell.Dispatch("search", map[string]string{"query": "q"})
			out, _ := p.Shell.Region(searchResultsRegion)
			if !strings.Contains(out, tt.want) {
				t.Errorf("region = %s, want %q", out, tt.want)
			}
		})
	}
}

func TestResultsAfterNavigatingAwayAreDropped(t *testing.T) {
	fake := &fakeAdapter{articles: sampleResult()}
	var pending func()
	svc := Services{
		Articles: fake,
		Writer:   fake,
		Analyzer: analysis.New(fake, fake),
		Go:       func(fn func()) { pending = fn },
	}
	p, err := page.Open(Table(context.Background(), svc), page.ShellOptions{Nav: Nav()}, "search")
	if err != nil {
		t.Fatal(err)
	}
	p.Shell.Dispatch("search", map[string]string{"query": "q"})
	p.NavigateTo(Dashboard)
	pending()

	if _, ok := p.Shell.Region(searchResultsRegion); ok {
		t.Fatal("search region should be gone")
	}
	if p.Current().CurrentView != Dashboard {
		t.Errorf("current = %q", p.Current().CurrentView)
	}
}

// echoSearcher returns one article titled after the query.
type echoSearcher struct{}

func (echoSearcher) FindArticles(_ context.Context, query string) (*llm.SearchResult, error) {
	return &llm.SearchResult{ResultsCount: 1, Articles: []llm.Article{{ID: 1, Title: "result-for-" + query}}}, nil
}

func TestStaleResultsAreDropped(t *testing.T) {
	fake := &fakeAdapter{}
	var pending []func()
	svc := Services{
		Articles: echoSearcher{},
		Writer:   fake,
		Analyzer: analysis.New(echoSearcher{}, fake),
		Go:       func(fn func()) { pending = append(pending, fn) },
	}
	p, err := page.Open(Table(context.Background(), svc), page.ShellOptions{Nav: Nav()}, "search")
	if err != nil {
		t.Fatal(err)
	}

	p.Shell.Dispatch("search", map[string]string{"query": "A"})
	p.NavigateTo(Dashboard)
	p.NavigateTo(Search)
	pending[0]()
	if out, _ := p.Shell.Region(searchResultsRegion); strings.Contains(out, "result-for-A") {
		t.Errorf("revisited view shows a result it never asked for: %s", out)
	}

	p.Shell.Dispatch("search", map[string]string{"query": "B"})
	p.Shell.Dispatch("search", map[string]string{"query": "C"})
	pending[2]()
	pending[1]()
	out, _ := p.Shell.Region(searchResultsRegion)
	if !strings.Contains(out, "result-for-C") || strings.Contains(out, "result-for-B") {
		t.Errorf("region = %s, want only the latest query's results", out)
	}
}

func TestInvalidSubmitCancelsPendingResult(t *testing.T) {
	var pending []func()
	fake := &fakeAdapter{}
	svc := Services{
		Articles: echoSearcher{},
		Writer:   fake,
		Analyzer: analysis.New(echoSearcher{}, fake),
		Go:       func(fn func()) { pending = append(pending, fn) },
	}
	p, err := page.Open(Table(context.Background(), svc), page.ShellOptions{Nav: Nav()}, "search")
	if err != nil {
		t.Fatal(err)
	}

	p.Shell.Dispatch("search", map[string]string{"query": "A"})
	p.Shell.Dispatch("search", map[string]string{"query": " "})
	pending[0]()
	out, _ := p.Shell.Region(searchResultsRegion)
	if !strings.Contains(out, msgInvalid) {
		t.Errorf("region = %s, want the invalid input message to stay", out)
	}
}

func TestProposalRendersMarkdown(t *testing.T) {
	fake := &fakeAdapter{proposal: "# عنوان\n\n## مقدمه\n\nمتن <script>alert(1)</script>"}
	p := openPage(t, fake)
	p.NavigateTo(NewProposal)

	p.Shell.Dispatch("generate-proposal", map[string]string{
		"topic":    "X",
		"sections": "Intro: brief\n\nMethods",
	})
	if len(fake.topics) != 1 || fake.topics[0] != "X" {
		t.Fatalf("topics = %q", fake.topics)
	}
	want := []llm.ProposalSection{{Title: "Intro", Instructions: "brief"}, {Title: "Methods"}}
	got := fake.sections[0]
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("sections = %+v, want %+v", got, want)
	}

	out, _ := p.Shell.Region(proposalOutputRegion)
	if !strings.Contains(out, "<h1") || !strings.Contains(out, "<h2") {
		t.Errorf("markdown headings not rendered: %s", out)
	}
	if strings.Contains(out, "<script>") {
		t.Error("raw HTML from the model was rendered")
	}
}

func TestProposalRequiresTopicAndSections(t *testing.T) {
	tests := []map[string]string{
		{"topic": "", "sections": "Intro"},
		{"topic": "X", "sections": "  \n "},
		{"topic": "X", "sections": ": instructions only"},
	}
	for _, fields := range tests {
		fake := &fakeAdapter{}
		p := openPage(t, fake)
		p.NavigateTo(NewProposal)
		p.Shell.Dispatch("generate-proposal", fields)
		if len(fake.topics) != 0 {
			t.Errorf("%v: invalid form reached the adapter", fields)
		}
	}
}

func TestMetaAnalysisRespectsLimit(t *testing.T) {
	fake := &fakeAdapter{articles: sampleResult()}
	p := openPage(t, fake)
	p.NavigateTo(MetaAnalysis)

	p.Shell.Dispatch("analyze", map[string]string{"query": "q"})
	if fake.analyzed != 2 {
		t.Fatalf("analyzed %d articles, want 2", fake.analyzed)
	}
	out, _ := p.Shell.Region(analysisOutputRegion)
	if !strings.Contains(out, "analysis of 2") || strings.Contains(out, "analysis of 3") {
		t.Errorf("analysis output = %s", out)
	}
}

func TestParseSections(t *testing.T) {
	got := ParseSections("  A : one: two \nB\n\n")
	if len(got) != 2 {
		t.Fatalf("got %d sections", len(got))
	}
	if got[0].Title != "A" || got[0].Instructions != "one: two" {
		t.Errorf("first = %+v", got[0])
	}
	if got[1].Title != "B" || got[1].Instructions != "" {
		t.Errorf("second = %+v", got[1])
	}
}
