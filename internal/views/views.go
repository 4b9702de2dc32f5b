// Package views holds the views of the research desk: their markup and the
// behavior they attach once rendered.
package views

import (
	"bytes"
	"context"
	"errors"
	"html/template"
	"log"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/ziadkadry99/research-desk/internal/analysis"
	"github.com/ziadkadry99/research-desk/internal/llm"
	"github.com/ziadkadry99/research-desk/internal/page"
	"github.com/ziadkadry99/research-desk/internal/router"
)

// View names.
const (
	Dashboard    router.ViewID = "dashboard"
	NewProposal  router.ViewID = "new-proposal"
	Search       router.ViewID = "search"
	MetaAnalysis router.ViewID = "meta-analysis"
)

// Services are the collaborators views call once rendered.
type Services struct {
	Articles llm.Searcher
	Writer   llm.ProposalWriter
	Analyzer *analysis.Analyzer
	// AnalysisLimit caps the articles analysed per meta-analysis.
	AnalysisLimit int
	// ActionTimeout bounds the background work of one action. Zero means
	// no bound beyond the session.
	ActionTimeout time.Duration
	// Go runs background work. Defaults to starting a goroutine.
	Go func(func())
}

var validate = validator.New()

type entry struct {
	page.NavEntry
	Blurb string
}

var catalog = []entry{
	{page.NavEntry{View: Dashboard, Label: "داشبورد", Icon: "layout-dashboard"}, "نمای کلی ابزارها"},
	{page.NavEntry{View: NewProposal, Label: "پروپوزال جدید", Icon: "file-plus"}, "نگارش پروپوزال پژوهشی با هوش مصنوعی"},
	{page.NavEntry{View: Search, Label: "جستجوی مقالات", Icon: "search"}, "یافتن مقالات مرتبط با موضوع"},
	{page.NavEntry{View: MetaAnalysis, Label: "متاآنالیز", Icon: "bar-chart-3"}, "تحلیل مقالات برای یک پرسش پژوهشی"},
}

// Nav returns the navigation controls, one per view, in display order.
func Nav() []page.NavEntry {
	nav := make([]page.NavEntry, len(catalog))
	for i, e := range catalog {
		nav[i] = e.NavEntry
	}
	return nav
}

// Table builds the view table. Background work started by the views is
// bound to ctx.
func Table(ctx context.Context, svc Services) router.Table {
	if svc.Go == nil {
		svc.Go = func(fn func()) { go fn() }
	}
	b := &base{ctx: ctx, svc: svc}
	return router.Table{
		Dashboard:    dashboardView{},
		NewProposal:  &proposalView{b},
		Search:       &searchView{b},
		MetaAnalysis: &metaAnalysisView{b},
	}
}

// base carries what every interactive view needs.
type base struct {
	ctx context.Context
	svc Services

	// gen advances on every render and every submit. Background work may
	// only write while the generation it started in is still current.
	mu  sync.Mutex
	gen uint64
}

// advance starts a new generation, orphaning all pending work.
func (b *base) advance() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.gen++
	return b.gen
}

// background runs fn with a context bounded by the action timeout. fn gets
// a write function that drops its markup once gen is no longer current.
func (b *base) background(doc router.Document, gen uint64, fn func(ctx context.Context, write func(id, markup string))) {
	write := func(id, markup string) {
		b.mu.Lock()
		defer b.mu.Unlock()
		if b.gen != gen {
			return
		}
		doc.SetRegion(id, markup)
	}
	b.svc.Go(func() {
		ctx := b.ctx
		if b.svc.ActionTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, b.svc.ActionTimeout)
			defer cancel()
		}
		fn(ctx, write)
	})
}

func render(t *template.Template, data any) string {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		log.Printf("views: rendering %s: %v", t.Name(), err)
		return `<div class="rounded border p-4">` + template.HTMLEscapeString(msgFailed) + `</div>`
	}
	return buf.String()
}

type message struct {
	Class string
	Text  string
}

const (
	msgLoading = "در حال پردازش... لطفاً صبر کنید."
	msgInvalid = "لطفاً ورودی‌ها را کامل و درست وارد کنید."
	msgProxy   = "ارتباط با سرور برقرار نشد. لطفاً بعداً دوباره تلاش کنید."
	msgFormat  = "پاسخ هوش مصنوعی قابل درک نبود. لطفاً دوباره تلاش کنید."
	msgFailed  = "خطای غیرمنتظره‌ای رخ داد."
)

func loadingMessage() string {
	return render(messageTmpl, message{Class: "border-indigo-200 text-indigo-700", Text: msgLoading})
}

func invalidMessage() string {
	return render(messageTmpl, message{Class: "border-amber-200 text-amber-700", Text: msgInvalid})
}

// errorMessage maps adapter failures to what the user is shown.
func errorMessage(err error) string {
	text := msgFailed
	switch {
	case errors.Is(err, llm.ErrResponseFormat):
		text = msgFormat
	case errors.Is(err, llm.ErrBackendProxy):
		text = msgProxy
	}
	return render(messageTmpl, message{Class: "border-red-200 text-red-700", Text: text})
}
