package views

import (
	"context"
	"log"
	"strings"

	"github.com/ziadkadry99/research-desk/internal/router"
)

const searchResultsRegion = "search-results"

type searchForm struct {
	Query string `validate:"required,max=500"`
}

type searchView struct{ *base }

func (v *searchView) Render() string {
	v.advance()
	return render(searchTmpl, nil)
}

func (v *searchView) AfterRender(doc router.Document) {
	doc.Bind("search", func(fields map[string]string) {
		gen := v.advance()
		form := searchForm{Query: strings.TrimSpace(fields["query"])}
		if err := validate.Struct(form); err != nil {
			doc.SetRegion(searchResultsRegion, invalidMessage())
			return
		}

		doc.SetRegion(searchResultsRegion, loadingMessage())
		v.background(doc, gen, func(ctx context.Context, write func(id, markup string)) {
			result, err := v.svc.Articles.FindArticles(ctx, form.Query)
			if err != nil {
				log.Printf("views: search %q: %v", form.Query, err)
				write(searchResultsRegion, errorMessage(err))
				return
			}
			write(searchResultsRegion, render(articlesTmpl, result))
		})
	})
}
