package views

import (
	"context"
	"log"
	"strings"

	"github.com/ziadkadry99/research-desk/internal/router"
)

const analysisOutputRegion = "analysis-output"

type metaAnalysisView struct{ *base }

func (v *metaAnalysisView) Render() string {
	v.advance()
	return render(metaAnalysisTmpl, nil)
}

func (v *metaAnalysisView) AfterRender(doc router.Document) {
	doc.Bind("analyze", func(fields map[string]string) {
		gen := v.advance()
		form := searchForm{Query: strings.TrimSpace(fields["query"])}
		if err := validate.Struct(form); err != nil {
			doc.SetRegion(analysisOutputRegion, invalidMessage())
			return
		}

		doc.SetRegion(analysisOutputRegion, loadingMessage())
		v.background(doc, gen, func(ctx context.Context, write func(id, markup string)) {
			report, err := v.svc.Analyzer.Run(ctx, form.Query, v.svc.AnalysisLimit, nil)
			if err != nil {
				log.Printf("views: meta-analysis %q: %v", form.Query, err)
				write(analysisOutputRegion, errorMessage(err))
				return
			}
			write(analysisOutputRegion, render(analysisTmpl, report))
		})
	})
}
