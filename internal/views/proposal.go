package views

import (
	"context"
	"log"
	"strings"

	"github.com/ziadkadry99/research-desk/internal/llm"
	"github.com/ziadkadry99/research-desk/internal/router"
)

const proposalOutputRegion = "proposal-output"

// defaultSections prefills the sections field of the proposal form.
const defaultSections = `مقدمه: بیان مسئله و اهمیت موضوع
پیشینه پژوهش
روش‌شناسی: جامعه آماری، نمونه و ابزار پژوهش
نتایج مورد انتظار`

type proposalForm struct {
	Topic    string                `validate:"required,max=500"`
	Sections []llm.ProposalSection `validate:"required,min=1,dive"`
}

type proposalView struct{ *base }

func (v *proposalView) Render() string {
	v.advance()
	return render(proposalTmpl, defaultSections)
}

func (v *proposalView) AfterRender(doc router.Document) {
	doc.Bind("generate-proposal", func(fields map[string]string) {
		gen := v.advance()
		form := proposalForm{
			Topic:    strings.TrimSpace(fields["topic"]),
			Sections: ParseSections(fields["sections"]),
		}
		if err := validate.Struct(form); err != nil {
			doc.SetRegion(proposalOutputRegion, invalidMessage())
			return
		}

		doc.SetRegion(proposalOutputRegion, loadingMessage())
		v.background(doc, gen, func(ctx context.Context, write func(id, markup string)) {
			text, err := v.svc.Writer.GenerateProposal(ctx, form.Topic, form.Sections)
			if err != nil {
				log.Printf("views: proposal %q: %v", form.Topic, err)
				write(proposalOutputRegion, errorMessage(err))
				return
			}
			html, err := Markdown(text)
			if err != nil {
				log.Printf("views: converting proposal markdown: %v", err)
				write(proposalOutputRegion, errorMessage(err))
				return
			}
			write(proposalOutputRegion, html)
		})
	})
}

// ParseSections reads one section per line as "title" or
// "title: instructions". Blank lines are skipped.
func ParseSections(text string) []llm.ProposalSection {
	var sections []llm.ProposalSection
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		title, instructions, _ := strings.Cut(line, ":")
		sections = append(sections, llm.ProposalSection{
			Title:        strings.TrimSpace(title),
			Instructions: strings.TrimSpace(instructions),
		})
	}
	return sections
}
