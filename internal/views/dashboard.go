package views

type dashboardView struct{}

func (dashboardView) Render() string {
	cards := make([]entry, 0, len(catalog)-1)
	for _, e := range catalog {
		if e.View != Dashboard {
			cards = append(cards, e)
		}
	}
	return render(dashboardTmpl, cards)
}
