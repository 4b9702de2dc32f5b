package page

import (
	"fmt"

	"github.com/ziadkadry99/research-desk/internal/router"
)

// Page ties a Shell and a SessionHistory to a Router, the way a browser tab
// does: history moves are delivered to the router as popstate events.
type Page struct {
	*router.Router
	Shell   *Shell
	History *SessionHistory
}

// Open builds the page for views, loads it at fragment and renders the
// initial view.
func Open(views router.Table, shell ShellOptions, fragment string, opts ...router.Option) (*Page, error) {
	doc, err := NewShell(shell)
	if err != nil {
		return nil, err
	}
	history := NewSessionHistory(fragment)

	opts = append([]router.Option{router.WithIcons(doc)}, opts...)
	r, err := router.New(views, doc, history, opts...)
	if err != nil {
		return nil, fmt.Errorf("opening page: %w", err)
	}
	history.OnPopState(r.HandlePopState)

	r.Start()
	return &Page{Router: r, Shell: doc, History: history}, nil
}

// Click activates the navigation control for view.
func (p *Page) Click(view router.ViewID) error {
	for _, target := range p.Shell.NavTargets() {
		if target == view {
			p.NavigateTo(view)
			return nil
		}
	}
	return fmt.Errorf("no navigation control for view %q", view)
}
