// Package router keeps the visible view in step with the session history.
//
// The router owns the navigation state. It renders views into an injected
// Document and records navigation in an injected History, so it runs the
// same way against a live browser session and an in-memory page.
package router

import (
	"fmt"
	"strings"
)

// DefaultHome is the view shown when the fragment is empty.
const DefaultHome ViewID = "dashboard"

// NotFoundMarkup replaces the content when an unknown view is requested.
const NotFoundMarkup = `<div class="text-center"><h1 class="text-2xl font-bold">404 - صفحه یافت نشد</h1></div>`

// AppState is the navigation state of one page.
type AppState struct {
	CurrentView ViewID
}

// Router renders views and synchronizes navigation with the history.
type Router struct {
	views   Table
	doc     Document
	history History
	icons   IconRenderer
	home    ViewID
	state   AppState
}

// Option configures a Router.
type Option func(*Router)

// WithHome sets the view shown for an empty fragment.
func WithHome(home ViewID) Option {
	return func(r *Router) { r.home = home }
}

// WithIcons sets the icon pass run after every successful render.
func WithIcons(icons IconRenderer) Option {
	return func(r *Router) { r.icons = icons }
}

// New creates a Router over views. View names must be non-empty and free of
// surrounding whitespace; the map type keeps them unique.
func New(views Table, doc Document, history History, opts ...Option) (*Router, error) {
	for name, v := range views {
		switch trimmed := strings.TrimSpace(string(name)); {
		case trimmed == "":
			return nil, fmt.Errorf("registering views: empty view name")
		case trimmed != string(name):
			return nil, fmt.Errorf("registering views: view name %q has surrounding whitespace", name)
		case v == nil:
			return nil, fmt.Errorf("registering views: view %q has no renderer", name)
		}
	}

	r := &Router{
		views:   make(Table, len(views)),
		doc:     doc,
		history: history,
		home:    DefaultHome,
	}
	for name, v := range views {
		r.views[name] = v
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Has reports whether name is a registered view.
func (r *Router) Has(name ViewID) bool {
	_, ok := r.views[name]
	return ok
}

// Home returns the view shown for an empty fragment.
func (r *Router) Home() ViewID { return r.home }

// Current returns the navigation state.
func (r *Router) Current() AppState { return r.state }

// RenderView shows the named view. An unknown name shows NotFoundMarkup and
// leaves the navigation highlighting as it was.
func (r *Router) RenderView(name ViewID) {
	r.state.CurrentView = name

	view, ok := r.views[name]
	if !ok {
		r.doc.SetContent(NotFoundMarkup)
		return
	}

	r.doc.SetContent(view.Render())
	if after, ok := view.(AfterRenderer); ok {
		after.AfterRender(r.doc)
	}

	if r.icons != nil {
		r.icons.CreateIcons()
	}
	r.updateActiveLink(name)
}

func (r *Router) updateActiveLink(active ViewID) {
	for _, target := range r.doc.NavTargets() {
		r.doc.SetActive(target, target == active)
	}
}

// NavigateTo records a history entry for name and shows it.
func (r *Router) NavigateTo(name ViewID) {
	r.history.PushState(HistoryState{View: name}, "#"+string(name))
	r.RenderView(name)
}

// HandlePopState shows the view of a history entry the user moved to. The
// entry state wins; entries without state fall back to the fragment, then
// to the home view.
func (r *Router) HandlePopState(state *HistoryState) {
	if state != nil {
		r.RenderView(state.View)
		return
	}
	r.RenderView(r.viewFromFragment())
}

// Start shows the view named by the current fragment without adding a
// history entry.
func (r *Router) Start() {
	r.RenderView(r.viewFromFragment())
}

func (r *Router) viewFromFragment() ViewID {
	fragment := strings.TrimPrefix(r.history.Fragment(), "#")
	if fragment == "" {
		return r.home
	}
	return ViewID(fragment)
}
