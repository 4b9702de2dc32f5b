// Package page provides an in-memory page the router can drive: a shell
// document backed by goquery and a session history with back/forward.
package page

import (
	"bytes"
	"fmt"
	"html/template"
	"sync"

	"github.com/PuerkitoBio/goquery"

	"github.com/ziadkadry99/research-desk/internal/router"
)

const (
	contentSelector = "#main-content"
	navSelector     = ".nav-link[data-view]"
	activeClass     = "active"
)

// NavEntry is one navigation control of the shell.
type NavEntry struct {
	View  router.ViewID
	Label string
	Icon  string
}

// ShellOptions controls how the shell document is generated.
type ShellOptions struct {
	Title string
	Nav   []NavEntry
	// Script is the URL of a script to include, if any.
	Script string
}

// Shell is a parsed page document. It is safe for concurrent use; views may
// write to regions from background work while the router navigates.
type Shell struct {
	mu       sync.Mutex
	doc      *goquery.Document
	handlers map[string]router.ActionHandler
}

var shellTmpl = template.Must(template.New("shell").Parse(shellTemplate))

// NewShell renders the shell template and parses it.
func NewShell(opts ShellOptions) (*Shell, error) {
	var buf bytes.Buffer
	if err := shellTmpl.Execute(&buf, opts); err != nil {
		return nil, fmt.Errorf("rendering shell: %w", err)
	}
	doc, err := goquery.NewDocumentFromReader(&buf)
	if err != nil {
		return nil, fmt.Errorf("parsing shell: %w", err)
	}
	if doc.Find(contentSelector).Length() != 1 {
		return nil, fmt.Errorf("parsing shell: expected exactly one %s element", contentSelector)
	}
	return &Shell{doc: doc, handlers: make(map[string]router.ActionHandler)}, nil
}

// SetContent replaces the markup of the content container and drops the
// actions bound by the previous view.
func (s *Shell) SetContent(markup string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Find(contentSelector).SetHtml(markup)
	s.handlers = make(map[string]router.ActionHandler)
}

// NavTargets lists the data-view values of the navigation controls.
func (s *Shell) NavTargets() []router.ViewID {
	s.mu.Lock()
	defer s.mu.Unlock()
	var targets []router.ViewID
	s.doc.Find(navSelector).Each(func(_ int, sel *goquery.Selection) {
		if v, ok := sel.Attr("data-view"); ok {
			targets = append(targets, router.ViewID(v))
		}
	})
	return targets
}

// SetActive adds or removes the active class on the controls for view.
func (s *Shell) SetActive(view router.ViewID, active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	links := s.navLinks(view)
	if active {
		links.AddClass(activeClass)
	} else {
		links.RemoveClass(activeClass)
	}
}

// SetRegion replaces the markup of the element with the given id. It does
// nothing when the element is gone, e.g. after navigating away.
func (s *Shell) SetRegion(id, markup string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID(id).SetHtml(markup)
}

// Bind registers handler for action until the content is next replaced.
func (s *Shell) Bind(action string, handler router.ActionHandler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers[action] = handler
}

// Dispatch runs the handler bound to action. It reports false when the
// current view bound no such action.
func (s *Shell) Dispatch(action string, fields map[string]string) bool {
	s.mu.Lock()
	h, ok := s.handlers[action]
	s.mu.Unlock()
	if !ok {
		return false
	}
	h(fields)
	return true
}

// Content returns the markup of the content container.
func (s *Shell) Content() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	html, _ := s.doc.Find(contentSelector).Html()
	return html
}

// Region returns the markup of the element with the given id.
func (s *Shell) Region(id string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sel := s.byID(id)
	if sel.Length() == 0 {
		return "", false
	}
	html, _ := sel.Html()
	return html, true
}

// ActiveViews lists the views whose controls carry the active class.
func (s *Shell) ActiveViews() []router.ViewID {
	s.mu.Lock()
	defer s.mu.Unlock()
	var active []router.ViewID
	s.doc.Find(navSelector).Each(func(_ int, sel *goquery.Selection) {
		if sel.HasClass(activeClass) {
			v, _ := sel.Attr("data-view")
			active = append(active, router.ViewID(v))
		}
	})
	return active
}

// HTML renders the whole document.
func (s *Shell) HTML() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return goquery.OuterHtml(s.doc.Selection)
}

// CreateIcons tags every icon placeholder with the classes the icon
// script expects, leaving the SVG expansion to the browser.
func (s *Shell) CreateIcons() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Find("i[data-lucide]").Each(func(_ int, sel *goquery.Selection) {
		name, _ := sel.Attr("data-lucide")
		sel.AddClass("lucide", "lucide-"+name)
	})
}

func (s *Shell) navLinks(view router.ViewID) *goquery.Selection {
	return s.doc.Find(navSelector).FilterFunction(func(_ int, sel *goquery.Selection) bool {
		v, _ := sel.Attr("data-view")
		return v == string(view)
	})
}

func (s *Shell) byID(id string) *goquery.Selection {
	return s.doc.Find("[id]").FilterFunction(func(_ int, sel *goquery.Selection) bool {
		v, _ := sel.Attr("id")
		return v == id
	}).First()
}
