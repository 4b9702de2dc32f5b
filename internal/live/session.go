package live

import (
	"strings"
	"sync"

	"github.com/ziadkadry99/research-desk/internal/page"
	"github.com/ziadkadry99/research-desk/internal/router"
)

// Session mirrors one browser tab. It keeps a server-side copy of the
// document so regions and bound actions can be resolved without asking the
// browser, and forwards every change to it.
type Session struct {
	id    string
	shell *page.Shell
	send  func(outbound)

	mu       sync.Mutex
	fragment string
}

func newSession(id string, shell *page.Shell, send func(outbound)) *Session {
	return &Session{id: id, shell: shell, send: send}
}

// ID returns the session id.
func (s *Session) ID() string { return s.id }

func (s *Session) SetContent(markup string) {
	s.shell.SetContent(markup)
	s.send(outbound{Type: msgContent, Markup: markup})
}

func (s *Session) NavTargets() []router.ViewID { return s.shell.NavTargets() }

func (s *Session) SetActive(view router.ViewID, active bool) {
	s.shell.SetActive(view, active)
	s.send(outbound{Type: msgActive, View: view, Active: active})
}

// SetRegion updates a region if it still exists in the current content.
func (s *Session) SetRegion(id, markup string) {
	if _, ok := s.shell.Region(id); !ok {
		return
	}
	s.shell.SetRegion(id, markup)
	s.send(outbound{Type: msgRegion, ID: id, Markup: markup})
}

func (s *Session) Bind(action string, handler router.ActionHandler) {
	s.shell.Bind(action, handler)
}

func (s *Session) PushState(state router.HistoryState, fragment string) {
	s.setFragment(fragment)
	s.send(outbound{Type: msgPushState, State: &state, Fragment: fragment})
}

func (s *Session) Fragment() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fragment
}

func (s *Session) CreateIcons() {
	s.shell.CreateIcons()
	s.send(outbound{Type: msgIcons})
}

func (s *Session) setFragment(fragment string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fragment = strings.TrimPrefix(fragment, "#")
}
