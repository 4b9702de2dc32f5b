package page

import (
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/ziadkadry99/research-desk/internal/router"
)

// Entry is one session history entry. State is nil for entries created by
// a page load rather than by PushState.
type Entry struct {
	Key      string
	State    *router.HistoryState
	Fragment string
}

// PopStateFunc is called when the user moves to another entry.
type PopStateFunc func(state *router.HistoryState)

// SessionHistory is an in-memory session history with back and forward
// navigation.
type SessionHistory struct {
	mu      sync.Mutex
	entries []Entry
	index   int
	onPop   PopStateFunc
}

// NewSessionHistory starts a history whose only entry is a page load at
// fragment.
func NewSessionHistory(fragment string) *SessionHistory {
	return &SessionHistory{
		entries: []Entry{{Key: uuid.NewString(), Fragment: strings.TrimPrefix(fragment, "#")}},
	}
}

// OnPopState sets the listener notified by Back, Forward and Go.
func (h *SessionHistory) OnPopState(fn PopStateFunc) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onPop = fn
}

// PushState adds an entry after the current one, dropping any forward
// entries.
func (h *SessionHistory) PushState(state router.HistoryState, fragment string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	st := state
	h.entries = append(h.entries[:h.index+1], Entry{
		Key:      uuid.NewString(),
		State:    &st,
		Fragment: strings.TrimPrefix(fragment, "#"),
	})
	h.index++
}

// Fragment returns the fragment of the current entry.
func (h *SessionHistory) Fragment() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.entries[h.index].Fragment
}

// Current returns the current entry.
func (h *SessionHistory) Current() Entry {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.entries[h.index]
}

// Len returns the number of entries.
func (h *SessionHistory) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// Back moves one entry back. It reports false at the first entry.
func (h *SessionHistory) Back() bool { return h.Go(-1) }

// Forward moves one entry forward. It reports false at the last entry.
func (h *SessionHistory) Forward() bool { return h.Go(1) }

// Go moves delta entries and notifies the popstate listener. Out of range
// moves do nothing.
func (h *SessionHistory) Go(delta int) bool {
	h.mu.Lock()
	target := h.index + delta
	if delta == 0 || target < 0 || target >= len(h.entries) {
		h.mu.Unlock()
		return false
	}
	h.index = target
	state := h.entries[target].State
	fn := h.onPop
	h.mu.Unlock()

	if fn != nil {
		fn(state)
	}
	return true
}
