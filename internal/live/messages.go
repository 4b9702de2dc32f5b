package live

import "github.com/ziadkadry99/research-desk/internal/router"

// Inbound message types sent by the browser.
const (
	msgHello    = "hello"
	msgNavigate = "navigate"
	msgPopState = "popstate"
	msgAction   = "action"
)

// Outbound message types sent to the browser.
const (
	msgSession   = "session"
	msgContent   = "content"
	msgActive    = "active"
	msgRegion    = "region"
	msgPushState = "push-state"
	msgIcons     = "icons"
	msgError     = "error"
)

// inbound is a browser event.
type inbound struct {
	Type     string               `json:"type"`
	Fragment string               `json:"fragment,omitempty"`
	View     router.ViewID        `json:"view,omitempty"`
	State    *router.HistoryState `json:"state,omitempty"`
	Name     string               `json:"name,omitempty"`
	Fields   map[string]string    `json:"fields,omitempty"`
}

// outbound is a document or history update for the browser to apply.
type outbound struct {
	Type      string               `json:"type"`
	SessionID string               `json:"session_id,omitempty"`
	Markup    string               `json:"markup,omitempty"`
	View      router.ViewID        `json:"view,omitempty"`
	Active    bool                 `json:"active,omitempty"`
	ID        string               `json:"id,omitempty"`
	State     *router.HistoryState `json:"state,omitempty"`
	Fragment  string               `json:"fragment,omitempty"`
	Message   string               `json:"message,omitempty"`
}
