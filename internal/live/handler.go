// Package live serves browser sessions over a websocket. The router for
// each tab runs on the server; the browser reports navigation and form
// events and applies the document updates it is sent.
package live

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/ziadkadry99/research-desk/internal/page"
	"github.com/ziadkadry99/research-desk/internal/router"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	sendBuffer = 64
)

// ViewsFunc builds the view table for one session. Work the views start in
// the background is bound to ctx, which ends with the session.
type ViewsFunc func(ctx context.Context) router.Table

// Handler accepts websocket sessions.
type Handler struct {
	Views   ViewsFunc
	Shell   page.ShellOptions
	Options []router.Option

	upgrader websocket.Upgrader
}

// NewHandler creates a Handler. When allowAllOrigins is false only
// same-host origins may connect.
func NewHandler(views ViewsFunc, shell page.ShellOptions, allowAllOrigins bool, opts ...router.Option) *Handler {
	h := &Handler{Views: views, Shell: shell, Options: opts}
	h.upgrader = websocket.Upgrader{ReadBufferSize: 1024, WriteBufferSize: 1024}
	if allowAllOrigins {
		h.upgrader.CheckOrigin = func(*http.Request) bool { return true }
	}
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("live: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	if err := conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		log.Printf("live: set read deadline: %v", err)
		return
	}
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	writeCh := make(chan outbound, sendBuffer)
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		defer cancel()
		ticker := time.NewTicker(pingPeriod)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case out := <-writeCh:
				if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
					return
				}
				if err := conn.WriteJSON(out); err != nil {
					log.Printf("live: websocket write: %v", err)
					return
				}
			case <-ticker.C:
				if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
					return
				}
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			}
		}
	}()

	send := func(out outbound) {
		select {
		case writeCh <- out:
		case <-ctx.Done():
		}
	}

	sess := newSession(uuid.NewString(), nil, send)
	send(outbound{Type: msgSession, SessionID: sess.ID()})

	var rt *router.Router
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("live: session %s read: %v", sess.ID(), err)
			}
			break
		}

		var msg inbound
		if err := json.Unmarshal(data, &msg); err != nil {
			send(outbound{Type: msgError, Message: "invalid message format"})
			continue
		}

		if rt == nil {
			if msg.Type != msgHello {
				send(outbound{Type: msgError, Message: "session not started"})
				continue
			}
			rt, err = h.start(ctx, sess, msg.Fragment)
			if err != nil {
				log.Printf("live: session %s: %v", sess.ID(), err)
				send(outbound{Type: msgError, Message: "could not start session"})
				break
			}
			continue
		}

		h.handle(rt, sess, msg, send)
	}

	cancel()
	<-writerDone
}

func (h *Handler) start(ctx context.Context, sess *Session, fragment string) (*router.Router, error) {
	shell, err := page.NewShell(h.Shell)
	if err != nil {
		return nil, err
	}
	sess.shell = shell
	sess.setFragment(fragment)

	opts := append([]router.Option{router.WithIcons(sess)}, h.Options...)
	rt, err := router.New(h.Views(ctx), sess, sess, opts...)
	if err != nil {
		return nil, err
	}
	rt.Start()
	return rt, nil
}

// handle applies one browser event. Events are handled in arrival order, so
// the router state is only touched from the read loop.
func (h *Handler) handle(rt *router.Router, sess *Session, msg inbound, send func(outbound)) {
	switch msg.Type {
	case msgNavigate:
		rt.NavigateTo(msg.View)
	case msgPopState:
		sess.setFragment(msg.Fragment)
		rt.HandlePopState(msg.State)
	case msgAction:
		if !sess.shell.Dispatch(msg.Name, msg.Fields) {
			send(outbound{Type: msgError, Message: "unknown action: " + msg.Name})
		}
	case msgHello:
		send(outbound{Type: msgError, Message: "session already started"})
	default:
		send(outbound{Type: msgError, Message: "unknown message type: " + msg.Type})
	}
}
