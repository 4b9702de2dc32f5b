package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/ziadkadry99/research-desk/internal/page"
	"github.com/ziadkadry99/research-desk/internal/router"
)

func testServer(cfg Config) *Server {
	views := func(context.Context) router.Table {
		return router.Table{
			"dashboard": router.FuncView(func() string { return `<p id="home">home</p>` }),
			"search":    router.FuncView(func() string { return `<p>search</p>` }),
		}
	}
	nav := []page.NavEntry{
		{View: "dashboard", Label: "Dashboard", Icon: "layout-dashboard"},
		{View: "search", Label: "Search", Icon: "search"},
	}
	return New(cfg, views, nav)
}

func TestHealthCheck(t *testing.T) {
	srv := testServer(Config{Port: 0})

	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status 'ok', got %q", body["status"])
	}
}

func TestCORSHeaders(t *testing.T) {
	srv := testServer(Config{Port: 0, AllowAll: true})

	req := httptest.NewRequest("OPTIONS", "/healthz", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("expected CORS Allow-Origin header")
	}
}

func TestIndexPrerendersHome(t *testing.T) {
	srv := testServer(Config{Title: "Desk"})

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{`<p id="home">home</p>`, `data-view="search"`, `src="/static/app.js"`, "<title>Desk</title>"} {
		if !strings.Contains(body, want) {
			t.Errorf("index missing %q", want)
		}
	}
}

func TestIndexUsesConfiguredHome(t *testing.T) {
	srv := testServer(Config{Home: "search"})

	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

	if !strings.Contains(w.Body.String(), "<p>search</p>") {
		t.Errorf("index did not render the configured home view")
	}
}

func TestAppScript(t *testing.T) {
	srv := testServer(Config{})

	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest("GET", "/static/app.js", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Header().Get("Content-Type"), "javascript") {
		t.Errorf("content type = %q", w.Header().Get("Content-Type"))
	}
	if !strings.Contains(w.Body.String(), "/ws/session") {
		t.Error("script does not open the session socket")
	}
}

func TestSessionEndpoint(t *testing.T) {
	hs := httptest.NewServer(testServer(Config{AllowAll: true}).Router())
	defer hs.Close()

	wsURL := "ws" + strings.TrimPrefix(hs.URL, "http") + "/ws/session"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("websocket dial: %v", err)
	}
	defer conn.Close()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	if err := conn.WriteJSON(map[string]string{"type": "hello", "fragment": "search"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	for {
		var msg map[string]any
		if err := conn.ReadJSON(&msg); err != nil {
			t.Fatalf("read: %v", err)
		}
		if msg["type"] == "content" {
			if msg["markup"] != "<p>search</p>" {
				t.Errorf("markup = %v", msg["markup"])
			}
			return
		}
	}
}
