package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ziadkadry99/research-desk/internal/live"
	"github.com/ziadkadry99/research-desk/internal/page"
	"github.com/ziadkadry99/research-desk/internal/router"
)

const scriptPath = "/static/app.js"

// Config holds server configuration.
type Config struct {
	Port     int
	Title    string
	Home     router.ViewID
	AllowAll bool // allow all CORS and websocket origins (dev mode)
}

// Server serves the research desk web UI.
type Server struct {
	cfg        Config
	views      live.ViewsFunc
	shell      page.ShellOptions
	router     chi.Router
	httpServer *http.Server
}

// New creates a server for the given views and navigation.
func New(cfg Config, views live.ViewsFunc, nav []page.NavEntry) *Server {
	s := &Server{
		cfg:   cfg,
		views: views,
		shell: page.ShellOptions{Title: cfg.Title, Nav: nav, Script: scriptPath},
	}

	s.router = s.buildRouter()
	return s
}

func (s *Server) routerOptions() []router.Option {
	if s.cfg.Home == "" {
		return nil
	}
	return []router.Option{router.WithHome(s.cfg.Home)}
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Sessions outlive the request timeout.
	r.Method(http.MethodGet, "/ws/session", live.NewHandler(s.views, s.shell, s.cfg.AllowAll, s.routerOptions()...))

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))

		r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"status":"ok"}`))
		})
		r.Get("/", s.handleIndex)
		r.Get(scriptPath, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/javascript; charset=utf-8")
			w.Write([]byte(appScript))
		})
	})

	return r
}

// handleIndex serves the shell with the home view already rendered, so the
// page is usable before the session connects.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	p, err := page.Open(s.views(r.Context()), s.shell, "", s.routerOptions()...)
	if err != nil {
		log.Printf("server: opening page: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	html, err := p.Shell.HTML()
	if err != nil {
		log.Printf("server: rendering page: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(html))
}

// Router returns the chi router.
func (s *Server) Router() chi.Router { return s.router }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("researchdesk server listening on %s", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
