package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/research-desk/internal/router"
	"github.com/ziadkadry99/research-desk/internal/server"
	"github.com/ziadkadry99/research-desk/internal/views"
)

var (
	servePort     int
	actionTimeout time.Duration
	serveAllowAll bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the research desk web UI",
	Long:  `Serves the single-page research desk. Each browser tab gets a live session whose views call the completion proxy.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if err := checkHomeView(cfg.HomeView); err != nil {
			return err
		}
		svc := newServices(cfg)

		port := cfg.ListenPort
		if cmd.Flags().Changed("port") {
			port = servePort
		}

		viewsFor := func(ctx context.Context) router.Table {
			return views.Table(ctx, views.Services{
				Articles:      svc.searcher,
				Writer:        svc.client,
				Analyzer:      svc.analyzer,
				AnalysisLimit: cfg.AnalysisLimit,
				ActionTimeout: actionTimeout,
			})
		}

		srv := server.New(server.Config{
			Port:     port,
			Title:    "میز پژوهش",
			Home:     router.ViewID(cfg.HomeView),
			AllowAll: cfg.AllowAllOrigins || serveAllowAll,
		}, viewsFor, views.Nav())

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()

		fmt.Fprintf(os.Stderr, "researchdesk %s starting on http://localhost:%d\n", Version, port)
		fmt.Fprintf(os.Stderr, "  Proxy: %s\n", cfg.ProxyURL)
		fmt.Fprintf(os.Stderr, "  Model: %s\n", svc.client.Model())

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

// checkHomeView rejects a home_view that names no view. Empty means the
// router default.
func checkHomeView(home string) error {
	if home == "" {
		return nil
	}
	var names []string
	for _, n := range views.Nav() {
		if string(n.View) == home {
			return nil
		}
		names = append(names, string(n.View))
	}
	return fmt.Errorf("invalid config: unknown home_view %q (valid: %s)", home, strings.Join(names, ", "))
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "port to listen on (overrides listen_port)")
	serveCmd.Flags().DurationVar(&actionTimeout, "action-timeout", 2*time.Minute, "limit for one search, proposal or analysis")
	serveCmd.Flags().BoolVar(&serveAllowAll, "allow-all-origins", false, "accept requests and sessions from any origin")
	rootCmd.AddCommand(serveCmd)
}
