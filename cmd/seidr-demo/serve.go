package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/seidr-ui/seidr/internal/config"
	"github.com/seidr-ui/seidr/pkg/dom"
	"github.com/seidr-ui/seidr/pkg/live"
	"github.com/seidr-ui/seidr/pkg/middleware"
	"github.com/seidr-ui/seidr/pkg/observable"
	"github.com/seidr-ui/seidr/pkg/render"
)

func serveCmd() *cobra.Command {
	var (
		host string
		port int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the demo server",
		Long: `Start the demo server.

Configuration is read from seidr.json in the working directory when
present; flags override it.

Routes:
  /         server-rendered counter page with embedded hydration payload
  /live     WebSocket stream of observable changes
  /metrics  Prometheus metrics`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFromWorkingDir()
			if err != nil {
				return err
			}
			if host != "" {
				cfg.Server.Host = host
			}
			if port > 0 {
				cfg.Server.Port = port
			}
			return runServe(cfg)
		},
	}

	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from seidr.json)")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from seidr.json)")

	return cmd
}

func runServe(cfg *config.Config) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	counter := observable.New(0, observable.WithLogger(logger))

	renderer := render.New(render.WithLogger(logger))
	publisher := live.NewPublisher(logger)
	publisher.Expose("counter", counter)

	component := func(c *render.Ctx) *dom.Node {
		count := c.Signal(counter.Value())
		label := c.DeriveFrom(count, func(v any) any {
			return fmt.Sprintf("seconds up: %v", v)
		})

		span := dom.CreateElement("span")
		c.BindText(label, span)

		heading := dom.CreateElement("h1").
			AppendChild(dom.CreateText("Seidr demo"))
		return dom.CreateElement("main").
			AppendChild(heading).
			AppendChild(dom.CreateElement("p").AppendChild(span))
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Metrics())
	r.Use(middleware.OTel())

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		doc, err := renderer.RenderPage(req.Context(), component, render.Page{
			Title: "Seidr demo",
		})
		if err != nil {
			logger.Error("render failed", "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(doc))
	})
	if cfg.LiveEnabled() {
		r.Handle(cfg.Live.Path, publisher)
	}
	if cfg.MetricsEnabled() {
		r.Handle(cfg.Metrics.Path, promhttp.Handler())
	}

	// Tick the counter so connected live clients see a stream of changes.
	tickCtx, stopTick := context.WithCancel(context.Background())
	defer stopTick()
	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-tickCtx.Done():
				return
			case <-ticker.C:
				counter.Set(counter.Value().(int) + 1)
			}
		}
	}()

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("demo server listening", "addr", cfg.Addr(), "config", cfg.Path())
		errCh <- srv.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case sig := <-sigCh:
		logger.Info("shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
	}

	return nil
}
