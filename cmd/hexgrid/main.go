package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/udisondev/hexgrid/internal/config"
	"github.com/udisondev/hexgrid/internal/hex"
	"github.com/udisondev/hexgrid/internal/scenario"
)

const ConfigPath = "config/hexgrid.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfgPath := ConfigPath
	if p := os.Getenv("HEXGRID_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadEngine(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	level, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
	slog.Info("config loaded", "path", cfgPath, "scenario", cfg.Scenario, "workers", cfg.Workers)

	sc, err := scenario.Load(cfg.Scenario)
	if err != nil {
		return fmt.Errorf("loading scenario: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	runner := scenario.NewRunner(cfg.Workers, scenario.NewMetrics(reg))

	if cfg.MetricsAddr == "" {
		results, err := runner.Run(ctx, sc.Grid, sc.Queries)
		if err != nil {
			return fmt.Errorf("running queries: %w", err)
		}
		return report(os.Stdout, sc.Layout, results)
	}

	// With a metrics endpoint the process keeps serving until it is signalled.
	g, gctx := errgroup.WithContext(ctx)

	srv := &http.Server{
		Addr:              cfg.MetricsAddr,
		Handler:           promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g.Go(func() error {
		slog.Info("metrics endpoint listening", "addr", cfg.MetricsAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("metrics server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	g.Go(func() error {
		results, err := runner.Run(gctx, sc.Grid, sc.Queries)
		if err != nil {
			return fmt.Errorf("running queries: %w", err)
		}
		return report(os.Stdout, sc.Layout, results)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	return nil
}

func report(w io.Writer, layout hex.Layout, results []scenario.Result) error {
	for _, r := range results {
		cells := make([]string, len(r.Cells))
		for i, o := range hex.Offsets(layout, r.Cells) {
			cells[i] = o.String()
		}

		line := fmt.Sprintf("%-24s %-20s %3d cells", r.Query.Name, r.Query.Kind, len(r.Cells))
		if r.Query.Kind == scenario.KindPath {
			line += fmt.Sprintf(" cost %d", r.Cost)
		}
		if _, err := fmt.Fprintf(w, "%s  %s\n", line, strings.Join(cells, " ")); err != nil {
			return err
		}
	}
	return nil
}
