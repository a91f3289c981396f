// Command gridpathd serves grid searches over HTTP (see package httpapi).
//
// Configuration comes from flags, each defaulting to an environment variable:
//
//	-addr            GRIDPATH_ADDR             listen address (default ":8080")
//	-log-level       GRIDPATH_LOG_LEVEL        debug, info, warn or error (default "info")
//	-max-iterations  GRIDPATH_MAX_ITERATIONS   per-search budget, 0 = unlimited
//
// Logs are JSON on stderr. Prometheus metrics are served at /metrics.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/gridpath/httpapi"
	"github.com/katalvlaran/gridpath/metrics"
)

type config struct {
	addr          string
	logLevel      slog.Level
	maxIterations int
}

func main() {
	cfg, err := parseConfig(os.Args[1:], os.Getenv)
	if err != nil {
		fmt.Fprintln(os.Stderr, "gridpathd:", err)
		os.Exit(2)
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.logLevel}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := serve(ctx, cfg, logger, prometheus.DefaultRegisterer, promhttp.Handler()); err != nil {
		logger.Error("server_failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// parseConfig reads flags from args with defaults taken from getenv.
func parseConfig(args []string, getenv func(string) string) (config, error) {
	cfg := config{addr: ":8080", logLevel: slog.LevelInfo}
	if v := getenv("GRIDPATH_ADDR"); v != "" {
		cfg.addr = v
	}
	if v := getenv("GRIDPATH_LOG_LEVEL"); v != "" {
		if err := cfg.logLevel.UnmarshalText([]byte(v)); err != nil {
			return cfg, fmt.Errorf("GRIDPATH_LOG_LEVEL: %w", err)
		}
	}
	if v := getenv("GRIDPATH_MAX_ITERATIONS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("GRIDPATH_MAX_ITERATIONS: %w", err)
		}
		cfg.maxIterations = n
	}

	fs := flag.NewFlagSet("gridpathd", flag.ContinueOnError)
	fs.StringVar(&cfg.addr, "addr", cfg.addr, "listen address")
	fs.TextVar(&cfg.logLevel, "log-level", cfg.logLevel, "debug, info, warn or error")
	fs.IntVar(&cfg.maxIterations, "max-iterations", cfg.maxIterations, "per-search iteration budget; 0 means unlimited")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if cfg.maxIterations < 0 {
		return cfg, fmt.Errorf("max-iterations must be >= 0, got %d", cfg.maxIterations)
	}

	return cfg, nil
}

// newHandler wires the service, its metrics recorder and the router.
func newHandler(cfg config, logger *slog.Logger, reg prometheus.Registerer, metricsHandler http.Handler) http.Handler {
	svc := httpapi.NewService(
		httpapi.WithLogger(logger),
		httpapi.WithMetrics(metrics.NewRecorder(reg)),
		httpapi.WithMaxIterations(cfg.maxIterations),
	)

	return httpapi.NewRouter(httpapi.NewController(svc), metricsHandler, logger)
}

// serve runs the HTTP server until ctx is done, then shuts it down.
func serve(ctx context.Context, cfg config, logger *slog.Logger, reg prometheus.Registerer, metricsHandler http.Handler) error {
	srv := &http.Server{
		Addr:              cfg.addr,
		Handler:           newHandler(cfg, logger, reg, metricsHandler),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("server_listening", slog.String("addr", cfg.addr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	logger.Info("server_shutdown")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
