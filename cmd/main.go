package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	app "github.com/okian/suisen/internal/app"
	"github.com/okian/suisen/internal/config"
	"github.com/okian/suisen/pkg/logger"
	"github.com/okian/suisen/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HTTP server timeout constants for the optional metrics listener.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 10 * time.Second
	readHeaderTimeout = 5 * time.Second
)

func main() {
	os.Exit(run())
}

func run() int {
	// Initialize logging
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return 1
	}
	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return 1
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info",
			logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	// Optionally expose Prometheus metrics while the run is in flight.
	if cfg.MetricsAddr != "" {
		srv := startMetricsServer(ctx, cfg.MetricsAddr, log)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), readTimeout)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	svc := app.New(
		app.WithLogger(log),
		app.WithDatasetPath(cfg.DatasetPath),
		app.WithTopN(cfg.TopN),
		app.WithMinSupport(cfg.MinRatings),
		app.WithRatingBounds(cfg.RatingMin, cfg.RatingMax),
		app.WithDropDuplicates(cfg.DropDuplicates),
	)
	result, err := svc.Run(ctx)
	if err != nil {
		log.Error(ctx, "pipeline run failed", logger.Error(err))
		return 1
	}

	if err := render(os.Stdout, cfg.OutputFormat, result); err != nil {
		log.Error(ctx, "rendering output failed", logger.Error(err))
		return 1
	}
	return 0
}

// startMetricsServer serves the custom registry until the run ends.
func startMetricsServer(ctx context.Context, addr string, log logger.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{}))

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}
	go func() {
		log.Info(ctx, "serving metrics", logger.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Warn(ctx, "metrics server stopped", logger.Error(err))
		}
	}()
	return srv
}
