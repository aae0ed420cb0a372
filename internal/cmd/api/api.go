// SPDX-License-Identifier: MIT

// Package api parses API server flags and serves the planner over HTTP.
package api

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/seatplan/internal/httpapi"
	"github.com/katalvlaran/seatplan/internal/logging"
	"github.com/katalvlaran/seatplan/internal/metrics"
	entrypoint "github.com/katalvlaran/seatplan/internal/platform/cmd"
	"github.com/katalvlaran/seatplan/planner"
)

const shutdownTimeout = 10 * time.Second

// Config holds API server configuration.
type Config struct {
	Addr           string        `env:"SEATPLAN_API_ADDR" envDefault:":8080"`
	RequestTimeout time.Duration `env:"SEATPLAN_API_REQUEST_TIMEOUT" envDefault:"30s"`
	MaxAttendees   int           `env:"SEATPLAN_API_MAX_ATTENDEES" envDefault:"1000"`
	MaxRounds      int           `env:"SEATPLAN_API_MAX_ROUNDS" envDefault:"50"`
	LogLevel       string        `env:"SEATPLAN_LOG_LEVEL" envDefault:"info"`
	LogFormat      string        `env:"SEATPLAN_LOG_FORMAT" envDefault:"json"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	err := entrypoint.Configure(&cfg, fs, args, func(fs *flag.FlagSet, cfg *Config) {
		fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "HTTP listen address")
		fs.DurationVar(&cfg.RequestTimeout, "request-timeout", cfg.RequestTimeout, "per-request planning timeout")
		fs.IntVar(&cfg.MaxAttendees, "max-attendees", cfg.MaxAttendees, "largest attendee count, tables or table size accepted per request")
		fs.IntVar(&cfg.MaxRounds, "max-rounds", cfg.MaxRounds, "largest round count accepted per request")
		fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
		fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format: text or json")
	})
	if err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.Run(ctx, entrypoint.ServiceAPI, func(ctx context.Context) error {
		logger, err := logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
		if err != nil {
			return err
		}
		ln, err := net.Listen("tcp", cfg.Addr)
		if err != nil {
			return fmt.Errorf("listen %s: %w", cfg.Addr, err)
		}

		return serve(ctx, ln, NewHandler(cfg, logger, prometheus.NewRegistry()), logger)
	})
}

// NewHandler wires the planner, metrics registry and HTTP routes.
func NewHandler(cfg Config, logger *slog.Logger, reg *prometheus.Registry) http.Handler {
	svc := planner.New(
		planner.WithLogger(logger),
		planner.WithRecorder(metrics.NewPrometheus(reg, "")),
	)

	return httpapi.New(svc,
		httpapi.WithLogger(logger),
		httpapi.WithTimeout(cfg.RequestTimeout),
		httpapi.WithLimits(httpapi.Limits{MaxAttendees: cfg.MaxAttendees, MaxRounds: cfg.MaxRounds}),
		httpapi.WithGatherer(reg),
	)
}

func serve(ctx context.Context, ln net.Listener, h http.Handler, logger *slog.Logger) error {
	srv := &http.Server{
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		logger.Info("api listening", "addr", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	logger.Info("api shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}
