// SPDX-License-Identifier: MIT

// Package cmd holds the startup helpers shared by the seatplan binaries.
package cmd

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"time"

	"github.com/katalvlaran/seatplan/internal/platform/config"
	"github.com/katalvlaran/seatplan/internal/platform/otel"
)

// flushTimeout bounds the final span export on exit.
const flushTimeout = 5 * time.Second

// Telemetry resource names.
const (
	ServiceCLI = "seatplan"
	ServiceAPI = "seatplan-api"
)

// Configure fills cfg from the environment, lets bind register flags whose
// defaults are those values, then parses args. Flags therefore win over env.
func Configure[T any](cfg *T, fs *flag.FlagSet, args []string, bind func(*flag.FlagSet, *T)) error {
	if cfg == nil || fs == nil {
		return errors.New("configure: config and flag set are required")
	}
	if err := config.ParseEnv(cfg); err != nil {
		return err
	}
	if bind != nil {
		bind(fs, cfg)
	}
	if args == nil {
		args = []string{}
	}

	return fs.Parse(args)
}

// Run executes fn with tracing configured from SEATPLAN_OTEL_*. A failed
// flush on the way out is logged and does not replace fn's result.
func Run(ctx context.Context, service string, fn func(context.Context) error) error {
	if fn == nil {
		return errors.New("run: nil run func")
	}
	var tc otel.Config
	if err := config.ParseEnv(&tc); err != nil {
		return err
	}
	flush, err := otel.Setup(ctx, service, tc)
	if err != nil {
		return err
	}
	defer func() {
		fctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
		defer cancel()
		if err := flush(fctx); err != nil {
			slog.Warn("trace flush failed", "service", service, "err", err)
		}
	}()

	return fn(ctx)
}
