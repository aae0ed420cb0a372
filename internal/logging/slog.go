// SPDX-License-Identifier: MIT

// Package logging builds the slog loggers used by the seatplan binaries.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// ErrUnknownFormat indicates a log format other than "text" or "json".
var ErrUnknownFormat = errors.New("logging: unknown format")

// Config selects the handler.
type Config struct {
	Level  string    // debug, info, warn, error; empty means info
	Format string    // text or json; empty means text
	Output io.Writer // defaults to os.Stderr
}

// New creates a logger from cfg.
//
// Example:
//
//	logger, err := logging.New(logging.Config{Level: "debug", Format: "json"})
//	logger.Info("planner started", "addr", ":8080")
func New(cfg Config) (*slog.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case "", "text":
		return slog.New(slog.NewTextHandler(out, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(out, opts)), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, cfg.Format)
	}
}

// ParseLevel maps a level name to slog.Level; empty means info.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if strings.TrimSpace(s) == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("logging: %w", err)
	}

	return lvl, nil
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}
