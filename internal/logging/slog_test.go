package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_TextDefault(t *testing.T) {
	buf := &bytes.Buffer{}
	logger, err := New(Config{Output: buf})
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("plan ready", "tables", 4)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "plan ready")
	assert.Contains(t, out, "tables=4")
	assert.Contains(t, out, "level=INFO")
}

func TestNew_JSONDebug(t *testing.T) {
	buf := &bytes.Buffer{}
	logger, err := New(Config{Level: "debug", Format: "JSON", Output: buf})
	require.NoError(t, err)

	logger.Debug("resolving", "attendees", 20)

	out := buf.String()
	assert.Contains(t, out, `"msg":"resolving"`)
	assert.Contains(t, out, `"attendees":20`)
	assert.Contains(t, out, `"level":"DEBUG"`)
}

func TestNew_Errors(t *testing.T) {
	_, err := New(Config{Format: "xml"})
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = New(Config{Level: "loud"})
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":      slog.LevelInfo,
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		" warn": slog.LevelWarn,
		"error": slog.LevelError,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestDiscard(t *testing.T) {
	require.NotPanics(t, func() {
		Discard().Error("dropped", "k", "v")
	})
}
