package logger_test

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/dynctl/internal/adapters/logger"
	"go.trai.ch/dynctl/internal/core/domain"
	"go.trai.ch/zerr"
)

// captureStderr captures output written to os.Stderr during the execution of fn.
func captureStderr(fn func()) (string, error) {
	originalStderr := os.Stderr

	r, w, err := os.Pipe()
	if err != nil {
		return "", err
	}
	os.Stderr = w

	done := make(chan string, 1)
	go func() {
		buf, _ := io.ReadAll(r)
		done <- string(buf)
	}()

	fn()

	if err := w.Close(); err != nil {
		os.Stderr = originalStderr
		return "", err
	}
	output := <-done

	if err := r.Close(); err != nil {
		os.Stderr = originalStderr
		return "", err
	}
	os.Stderr = originalStderr

	return output, nil
}

func TestNew_WritesToStderr(t *testing.T) {
	t.Setenv(logger.LevelEnv, "")

	output, err := captureStderr(func() {
		// Create the logger inside the capture function so it uses the redirected stderr
		lg := logger.New()
		lg.Info("some message")
	})
	require.NoError(t, err)

	assert.Contains(t, output, "some message")
	assert.Contains(t, output, "INFO")
}

func TestNew_LevelFromEnv(t *testing.T) {
	t.Setenv(logger.LevelEnv, "debug")

	output, err := captureStderr(func() {
		lg := logger.New()
		lg.Debug("resolving closure", "action", "show")
	})
	require.NoError(t, err)

	assert.Contains(t, output, "DEBUG")
	assert.Contains(t, output, "action=show")
}

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithWriter(&buf, slog.LevelInfo)

	lg.Debug("hidden")
	lg.Info("some message")
	lg.Warn("some warning")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "some message")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "some warning")
}

func TestLogger_Error(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithWriter(&buf, slog.LevelInfo)

	lg.Error(zerr.With(zerr.Wrap(domain.ErrClosureNotFound, "failed to resolve"), "action", "show"))

	out := buf.String()
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "closure not found")
	assert.Contains(t, out, "show")
}

func TestLogger_Named(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithWriter(&buf, slog.LevelDebug)

	child := lg.Named("resolver")
	child.Debug("resolving closure", "action", "list")
	lg.Info("root message")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "component=resolver")
	assert.Contains(t, lines[0], "action=list")
	assert.NotContains(t, lines[1], "component=")
}

func TestLogger_SetOutputReachesNamedChildren(t *testing.T) {
	var first, second bytes.Buffer
	lg := logger.NewWithWriter(&first, slog.LevelInfo)
	child := lg.Named("store")

	lg.SetOutput(&second)
	child.Info("after switch")

	assert.Empty(t, first.String())
	assert.Contains(t, second.String(), "after switch")
	assert.Contains(t, second.String(), "component=store")
}

func TestLogger_SetLevel(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithWriter(&buf, slog.LevelWarn)
	child := lg.Named("resolver")

	child.Info("dropped")
	lg.SetLevel(slog.LevelDebug)
	child.Debug("kept")

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "kept")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.ParseLevel(tt.in))
		})
	}
}
