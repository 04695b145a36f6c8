package main

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"chatty", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLogLevel(tt.in))
		})
	}
}

func TestExitCode(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, 0, exitCode(ctx, nil))
	assert.Equal(t, 1, exitCode(ctx, errors.New("boom")))

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	assert.Equal(t, exitInterrupted, exitCode(canceled, context.Canceled))
	assert.Equal(t, exitInterrupted, exitCode(canceled, nil))
}

func TestVersionCommand(t *testing.T) {
	out, err := executeCommand(t, "version")
	assert.NoError(t, err)
	assert.Equal(t, "ondemand dev\n", out)
}
