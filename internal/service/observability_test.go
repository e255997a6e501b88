package service

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogUseCaseObserver_WritesSortedFields(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf, slog.LevelInfo)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name:     "render-calendar",
		Duration: 1500 * time.Millisecond,
		Success:  true,
		Fields:   map[string]any{"year": 2024, "out": "cal.png"},
	})

	line := buf.String()
	assert.Contains(t, line, "level=INFO")
	assert.Contains(t, line, "use_case=render-calendar")
	assert.Contains(t, line, "duration_ms=1500")
	assert.Contains(t, line, "out=cal.png year=2024")
}

func TestLogUseCaseObserver_LevelFiltersSuccesses(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf, slog.LevelWarn)
	ctx := context.Background()

	obs.ObserveUseCase(ctx, UseCaseEvent{Name: "log-record", Success: true})
	assert.Empty(t, buf.String())

	obs.ObserveUseCase(ctx, UseCaseEvent{Name: "log-record", Err: errors.New("boom")})
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "error=boom")
}

func TestNewLogUseCaseObserver_NilWriterIsNoop(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil, slog.LevelInfo))
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := ParseLogLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseLogLevel("loud")
	assert.Error(t, err)
}
