package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/saltbundle/internal/adapters/logger"
)

func TestPrettyHandler_Handle_Levels(t *testing.T) {
	tests := []struct {
		name       string
		level      slog.Level
		msg        string
		goldenName string
	}{
		{name: "info level", level: slog.LevelInfo, msg: "information message", goldenName: "handler_info"},
		{name: "warn level", level: slog.LevelWarn, msg: "warning message", goldenName: "handler_warn"},
		{name: "error level", level: slog.LevelError, msg: "error message", goldenName: "handler_error"},
		{name: "debug level filtered", level: slog.LevelDebug, msg: "debug message", goldenName: "handler_debug_filtered"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "1")

			buf := &bytes.Buffer{}
			handler := logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo})
			slog.New(handler).Log(t.Context(), tt.level, tt.msg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestPrettyHandler_Attrs(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	var handler slog.Handler = logger.NewPrettyHandler(buf, nil)
	handler = handler.WithAttrs([]slog.Attr{slog.String("formula", "nginx")})
	handler = handler.WithGroup("span")

	slog.New(handler).Info("span finished", "duration", "12ms")

	g := goldie.New(t)
	g.Assert(t, "handler_attrs", buf.Bytes())
}

func TestPrettyHandler_Enabled_FollowsLevelVar(t *testing.T) {
	level := &slog.LevelVar{}
	level.Set(slog.LevelInfo)
	handler := logger.NewPrettyHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: level})

	assert.False(t, handler.Enabled(t.Context(), slog.LevelDebug))
	assert.True(t, handler.Enabled(t.Context(), slog.LevelWarn))

	level.Set(slog.LevelDebug)
	assert.True(t, handler.Enabled(t.Context(), slog.LevelDebug))

	level.Set(slog.LevelError)
	assert.False(t, handler.Enabled(t.Context(), slog.LevelWarn))
}
