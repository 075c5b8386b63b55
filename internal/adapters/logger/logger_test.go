package logger_test

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/saltbundle/internal/adapters/logger"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger with an injected bytes.Buffer for isolated testing.
// It also sets NO_COLOR=1 to ensure deterministic output without ANSI escape codes.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New()
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name       string
		log        func(lg *logger.Logger)
		goldenName string
	}{
		{
			name:       "info",
			log:        func(lg *logger.Logger) { lg.Info("added 2 formulas from /proj/vendor: mysql, nginx") },
			goldenName: "info_basic",
		},
		{
			name:       "warn",
			log:        func(lg *logger.Logger) { lg.Warn("vendor directory /proj/vendor does not exist") },
			goldenName: "warn_basic",
		},
		{
			name:       "multiline warn",
			log:        func(lg *logger.Logger) { lg.Warn("warn1\nwarn2") },
			goldenName: "warn_multiline",
		},
		{
			name:       "debug hidden at info level",
			log:        func(lg *logger.Logger) { lg.Debug("no .salt-dependencies.yaml found") },
			goldenName: "debug_hidden",
		},
		{
			name: "debug shown at debug level",
			log: func(lg *logger.Logger) {
				lg.SetLevel(slog.LevelDebug)
				lg.Debug("no .salt-dependencies.yaml found")
			},
			goldenName: "debug_shown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			tt.log(lg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Error(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		goldenName string
	}{
		{
			name:       "simple error",
			err:        os.ErrPermission,
			goldenName: "error_simple",
		},
		{
			name:       "multiline error",
			err:        errors.New("yaml: unmarshal errors:\n  line 3: cannot unmarshal !!map into string"),
			goldenName: "error_multiline",
		},
		{
			name: "zerr chain",
			err: zerr.Wrap(
				zerr.Wrap(
					errors.New("permission denied"),
					"failed to open file",
				),
				"serve file",
			),
			goldenName: "error_chain_zerr",
		},
		{
			name: "zerr chain with metadata",
			err: zerr.With(
				zerr.Wrap(errors.New("permission denied"), "failed to read file"),
				"path", "nginx/init.sls",
			),
			goldenName: "error_metadata",
		},
		{
			name: "stdlib chain",
			err: fmt.Errorf("serve file: %w",
				fmt.Errorf("open /proj/vendor/nginx/init.sls: %w", os.ErrPermission)),
			goldenName: "error_chain_stdlib",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Error(tt.err)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Error_Nil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)

	assert.Empty(t, buf.String(), "Expected no output for nil error")
}

func TestLogger_SetJSON_WithErrorChain(t *testing.T) {
	err := zerr.With(zerr.Wrap(errors.New("permission denied"), "failed to read file"), "path", "nginx/init.sls")

	lg, buf := newTestLogger(t)
	lg.SetJSON(true)
	lg.Error(err)

	output := buf.String()
	assert.Contains(t, output, `"error"`)
	assert.Contains(t, output, `"level":"ERROR"`)
	assert.Contains(t, output, "failed to read file")
	assert.NotContains(t, output, "✗", "JSON format should not have pretty markers")
}

func TestLogger_SetJSON_KeepsLevel(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetLevel(slog.LevelDebug)
	lg.SetJSON(true)
	lg.Debug("probing /proj")

	assert.Contains(t, buf.String(), `"level":"DEBUG"`)
	assert.Contains(t, buf.String(), `"msg":"probing /proj"`)
}

func TestLogger_FormatSwitching(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Error(errors.New("error in pretty mode"))
	prettyOutput := buf.String()
	buf.Reset()

	lg.SetJSON(true)
	lg.Error(errors.New("error in json mode"))
	jsonOutput := buf.String()
	buf.Reset()

	lg.SetJSON(false)
	lg.Error(errors.New("error back in pretty mode"))
	backToPrettyOutput := buf.String()

	assert.Contains(t, prettyOutput, "✗")
	assert.NotContains(t, prettyOutput, `"error"`)
	assert.Contains(t, jsonOutput, `"error"`)
	assert.NotContains(t, jsonOutput, "✗")
	assert.Contains(t, backToPrettyOutput, "✗")
}

func TestLogger_SetOutput_Nil(t *testing.T) {
	require.NotPanics(t, func() {
		lg := logger.New()
		lg.SetOutput(nil)
	})
}

func TestLogger_ConcurrentAccess(t *testing.T) {
	lg, _ := newTestLogger(t)

	done := make(chan bool, 7)
	go func() { lg.Info("concurrent info"); done <- true }()
	go func() { lg.Warn("concurrent warn"); done <- true }()
	go func() { lg.Debug("concurrent debug"); done <- true }()
	go func() { lg.Error(errors.New("concurrent error")); done <- true }()
	go func() { lg.SetJSON(true); done <- true }()
	go func() { lg.SetLevel(slog.LevelDebug); done <- true }()
	go func() { lg.SetOutput(&bytes.Buffer{}); done <- true }()

	for range 7 {
		<-done
	}
}
