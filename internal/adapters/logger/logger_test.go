package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/histo/internal/adapters/logger"
	"go.trai.ch/histo/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestLogger_Pretty(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	l := logger.New()
	l.SetOutput(buf)

	l.Info("generating dataset")
	l.Warn("discarding corrupt fixture")
	l.Error(zerr.With(
		domain.Wrap(domain.ErrSolutionFailed, errors.New("exit status 3")),
		"exit_code", 3,
	))

	g := goldie.New(t)
	g.Assert(t, "logger_pretty", buf.Bytes())
}

func TestLogger_JSON(t *testing.T) {
	buf := &bytes.Buffer{}
	l := logger.New()
	l.SetOutput(buf)
	l.SetFormat(domain.LogFormatJSON)

	l.Error(zerr.With(domain.Wrap(domain.ErrStaleDataset, nil), "path", "/tmp/input-9.dat"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "ERROR", record["level"])
	assert.Equal(t, "operation failed", record["msg"])
	assert.Equal(t, "environment", record["kind"])
	assert.Equal(t, domain.ErrStaleDataset.Error(), record["error"])
	assert.Equal(t, map[string]any{"path": "/tmp/input-9.dat"}, record["metadata"])
}

func TestLogger_ErrorNil(t *testing.T) {
	buf := &bytes.Buffer{}
	l := logger.New()
	l.SetOutput(buf)

	l.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_SwitchBackToPretty(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	l := logger.New()
	l.SetJSON(true)
	l.SetOutput(buf)
	l.SetFormat(domain.LogFormatPretty)

	l.Info("plain")
	assert.Equal(t, "plain\n", buf.String())
}

func TestPrettyHandler_Attrs(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	handler := logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo})
	lg := slog.New(handler).With("run", "abc").WithGroup("fixture")

	lg.Info("cache hit", "n", 100)
	lg.Debug("filtered")

	assert.Equal(t, "cache hit run=abc n=100\n", buf.String())
}

func TestPrettyHandler_KindTag(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := slog.New(logger.NewPrettyHandler(buf, nil))

	lg.Warn("lock lost", "kind", "environment", "path", "/tmp/x.lock")
	lg.Info("untagged")

	assert.Equal(t, "! [environment] lock lost path=/tmp/x.lock\nuntagged\n", buf.String())
}
