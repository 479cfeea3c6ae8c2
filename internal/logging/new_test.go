package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_SlogDefaultBackend(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Level: "warn", Output: &buf})
	require.NoError(t, err)
	require.IsType(t, &SlogLogger{}, log)

	log.Info(context.Background(), "dropped")
	log.Warn(context.Background(), "kept")

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, "msg=kept")
}

func TestNew_ZapWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Backend: "zap", Level: "debug", Output: &buf})
	require.NoError(t, err)
	require.IsType(t, &ZapLogger{}, log)

	log.Debug(context.Background(), "restored", "state", "unauthenticated")

	line := strings.TrimSpace(buf.String())
	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &rec))
	assert.Equal(t, "restored", rec["message"])
	assert.Equal(t, "debug", rec["level"])
	assert.Equal(t, "unauthenticated", rec["state"])
}

func TestNew_UnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Backend: "slog", Level: "chatty", Output: &buf})
	require.NoError(t, err)

	log.Debug(context.Background(), "hidden")
	log.Info(context.Background(), "shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNew_UnknownBackend(t *testing.T) {
	_, err := New(Options{Backend: "logrus"})
	require.Error(t, err)
}
