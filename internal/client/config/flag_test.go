package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		name        string
		args        []string
		expected    *Config
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"cmd", "-d", "/tmp/mm", "-storage", "memory", "-latency", "250ms", "-l", "debug", "-log-backend", "zap", "-redis", "r:1"},
			expected: &Config{
				DataDir: "/tmp/mm", StorageBackend: "memory", RedisAddr: "r:1",
				SimulatedLatency: 250 * time.Millisecond, LogBackend: "zap", LogLevel: "debug",
			},
		},
		{
			name:     "unrelated flags ignored",
			args:     []string{"cmd", "-c", "x.json", "-storage", "redis"},
			expected: &Config{StorageBackend: "redis"},
		},
		{
			name:        "bad latency",
			args:        []string{"cmd", "-latency", "soon"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args
			cfg := &Config{}

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(cfg) })
				return
			}
			require.NotPanics(t, func() { parseFlags(cfg) })
			assert.Empty(t, cmp.Diff(tt.expected, cfg))
		})
	}
}
