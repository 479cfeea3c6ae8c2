package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "medmate.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("overlays present fields only", func(t *testing.T) {
		path := writeTempJSON(t, map[string]any{
			"storage_backend":   "redis",
			"redis_addr":        "cache:6379",
			"simulated_latency": "1s",
		})
		os.Args = []string{"medmate", "-config", path}

		var cfg Config
		cfg.LoadDefaults()
		parseJson(&cfg)

		assert.Equal(t, StorageRedis, cfg.StorageBackend)
		assert.Equal(t, "cache:6379", cfg.RedisAddr)
		assert.Equal(t, time.Second, cfg.SimulatedLatency)
		assert.Equal(t, "session.db", cfg.DatabaseFile)
	})

	t.Run("no file flag leaves config alone", func(t *testing.T) {
		os.Args = []string{"medmate"}

		cfg := Config{DataDir: "keep"}
		parseJson(&cfg)
		assert.Equal(t, "keep", cfg.DataDir)
	})

	t.Run("invalid JSON panics", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ nope`), 0o600))
		os.Args = []string{"medmate", "-c", bad}

		require.Panics(t, func() { parseJson(&Config{}) })
	})
}
