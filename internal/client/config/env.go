package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv loads envFile (when it exists) into the process environment and
// then overlays MEDMATE_* variables onto cfg. Variables already set in the
// environment win over the file, as godotenv.Load does not override them.
// Panics on an unreadable file or a malformed duration.
func parseEnv(cfg *Config, envFile string) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			panic(err)
		}
	}

	setString(&cfg.DataDir, "MEDMATE_DATA_DIR")
	setString(&cfg.DatabaseFile, "MEDMATE_DB_FILE")
	setString(&cfg.StorageBackend, "MEDMATE_STORAGE")
	setString(&cfg.RedisAddr, "MEDMATE_REDIS_ADDR")
	setString(&cfg.LogBackend, "MEDMATE_LOG_BACKEND")
	setString(&cfg.LogLevel, "MEDMATE_LOG_LEVEL")

	if v := os.Getenv("MEDMATE_LATENCY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		cfg.SimulatedLatency = d
	}
}

func setString(dst *string, name string) {
	if v := os.Getenv(name); v != "" {
		*dst = v
	}
}
