package config

import (
	"fmt"
	"time"
)

const (
	StorageSQLite = "sqlite"
	StorageRedis  = "redis"
	StorageMemory = "memory"
)

// Config holds runtime settings for the MedMate CLI.
type Config struct {
	DataDir          string
	DatabaseFile     string
	StorageBackend   string
	RedisAddr        string
	SimulatedLatency time.Duration
	LogBackend       string
	LogLevel         string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DataDir = ".medmate"
	c.DatabaseFile = "session.db"
	c.StorageBackend = StorageSQLite
	c.RedisAddr = "127.0.0.1:6379"
	c.SimulatedLatency = 0
	c.LogBackend = "slog"
	c.LogLevel = "info"
}

// Validate rejects settings the application cannot start with.
func (c *Config) Validate() error {
	switch c.StorageBackend {
	case StorageSQLite, StorageRedis, StorageMemory:
	default:
		return fmt.Errorf("unknown storage backend %q", c.StorageBackend)
	}
	if c.SimulatedLatency < 0 {
		return fmt.Errorf("simulated latency must not be negative, got %s", c.SimulatedLatency)
	}
	return nil
}

// LoadConfig builds a Config from defaults, the environment, an optional
// JSON file and flags, in that order.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg, ".env")
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
