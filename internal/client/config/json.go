package config

import (
	"encoding/json"
	"os"

	"github.com/medmate/medmate/internal/flagx"
	"github.com/medmate/medmate/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Latency goes
// through timex.Duration so it may be written as "500ms" or as nanoseconds.
type JsonConfig struct {
	DataDir          string          `json:"data_dir"`
	DatabaseFile     string          `json:"database_file"`
	StorageBackend   string          `json:"storage_backend"`
	RedisAddr        string          `json:"redis_addr"`
	SimulatedLatency *timex.Duration `json:"simulated_latency"`
	LogBackend       string          `json:"log_backend"`
	LogLevel         string          `json:"log_level"`
}

// parseJson overlays cfg with the file named by -c/-config, if any. Fields
// missing from the file leave cfg untouched. Panics on read or unmarshal
// errors.
func parseJson(cfg *Config) {
	path := flagx.JsonConfigFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}
	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	overlay(&cfg.DataDir, jc.DataDir)
	overlay(&cfg.DatabaseFile, jc.DatabaseFile)
	overlay(&cfg.StorageBackend, jc.StorageBackend)
	overlay(&cfg.RedisAddr, jc.RedisAddr)
	overlay(&cfg.LogBackend, jc.LogBackend)
	overlay(&cfg.LogLevel, jc.LogLevel)
	if jc.SimulatedLatency != nil {
		cfg.SimulatedLatency = jc.SimulatedLatency.Duration
	}
}

func overlay(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
