package config

import (
	"flag"
	"os"

	"github.com/medmate/medmate/internal/flagx"
)

// parseFlags populates cfg from the command line. Only the flags listed here
// are looked at; everything else in os.Args is ignored.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-storage", "-redis", "-latency", "-l", "-log-backend"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "data directory")
	fs.StringVar(&cfg.StorageBackend, "storage", cfg.StorageBackend, "snapshot storage: sqlite, redis or memory")
	fs.StringVar(&cfg.RedisAddr, "redis", cfg.RedisAddr, "redis address")
	fs.DurationVar(&cfg.SimulatedLatency, "latency", cfg.SimulatedLatency, "simulated latency for session operations")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogBackend, "log-backend", cfg.LogBackend, "log backend: slog or zap")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
