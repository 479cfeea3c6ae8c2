// Package config loads runtime configuration for the MedMate CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. A .env file in the working directory, then MEDMATE_* environment
//     variables (see parseEnv).
//  3. Optional JSON file selected with -c or -config (see parseJson).
//  4. Command-line flags (see parseFlags).
//
// Later sources override earlier ones; empty values never override.
//
// Supported flags
//
//	-d string            data directory
//	-storage string      snapshot backend: sqlite, redis or memory
//	-redis string        redis address (host:port)
//	-latency duration    simulated latency for session operations
//	-l string            log level
//	-log-backend string  slog or zap
//
// # JSON schema
//
//	{
//	  "data_dir": ".medmate",
//	  "database_file": "session.db",
//	  "storage_backend": "sqlite",
//	  "redis_addr": "127.0.0.1:6379",
//	  "simulated_latency": "500ms",
//	  "log_backend": "slog",
//	  "log_level": "info"
//	}
package config
