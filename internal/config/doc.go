// Package config loads runtime configuration for pwkeeper.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-i int      default PBKDF2 iteration count for new credentials
//	-m int      minimum PBKDF2 iteration count accepted for new credentials
//	-s string   storage backend: memory, sqlite or postgres
//	-d string   PostgreSQL DSN
//	-f string   SQLite database file
//	-t int      target derivation cost for the bench command (milliseconds)
//	-l string   log level: debug, info, warn or error
//
// # JSON schema
//
// Durations use timex.Duration, so they may be strings like "100ms" or
// integer nanoseconds. Fields that are absent keep their earlier value:
//
//	{
//	  "iterations": 200000,
//	  "min_iterations": 100000,
//	  "salt_length": 32,
//	  "hash_length": 32,
//	  "storage_backend": "sqlite",
//	  "database_dsn": "postgres://...",
//	  "sqlite_path": "data/pwkeeper.db",
//	  "bench_target": "100ms",
//	  "log_level": "info",
//	  "log_format": "text"
//	}
package config
