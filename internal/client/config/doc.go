// Package config loads runtime configuration for the Inkveil CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-e string   base URL of the redaction service
//	-i int      health check interval (seconds)
//	-d string   fallback downloads directory
//	-s string   SQLite DSN for local state
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "30s" or integer nanoseconds:
//
//	{
//	  "service_endpoint_url": "http://localhost:5000",
//	  "health_check_interval": "30s",
//	  "health_check_timeout": "5s",
//	  "request_timeout": "30s",
//	  "downloads_dir": "downloads",
//	  "database_dsn": "inkveil.db"
//	}
//
// Primary API
//
//   - type Config                     — holds endpoint, timing, and storage settings
//   - func LoadConfig() *Config       — builds Config by applying defaults, JSON, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
