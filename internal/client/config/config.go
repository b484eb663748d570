package config

import "time"

// Config holds runtime settings for the Inkveil CLI.
//
// Fields:
//   - ServiceEndpointURL: base URL of the redaction service.
//   - HealthCheckInterval: how often the client probes service reachability.
//   - HealthCheckTimeout: per-probe deadline for health checks.
//   - RequestTimeout: deadline for ordinary HTTP calls (batch submission is
//     intentionally unbounded).
//   - DownloadsDir: fallback directory for downloaded artifacts.
//   - DatabaseDSN: SQLite DSN for local settings and run history.
type Config struct {
	ServiceEndpointURL  string
	DownloadsDir        string
	DatabaseDSN         string
	HealthCheckInterval time.Duration
	HealthCheckTimeout  time.Duration
	RequestTimeout      time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServiceEndpointURL = "http://localhost:5000"
	c.DownloadsDir = "downloads"
	c.DatabaseDSN = "inkveil.db"
	c.HealthCheckInterval = 30 * time.Second
	c.HealthCheckTimeout = 5 * time.Second
	c.RequestTimeout = 30 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
