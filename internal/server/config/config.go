// Package config handles configuration for the development redaction
// server, including defaults, JSON overlay, and command-line flags.
package config

// Config holds runtime settings for the development server.
//
// Fields:
//   - EndpointAddrHTTP: bind address for the HTTP endpoint.
//   - MaxUploadBytes: per-request cap on the multipart body.
//   - Debug: enables verbose request logging.
type Config struct {
	EndpointAddrHTTP string
	MaxUploadBytes   int64
	Debug            bool
}

// LoadDefaults populates Config with sensible development defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":5000"
	c.MaxUploadBytes = 256 << 20
	c.Debug = false
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
