package config

import (
	"flag"
	"os"
	"time"

	"github.com/inkveil/inkveil/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-e string   base URL of the redaction service (default from Config)
//	-i int      health check interval in seconds (default from Config)
//	-d string   fallback downloads directory (default from Config)
//	-s string   SQLite DSN for local state (default from Config)
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-e", "-i", "-d", "-s"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServiceEndpointURL, "e", cfg.ServiceEndpointURL, "base URL of the redaction service")
	healthCheckInterval := fs.Int("i", int(cfg.HealthCheckInterval.Seconds()), "health check interval (in seconds)")
	fs.StringVar(&cfg.DownloadsDir, "d", cfg.DownloadsDir, "fallback downloads directory")
	fs.StringVar(&cfg.DatabaseDSN, "s", cfg.DatabaseDSN, "SQLite DSN for local state")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.HealthCheckInterval = time.Duration(*healthCheckInterval) * time.Second
}
