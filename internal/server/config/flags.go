package config

import (
	"flag"
	"os"

	"github.com/inkveil/inkveil/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":5000")
//	-m int      multipart body cap, megabytes
//	-v          verbose request logging
//
// Note: The function first filters os.Args to only the flags it recognizes
// using flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	// Filter args to include only the flags handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-m", "-v"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	maxUploadMB := fs.Int64("m", config.MaxUploadBytes>>20, "multipart body cap (in megabytes)")
	fs.BoolVar(&config.Debug, "v", config.Debug, "verbose request logging")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.MaxUploadBytes = *maxUploadMB << 20
}
