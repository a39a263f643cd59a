package config

import (
	"flag"
	"os"

	"github.com/voidvault/voidvault-cli/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the backend API (default from Config)
//	-u string   asset host endpoint prefix for media uploads
//	-d string   path of the local client-state database
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-u", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the backend API")
	fs.StringVar(&cfg.UploadHost, "u", cfg.UploadHost, "asset host for direct media uploads")
	fs.StringVar(&cfg.StateDBPath, "d", cfg.StateDBPath, "path of the client state database")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
