package config

import (
	"flag"
	"os"

	"github.com/avdeevm/storyhub/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the story-sharing service (default from Config)
//	-d string   path/DSN of the local session database (default from Config)
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.BaseURL, "a", cfg.BaseURL, "base URL of the story service")
	fs.StringVar(&cfg.SessionDSN, "d", cfg.SessionDSN, "path to the local session database")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
