package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/bookshelf/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-s", "-d", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "base URL of the backend")
	fs.StringVar(&cfg.StoragePath, "s", cfg.StoragePath, "session storage file")
	fs.StringVar(&cfg.StorageDriver, "d", cfg.StorageDriver, "storage driver (sqlite or bolt)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
