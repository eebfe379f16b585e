package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/bookshelf/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-b string   base path of the API (e.g., "/api")
//	-s string   JWT HMAC secret key
//	-t int      token validity, minutes
//	-l string   log level
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-b", "-s", "-t", "-l"})

	fs := flag.NewFlagSet("server", flag.ContinueOnError)

	fs.StringVar(&config.Addr, "a", config.Addr, "address and port to run server")
	fs.StringVar(&config.BasePath, "b", config.BasePath, "base path of the API")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	ttl := fs.Int("t", int(config.TokenTTL.Minutes()), "token validity (in minutes)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.TokenTTL = time.Duration(*ttl) * time.Minute
}
