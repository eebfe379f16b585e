package config

import "github.com/dmitrijs2005/bookshelf/internal/client/client"

// Config holds runtime settings for the bookshelf CLI.
//
// Fields:
//   - ServerURL: base URL of the REST backend, including any path prefix.
//   - StoragePath: file the session token is persisted in.
//   - StorageDriver: "sqlite" or "bolt".
//   - Timeouts: request deadlines by category.
//   - LogLevel: debug, info, warn or error. Logs go to stderr.
type Config struct {
	ServerURL     string
	StoragePath   string
	StorageDriver string
	Timeouts      client.Timeouts
	LogLevel      string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:8080/api"
	c.StoragePath = "bookshelf.db"
	c.StorageDriver = "sqlite"
	c.Timeouts = client.DefaultTimeouts()
	c.LogLevel = "warn"
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
