package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/bookshelf/internal/flagx"
	"github.com/dmitrijs2005/bookshelf/internal/timex"
)

// JsonConfig is the on-disk shape of the server config. Only fields that are
// present in the file override earlier values.
type JsonConfig struct {
	Addr      string          `json:"addr"`
	BasePath  *string         `json:"base_path"`
	SecretKey string          `json:"secret_key"`
	TokenTTL  *timex.Duration `json:"token_ttl"`
	LogLevel  string          `json:"log_level"`
}

// parseJson overlays Config with values from the file given by -c/-config.
// It panics on read or unmarshal errors.
func parseJson(cfg *Config) {
	path := flagx.ConfigFileFlag(os.Args[1:])
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.Addr != "" {
		cfg.Addr = jc.Addr
	}
	if jc.BasePath != nil {
		cfg.BasePath = *jc.BasePath
	}
	if jc.SecretKey != "" {
		cfg.SecretKey = jc.SecretKey
	}
	if jc.TokenTTL != nil {
		cfg.TokenTTL = jc.TokenTTL.Duration
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
