package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/bookshelf/internal/flagx"
	"github.com/dmitrijs2005/bookshelf/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields distinguish "absent" from "zero".
type JsonConfig struct {
	ServerURL     string        `json:"server_url"`
	StoragePath   string        `json:"storage_path"`
	StorageDriver string        `json:"storage_driver"`
	LogLevel      string        `json:"log_level"`
	Timeouts      *JsonTimeouts `json:"timeouts"`
}

type JsonTimeouts struct {
	Auth    *timex.Duration `json:"auth"`
	Profile *timex.Duration `json:"profile"`
	Default *timex.Duration `json:"default"`
	Bulk    *timex.Duration `json:"bulk"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c or -config. Nothing happens when neither flag is given.
// Panics on read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFileFlag(os.Args[1:])
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerURL != "" {
		cfg.ServerURL = jc.ServerURL
	}
	if jc.StoragePath != "" {
		cfg.StoragePath = jc.StoragePath
	}
	if jc.StorageDriver != "" {
		cfg.StorageDriver = jc.StorageDriver
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if t := jc.Timeouts; t != nil {
		overlay(&cfg.Timeouts.Auth, t.Auth)
		overlay(&cfg.Timeouts.Profile, t.Profile)
		overlay(&cfg.Timeouts.Default, t.Default)
		overlay(&cfg.Timeouts.Bulk, t.Bulk)
	}
}

func overlay(dst *time.Duration, src *timex.Duration) {
	if src != nil {
		*dst = src.Duration
	}
}
