// Package config loads runtime configuration for the bookshelf CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend (e.g. http://127.0.0.1:8080/api)
//	-s string   path of the local session storage file
//	-d string   storage driver: sqlite or bolt
//	-l string   log level
//
// # JSON schema
//
// Timeouts use timex.Duration, so values can be either strings like "5s" or
// integer nanoseconds. Absent keys keep their earlier value:
//
//	{
//	  "server_url": "http://127.0.0.1:8080/api",
//	  "storage_path": "bookshelf.db",
//	  "storage_driver": "sqlite",
//	  "log_level": "warn",
//	  "timeouts": {"auth": "5s", "profile": "10s", "default": "10s", "bulk": "30s"}
//	}
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
