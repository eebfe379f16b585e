package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"addr":       "www.example:9000",
		"base_path":  "",
		"secret_key": "my_secret_key",
		"token_ttl":  "1h",
		"log_level":  "debug",
	})

	t.Run("loads from json", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", pathFlag}

		cfg := &Config{BasePath: "/api"}
		parseJson(cfg)

		assert.Equal(t, "www.example:9000", cfg.Addr)
		assert.Equal(t, "", cfg.BasePath)
		assert.Equal(t, "my_secret_key", cfg.SecretKey)
		assert.Equal(t, time.Hour, cfg.TokenTTL)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("short flag", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", pathFlag}

		cfg := &Config{}
		parseJson(cfg)

		assert.Equal(t, "www.example:9000", cfg.Addr)
	})

	t.Run("no config file leaves values alone", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{Addr: "defaults:1234", BasePath: "/api", SecretKey: "key", TokenTTL: 2 * time.Minute}
		parseJson(cfg)

		assert.Equal(t, "defaults:1234", cfg.Addr)
		assert.Equal(t, "/api", cfg.BasePath)
		assert.Equal(t, "key", cfg.SecretKey)
		assert.Equal(t, 2*time.Minute, cfg.TokenTTL)
	})

	t.Run("invalid JSON panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		os.Args = []string{"testbin", "-config", bad}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})
}
