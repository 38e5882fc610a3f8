package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "sqlite", c.StoreDriver)
	assert.Equal(t, "data", c.DataDir)
	assert.Equal(t, "pocketauth.db", c.StoreFile)
	assert.Equal(t, "redis://127.0.0.1:6379/0", c.RedisURL)
	assert.Equal(t, "pocketauth:", c.RedisKeyPrefix)
	assert.Equal(t, "en", c.Lang)
	assert.Equal(t, "info", c.LogLevel)
}

func TestLoadConfig_NoArgsGivesDefaults(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"pocketauth"}

	cfg := LoadConfig()
	require.NotNil(t, cfg)

	var want Config
	want.LoadDefaults()
	assert.Equal(t, want, *cfg)
}

func TestLoad_FlagsOverrideJSON(t *testing.T) {
	path := writeTempJSON(t, map[string]any{
		"store_driver": "redis",
		"lang":         "ru",
	})

	cfg := load([]string{"-c", path, "-l", "en"})

	assert.Equal(t, "redis", cfg.StoreDriver)
	assert.Equal(t, "en", cfg.Lang)
	assert.Equal(t, "data", cfg.DataDir)
}
