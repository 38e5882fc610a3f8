package config

import "os"

// Config holds runtime settings for the pocketauth client.
type Config struct {
	StoreDriver    string
	DataDir        string
	StoreFile      string
	RedisURL       string
	RedisKeyPrefix string
	Lang           string
	LogLevel       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.StoreDriver = "sqlite"
	c.DataDir = "data"
	c.StoreFile = "pocketauth.db"
	c.RedisURL = "redis://127.0.0.1:6379/0"
	c.RedisKeyPrefix = "pocketauth:"
	c.Lang = "en"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config from defaults, then the JSON file (if any),
// then command-line flags. It panics on an unreadable config file or bad
// flags.
func LoadConfig() *Config {
	return load(os.Args[1:])
}

func load(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
