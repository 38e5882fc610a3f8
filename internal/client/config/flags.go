package config

import (
	"flag"

	"github.com/dmitrijs2005/pocketauth/internal/flagx"
)

var knownFlags = []string{"-s", "-d", "-f", "-r", "-p", "-l", "-v"}

// parseFlags overlays cfg with command-line flags. Only the flags listed in
// knownFlags are looked at, so -c/-config and anything else pass through.
func parseFlags(cfg *Config, args []string) {
	fs := flag.NewFlagSet("pocketauth", flag.ContinueOnError)

	fs.StringVar(&cfg.StoreDriver, "s", cfg.StoreDriver, "store driver: sqlite, memory or redis")
	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "data directory for the sqlite file")
	fs.StringVar(&cfg.StoreFile, "f", cfg.StoreFile, "sqlite file name")
	fs.StringVar(&cfg.RedisURL, "r", cfg.RedisURL, "redis URL")
	fs.StringVar(&cfg.RedisKeyPrefix, "p", cfg.RedisKeyPrefix, "redis key prefix")
	fs.StringVar(&cfg.Lang, "l", cfg.Lang, "interface language")
	fs.StringVar(&cfg.LogLevel, "v", cfg.LogLevel, "log level")

	if err := fs.Parse(flagx.FilterArgs(args, knownFlags)); err != nil {
		panic(err)
	}
}
