package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/pocketauth/internal/flagx"
)

// JsonConfig is the on-disk form. Pointer fields tell "absent" from "empty"
// so that missing keys keep their defaults.
type JsonConfig struct {
	StoreDriver    *string `json:"store_driver"`
	DataDir        *string `json:"data_dir"`
	StoreFile      *string `json:"store_file"`
	RedisURL       *string `json:"redis_url"`
	RedisKeyPrefix *string `json:"redis_key_prefix"`
	Lang           *string `json:"lang"`
	LogLevel       *string `json:"log_level"`
}

// parseJson overlays cfg with the JSON file named by -c/-config, if any.
// It panics on read or unmarshal errors.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigPath(args)
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

	set(&cfg.StoreDriver, jc.StoreDriver)
	set(&cfg.DataDir, jc.DataDir)
	set(&cfg.StoreFile, jc.StoreFile)
	set(&cfg.RedisURL, jc.RedisURL)
	set(&cfg.RedisKeyPrefix, jc.RedisKeyPrefix)
	set(&cfg.Lang, jc.Lang)
	set(&cfg.LogLevel, jc.LogLevel)
}

func set(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
