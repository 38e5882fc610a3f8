// Package config loads runtime configuration for the pocketauth client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-s string   store driver: sqlite, memory or redis
//	-d string   data directory for the SQLite file
//	-f string   SQLite file name inside the data directory
//	-r string   Redis URL (redis driver only)
//	-p string   Redis key prefix
//	-l string   interface language (en, ru)
//	-v string   log level (debug, info, warn, error)
//
// # JSON schema
//
//	{
//	  "store_driver": "sqlite",
//	  "data_dir": "data",
//	  "store_file": "pocketauth.db",
//	  "redis_url": "redis://127.0.0.1:6379/0",
//	  "redis_key_prefix": "pocketauth:",
//	  "lang": "en",
//	  "log_level": "info"
//	}
//
// Keys missing from the JSON file keep their default. Environment variables
// are not consulted.
package config
