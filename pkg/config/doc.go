// Package config loads configuration structs from environment variables.
//
// Load parses `env` struct tags via caarlos0/env after a best-effort load
// of the default .env file. Each distinct struct type is parsed once per
// process; later calls return the cached value, so every component sees
// the same configuration.
//
// # Usage
//
//	var cfg tokencache.Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatal(err)
//	}
package config
