// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv (optional .env files) and
// github.com/caarlos0/env/v11 (struct tag parsing). Every package that needs
// settings declares its own struct with env and envDefault tags; the command
// wiring loads them with Load, which parses each type once and caches it for
// the rest of the process.
//
//	var cfg httpserver.Config
//	config.MustLoad(&cfg)
//
// Parse skips the cache and accepts explicit env files, which keeps tests
// independent of each other.
package config
