// Package config loads environment-driven configuration structs.
//
// It combines github.com/joho/godotenv, which reads an optional .env file, with
// github.com/caarlos0/env, which binds variables to struct fields through
// `env` and `envDefault` tags. Every package in devicekit exposes such a struct
// (device.Config, preference.Config, cookie.Config, redis.Config).
//
// Load parses each config type once per process and hands out copies of the
// cached value, so packages can call it independently without re-reading the
// environment. LoadFiles is the uncached variant for explicit dotenv files and
// for tests.
//
//	var cfg device.Config
//	config.MustLoad(&cfg)
package config
