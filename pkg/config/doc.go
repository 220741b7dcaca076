// Package config loads configuration structs from environment variables.
//
// It wraps github.com/joho/godotenv (reading .env files) and
// github.com/caarlos0/env/v11 (parsing the environment into tagged structs)
// and caches each parsed configuration type for the lifetime of the process.
//
// # Usage
//
//	type Config struct {
//		LogLevel  string `env:"VALIDATOR_LOG_LEVEL" envDefault:"info"`
//		LogFormat string `env:"VALIDATOR_LOG_FORMAT" envDefault:"json"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
// Use LoadEnv to pull in additional .env files before the first Load, and
// ResetCache in tests that need to observe changed environment values.
package config
