// Package config loads typed configuration from environment variables.
//
// A .env file in the working directory is read once, if present, before the
// first load. Each configuration type is parsed once and cached:
//
//	type Config struct {
//		Workers int           `env:"PROFILER_WORKERS" envDefault:"2"`
//		Timeout time.Duration `env:"PROFILER_TIMEOUT" envDefault:"30s"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil { ... }
//
// Types implementing Validator are checked after parsing; a failing
// Validate is returned wrapped in ErrInvalidConfig and nothing is cached.
package config
