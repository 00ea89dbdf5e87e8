package profiler

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrymomot/profiler/pkg/ratelimiter"
)

// Config holds the limits of the profiler module.
type Config struct {
	Workers      int           `env:"PROFILER_WORKERS" envDefault:"2"`
	Timeout      time.Duration `env:"PROFILER_TIMEOUT" envDefault:"30s"`
	PreviewSize  int           `env:"PROFILER_PREVIEW_SIZE" envDefault:"50"`
	MaxLenLimit  int           `env:"PROFILER_MAX_LEN_LIMIT" envDefault:"64"`
	MaxSeedWords int           `env:"PROFILER_MAX_SEED_WORDS" envDefault:"200"`
	CacheSize    int           `env:"PROFILER_CACHE_SIZE" envDefault:"8"`
	HistoryLimit int           `env:"PROFILER_HISTORY_LIMIT" envDefault:"100"`

	// Results with more words than CacheMaxWords are returned but not cached.
	CacheMaxWords int `env:"PROFILER_CACHE_MAX_WORDS" envDefault:"250000"`

	RateCapacity int           `env:"PROFILER_RATE_CAPACITY" envDefault:"10"`
	RateRefill   int           `env:"PROFILER_RATE_REFILL" envDefault:"1"`
	RateInterval time.Duration `env:"PROFILER_RATE_INTERVAL" envDefault:"6s"`
}

// DefaultConfig mirrors the envDefault values.
func DefaultConfig() Config {
	return Config{
		Workers:       2,
		Timeout:       30 * time.Second,
		PreviewSize:   50,
		MaxLenLimit:   64,
		MaxSeedWords:  200,
		CacheSize:     8,
		CacheMaxWords: 250000,
		HistoryLimit:  100,
		RateCapacity:  10,
		RateRefill:    1,
		RateInterval:  6 * time.Second,
	}
}

// Validate implements config.Validator.
func (c Config) Validate() error {
	var errs []error
	positive := func(name string, v int64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", name, v))
		}
	}
	positive("PROFILER_WORKERS", int64(c.Workers))
	positive("PROFILER_TIMEOUT", int64(c.Timeout))
	positive("PROFILER_MAX_LEN_LIMIT", int64(c.MaxLenLimit))
	positive("PROFILER_MAX_SEED_WORDS", int64(c.MaxSeedWords))
	positive("PROFILER_CACHE_SIZE", int64(c.CacheSize))
	positive("PROFILER_CACHE_MAX_WORDS", int64(c.CacheMaxWords))
	positive("PROFILER_HISTORY_LIMIT", int64(c.HistoryLimit))
	if c.PreviewSize < 0 {
		errs = append(errs, fmt.Errorf("PROFILER_PREVIEW_SIZE must not be negative, got %d", c.PreviewSize))
	}
	if err := c.RateLimit().Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// RateLimit returns the token bucket settings for the generate routes.
func (c Config) RateLimit() ratelimiter.Config {
	return ratelimiter.Config{
		Capacity:       c.RateCapacity,
		RefillRate:     c.RateRefill,
		RefillInterval: c.RateInterval,
	}
}
