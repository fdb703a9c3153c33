package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr              string
	RedisAddr         string // empty selects the in-memory cache
	CacheTTL          time.Duration
	RateLimitCapacity int
	RateLimitWindow   time.Duration
}

func Default() Config {
	return Config{
		Addr:              ":8080",
		CacheTTL:          24 * time.Hour,
		RateLimitCapacity: 5,
		RateLimitWindow:   time.Minute,
	}
}

// Load reads the given .env files (a missing file is not an error) and then
// overlays the process environment on the defaults.
func Load(envFiles ...string) (Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", f, err)
		}
	}
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from an environment lookup function.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if v, ok := lookup("VALUATION_ADDR"); ok && v != "" {
		cfg.Addr = v
	}
	if v, ok := lookup("REDIS_ADDR"); ok {
		cfg.RedisAddr = v
	}

	if v, ok := lookup("CACHE_TTL"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d < 0 {
			return Config{}, fmt.Errorf("CACHE_TTL: invalid duration %q", v)
		}
		cfg.CacheTTL = d
	}

	if v, ok := lookup("RATE_LIMIT_CAPACITY"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("RATE_LIMIT_CAPACITY: must be a positive integer, got %q", v)
		}
		cfg.RateLimitCapacity = n
	}

	if v, ok := lookup("RATE_LIMIT_WINDOW"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("RATE_LIMIT_WINDOW: invalid duration %q", v)
		}
		cfg.RateLimitWindow = d
	}

	return cfg, nil
}
