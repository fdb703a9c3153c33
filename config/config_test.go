package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestFromLookup_Defaults(t *testing.T) {
	cfg, err := FromLookup(lookupFrom(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestFromLookup_Overrides(t *testing.T) {
	cfg, err := FromLookup(lookupFrom(map[string]string{
		"VALUATION_ADDR":      ":9090",
		"REDIS_ADDR":          "localhost:6379",
		"CACHE_TTL":           "30m",
		"RATE_LIMIT_CAPACITY": "20",
		"RATE_LIMIT_WINDOW":   "10s",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := Config{
		Addr:              ":9090",
		RedisAddr:         "localhost:6379",
		CacheTTL:          30 * time.Minute,
		RateLimitCapacity: 20,
		RateLimitWindow:   10 * time.Second,
	}
	if cfg != want {
		t.Errorf("got %+v, want %+v", cfg, want)
	}
}

func TestFromLookup_Invalid(t *testing.T) {
	cases := []map[string]string{
		{"CACHE_TTL": "soon"},
		{"CACHE_TTL": "-1h"},
		{"RATE_LIMIT_CAPACITY": "0"},
		{"RATE_LIMIT_CAPACITY": "many"},
		{"RATE_LIMIT_WINDOW": "0s"},
	}

	for _, env := range cases {
		if _, err := FromLookup(lookupFrom(env)); err == nil {
			t.Errorf("expected error for %v", env)
		}
	}
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("RATE_LIMIT_CAPACITY=7\n"), 0o600); err != nil {
		t.Fatalf("writing .env: %v", err)
	}

	// godotenv never overrides variables that are already set
	t.Setenv("RATE_LIMIT_CAPACITY", "")
	os.Unsetenv("RATE_LIMIT_CAPACITY")

	cfg, err := Load(path, filepath.Join(dir, "missing.env"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.RateLimitCapacity != 7 {
		t.Errorf("expected capacity 7 from .env, got %d", cfg.RateLimitCapacity)
	}
}
