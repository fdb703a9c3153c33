package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

type MockRedisClient struct {
	Data   map[string]string
	TTLs   map[string]time.Duration
	GetErr error
	SetErr error
	Closed bool
}

func newMockRedisClient() *MockRedisClient {
	return &MockRedisClient{
		Data: map[string]string{},
		TTLs: map[string]time.Duration{},
	}
}

func (m *MockRedisClient) Get(_ context.Context, key string) *redis.StringCmd {
	if m.GetErr != nil {
		return redis.NewStringResult("", m.GetErr)
	}
	val, ok := m.Data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(val, nil)
}

func (m *MockRedisClient) Set(_ context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	if m.SetErr != nil {
		return redis.NewStatusResult("", m.SetErr)
	}
	m.Data[key] = value.(string)
	m.TTLs[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (m *MockRedisClient) Ping(_ context.Context) *redis.StatusCmd {
	return redis.NewStatusResult("PONG", nil)
}

func (m *MockRedisClient) Close() error {
	m.Closed = true
	return nil
}

func TestRedisCache_SetUsesPrefixAndTTL(t *testing.T) {
	ctx := context.Background()
	client := newMockRedisClient()
	cache := newRedisCache(client, time.Hour)

	if err := cache.Set(ctx, "300|1|10", `{"fees":[]}`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := client.Data["valuation:300|1|10"]; got != `{"fees":[]}` {
		t.Errorf("expected value under prefixed key, got %q", got)
	}
	if client.TTLs["valuation:300|1|10"] != time.Hour {
		t.Errorf("expected 1h TTL, got %v", client.TTLs["valuation:300|1|10"])
	}

	val, ok := cache.Get(ctx, "300|1|10")
	if !ok || val != `{"fees":[]}` {
		t.Errorf("expected hit, got %q (ok=%v)", val, ok)
	}
}

func TestRedisCache_MissIsNotAnError(t *testing.T) {
	cache := newRedisCache(newMockRedisClient(), 0)

	if _, ok := cache.Get(context.Background(), "missing"); ok {
		t.Errorf("expected miss")
	}
}

func TestRedisCache_ConnectionErrors(t *testing.T) {
	ctx := context.Background()
	client := newMockRedisClient()
	client.Data["valuation:k"] = "v"
	client.GetErr = errors.New("connection refused")
	client.SetErr = errors.New("connection refused")
	cache := newRedisCache(client, time.Minute)

	if _, ok := cache.Get(ctx, "k"); ok {
		t.Errorf("expected miss when redis is down")
	}
	if err := cache.Set(ctx, "k", "v"); err == nil {
		t.Errorf("expected Set to report the redis error")
	}
}

func TestRedisCache_PingAndClose(t *testing.T) {
	client := newMockRedisClient()
	cache := newRedisCache(client, time.Minute)

	if err := cache.Ping(context.Background()); err != nil {
		t.Errorf("unexpected ping error: %v", err)
	}
	if err := cache.Close(); err != nil || !client.Closed {
		t.Errorf("expected client to be closed")
	}
}
