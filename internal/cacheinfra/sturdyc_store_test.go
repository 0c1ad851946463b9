package cacheinfra

import (
	"context"
	"testing"
	"time"
)

func newTestStore(t *testing.T, cfg Config) *sturdycStore {
	t.Helper()

	store, err := NewSturdycStore(cfg)
	if err != nil {
		t.Fatalf("failed to build store: %v", err)
	}
	return store
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults are valid", mutate: func(*Config) {}},
		{name: "zero capacity", mutate: func(c *Config) { c.Capacity = 0 }, wantErr: true},
		{name: "zero shards", mutate: func(c *Config) { c.NumShards = 0 }, wantErr: true},
		{name: "zero ttl", mutate: func(c *Config) { c.TTL = 0 }, wantErr: true},
		{name: "eviction percentage too low", mutate: func(c *Config) { c.EvictionPercentage = 0 }, wantErr: true},
		{name: "eviction percentage too high", mutate: func(c *Config) { c.EvictionPercentage = 101 }, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr && err == nil {
				t.Fatal("expected a validation error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestNewSturdycStore_RejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Capacity = -1

	if _, err := NewSturdycStore(cfg); err == nil {
		t.Fatal("expected constructor to reject invalid config")
	}
}

func TestSturdycStore_RoundTrip(t *testing.T) {
	store := newTestStore(t, DefaultConfig())
	ctx := context.Background()

	type payload struct{ N int }

	if err := store.Set(ctx, "k", payload{N: 42}, time.Minute); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	v, ok, err := store.Get(ctx, "k")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected a hit")
	}
	got, ok := v.(payload)
	if !ok {
		t.Fatalf("value type lost through the store: %T", v)
	}
	if got.N != 42 {
		t.Fatalf("expected 42, got %d", got.N)
	}
}

func TestSturdycStore_MissOnUnknownKey(t *testing.T) {
	store := newTestStore(t, DefaultConfig())

	_, ok, err := store.Get(context.Background(), "missing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("expected a miss")
	}
}

func TestSturdycStore_PerEntryTTLExpiry(t *testing.T) {
	store := newTestStore(t, DefaultConfig())
	ctx := context.Background()

	if err := store.Set(ctx, "short", "v", 30*time.Millisecond); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok, _ := store.Get(ctx, "short"); !ok {
		t.Fatal("expected a hit before expiry")
	}

	time.Sleep(60 * time.Millisecond)

	if _, ok, _ := store.Get(ctx, "short"); ok {
		t.Fatal("expected entry to expire after its own TTL")
	}
}

func TestSturdycStore_TTLClampedToDefault(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TTL = 40 * time.Millisecond
	store := newTestStore(t, cfg)
	ctx := context.Background()

	// Requested TTL exceeds the client-wide maximum; the entry must still be
	// gone once the default TTL elapses.
	if err := store.Set(ctx, "clamped", "v", time.Hour); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	time.Sleep(80 * time.Millisecond)

	if _, ok, _ := store.Get(ctx, "clamped"); ok {
		t.Fatal("expected entry to honor the clamped TTL")
	}
}

func TestSturdycStore_Delete(t *testing.T) {
	store := newTestStore(t, DefaultConfig())
	ctx := context.Background()

	if err := store.Set(ctx, "k", "v", time.Minute); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.Delete(ctx, "k"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok, _ := store.Get(ctx, "k"); ok {
		t.Fatal("expected deleted entry to miss")
	}
}

func TestSturdycStore_DeleteByPrefix(t *testing.T) {
	store := newTestStore(t, DefaultConfig())
	ctx := context.Background()

	for _, key := range []string{"users_10_0", "users_10_10", "teams_1_0"} {
		if err := store.Set(ctx, key, "v", time.Minute); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if err := store.DeleteByPrefix(ctx, "users_"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok, _ := store.Get(ctx, "users_10_0"); ok {
		t.Fatal("expected users_10_0 to be invalidated")
	}
	if _, ok, _ := store.Get(ctx, "users_10_10"); ok {
		t.Fatal("expected users_10_10 to be invalidated")
	}
	if _, ok, _ := store.Get(ctx, "teams_1_0"); !ok {
		t.Fatal("expected teams_1_0 to survive")
	}
}
