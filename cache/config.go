package cache

import (
	"time"

	"github.com/muhittincamdali/go-user-query/internal/cacheinfra"
)

// Config exposes cache configuration options for consumers of the cache package.
type Config struct {
	// Capacity is the maximum number of entries the store keeps.
	Capacity int
	// NumShards controls how many shards back the store. More shards improve
	// concurrent access at a small memory cost.
	NumShards int
	// TTL is the default and maximum entry lifetime. Per-entry TTLs passed to
	// Set are clamped to this value.
	TTL time.Duration
	// EvictionPercentage is the share of entries evicted when the store is
	// full, between 1 and 100.
	EvictionPercentage int
	// EvictionInterval sets how often expired entries are scanned. Zero uses
	// the backend default.
	EvictionInterval time.Duration
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() Config {
	return convertFromInternal(cacheinfra.DefaultConfig())
}

// Validate checks whether the configuration values are valid.
func (c Config) Validate() error {
	return c.toInternal().Validate()
}

// NewStore constructs the default Store implementation using the provided
// configuration.
func NewStore(cfg Config) (Store, error) {
	return cacheinfra.NewSturdycStore(cfg.toInternal())
}

func (c Config) toInternal() cacheinfra.Config {
	return cacheinfra.Config{
		Capacity:           c.Capacity,
		NumShards:          c.NumShards,
		TTL:                c.TTL,
		EvictionPercentage: c.EvictionPercentage,
		EvictionInterval:   c.EvictionInterval,
	}
}

func convertFromInternal(cfg cacheinfra.Config) Config {
	return Config{
		Capacity:           cfg.Capacity,
		NumShards:          cfg.NumShards,
		TTL:                cfg.TTL,
		EvictionPercentage: cfg.EvictionPercentage,
		EvictionInterval:   cfg.EvictionInterval,
	}
}
