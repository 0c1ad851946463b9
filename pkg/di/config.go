package di

import (
	"context"
	"time"

	"github.com/sethvargo/go-envconfig"

	"github.com/muhittincamdali/go-user-query/cache"
)

// Config carries the environment-driven settings for the container.
type Config struct {
	LogLevel  string `env:"USERQUERY_LOG_LEVEL, default=info"`
	LogPretty bool   `env:"USERQUERY_LOG_PRETTY, default=false"`

	// Metrics enables the Prometheus telemetry tracker alongside the log
	// tracker.
	Metrics bool `env:"USERQUERY_METRICS, default=false"`

	CacheCapacity    int           `env:"USERQUERY_CACHE_CAPACITY, default=10000"`
	CacheShards      int           `env:"USERQUERY_CACHE_SHARDS, default=64"`
	CacheTTL         time.Duration `env:"USERQUERY_CACHE_TTL, default=5m"`
	CacheEvictionPct int           `env:"USERQUERY_CACHE_EVICTION_PCT, default=10"`
}

// LoadConfig reads the configuration from environment variables.
func LoadConfig(ctx context.Context) (Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) cacheConfig() cache.Config {
	return cache.Config{
		Capacity:           c.CacheCapacity,
		NumShards:          c.CacheShards,
		TTL:                c.CacheTTL,
		EvictionPercentage: c.CacheEvictionPct,
	}
}
