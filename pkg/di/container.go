// Package di wires the query pipeline's collaborators: cache store,
// telemetry trackers and logger, configured from the environment.
package di

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/muhittincamdali/go-user-query/cache"
	"github.com/muhittincamdali/go-user-query/pkg/logger"
	"github.com/muhittincamdali/go-user-query/telemetry"
	"github.com/muhittincamdali/go-user-query/user"
	"github.com/muhittincamdali/go-user-query/userquery"
)

// Container manages singleton instances of the pipeline's shared
// collaborators and provides a factory for query services.
type Container struct {
	store   cache.Store
	tracker telemetry.Tracker
	log     zerolog.Logger
	config  Config
}

// NewContainer builds a container from the provided configuration.
func NewContainer(cfg Config) (*Container, error) {
	store, err := cache.NewStore(cfg.cacheConfig())
	if err != nil {
		return nil, err
	}

	log := logger.New(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	trackers := []telemetry.Tracker{telemetry.NewLogTracker(log)}
	if cfg.Metrics {
		trackers = append(trackers, telemetry.NewMetricsTracker())
	}

	return &Container{
		store:   store,
		tracker: telemetry.NewMulti(trackers...),
		log:     log,
		config:  cfg,
	}, nil
}

// NewContainerFromEnv builds a container configured from environment
// variables.
func NewContainerFromEnv(ctx context.Context) (*Container, error) {
	cfg, err := LoadConfig(ctx)
	if err != nil {
		return nil, err
	}
	return NewContainer(cfg)
}

// Store returns the singleton cache store.
func (c *Container) Store() cache.Store { return c.store }

// Tracker returns the singleton telemetry tracker.
func (c *Container) Tracker() telemetry.Tracker { return c.tracker }

// Logger returns the shared logger.
func (c *Container) Logger() zerolog.Logger { return c.log }

// Config returns a copy of the configuration used by this container.
func (c *Container) Config() Config { return c.config }

// NewUserService builds a query pipeline around the given repository, wired
// with the container's store, tracker and logger. Extra options override the
// container defaults.
func (c *Container) NewUserService(repo user.Repository, opts ...userquery.ServiceOption) *userquery.Service {
	base := []userquery.ServiceOption{
		userquery.WithStore(c.store),
		userquery.WithTracker(c.tracker),
		userquery.WithLogger(c.log),
	}
	return userquery.NewService(repo, append(base, opts...)...)
}
