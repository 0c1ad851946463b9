package telemetry

import (
	"context"

	"github.com/rs/zerolog"
)

// LogTracker writes every event to a structured log. It is the default
// side-channel during development and doubles as the observable record of
// swallowed failures (cache writes, for instance) in production.
type LogTracker struct {
	log zerolog.Logger
}

// NewLogTracker returns a Tracker that logs events at debug level.
func NewLogTracker(log zerolog.Logger) LogTracker {
	return LogTracker{log: log}
}

func (t LogTracker) TrackEvent(ctx context.Context, name string, params map[string]any) {
	t.log.Debug().Str("event", name).Fields(params).Msg("telemetry event")
}
