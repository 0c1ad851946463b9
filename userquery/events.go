package userquery

import (
	"context"
	"time"
)

// Telemetry event names emitted by the pipeline. Error events always fire
// before the normalized error is returned, so observability never depends on
// the caller handling the failure.
const (
	EventRetrievalSuccess = "users_retrieval_success"
	EventRetrievalError   = "users_retrieval_error"
	EventCacheHit         = "users_cache_hit"
	EventFilterSuccess    = "users_by_filter_success"
	EventFilterError      = "users_by_filter_error"
	EventQuerySuccess     = "users_query_success"
	EventQueryError       = "users_query_error"
)

// emit sends an event with the elapsed time since start attached. The
// incoming params map is copied so callers can reuse theirs.
func (s *Service) emit(ctx context.Context, name string, start time.Time, params map[string]any) {
	p := make(map[string]any, len(params)+1)
	for k, v := range params {
		p[k] = v
	}
	p["duration_ms"] = time.Since(start).Milliseconds()
	s.tracker.TrackEvent(ctx, name, p)
}

// emitError augments the params with the failure before emitting.
func (s *Service) emitError(ctx context.Context, name string, start time.Time, params map[string]any, err error) {
	p := make(map[string]any, len(params)+2)
	for k, v := range params {
		p[k] = v
	}
	p["error"] = err.Error()
	p["error_kind"] = string(KindOf(err))
	s.emit(ctx, name, start, p)
}
