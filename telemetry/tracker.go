// Package telemetry defines the fire-and-forget event sink consumed by the
// user query pipeline, plus the stock implementations: a no-op sink, a
// fan-out multiplexer, a zerolog sink, and a Prometheus metrics sink.
package telemetry

import "context"

// Tracker receives pipeline events. Implementations must never block the
// caller and must never fail: a tracker that cannot deliver an event drops
// it. The pipeline emits events on both success and failure paths, so
// observability never depends on the caller inspecting the returned error.
type Tracker interface {
	TrackEvent(ctx context.Context, name string, params map[string]any)
}

// Noop is a Tracker that discards every event. Injecting it makes an absent
// telemetry sink a fully functional configuration.
type Noop struct{}

// NewNoop returns a Tracker that does nothing.
func NewNoop() Noop { return Noop{} }

func (Noop) TrackEvent(context.Context, string, map[string]any) {}

// Multi fans a single event out to several trackers in order.
type Multi struct {
	trackers []Tracker
}

// NewMulti builds a fan-out tracker. Nil members are skipped.
func NewMulti(trackers ...Tracker) Multi {
	kept := make([]Tracker, 0, len(trackers))
	for _, t := range trackers {
		if t != nil {
			kept = append(kept, t)
		}
	}
	return Multi{trackers: kept}
}

func (m Multi) TrackEvent(ctx context.Context, name string, params map[string]any) {
	for _, t := range m.trackers {
		t.TrackEvent(ctx, name, params)
	}
}
