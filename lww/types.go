// SPDX-License-Identifier: MIT

package lww

import (
	"errors"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/discard"

	"github.com/katalvlaran/lwwgraph/clock"
)

// ErrNotFound is returned when removing a value that was never added.
var ErrNotFound = errors.New("lww: element not found")

// Element is one recorded add or remove event for Value.
type Element[T any] struct {
	Value     T               `json:"value"`
	Timestamp clock.Timestamp `json:"timestamp"`
}

// State is the full replicated state of a Set: both maps, keyed by
// ElementKey. It is plain data, suitable for encoding by a transport layer
// and for rehydrating a Set with NewSetFromState.
type State[T any] struct {
	Adds    map[Key]Element[T] `json:"adds"`
	Removes map[Key]Element[T] `json:"removes"`
}

// Metrics holds the counters a Set reports to.
type Metrics struct {
	Adds    metrics.Counter
	Removes metrics.Counter
	Merges  metrics.Counter
}

// NopMetrics returns Metrics backed by discard counters.
func NopMetrics() *Metrics {
	return &Metrics{
		Adds:    discard.NewCounter(),
		Removes: discard.NewCounter(),
		Merges:  discard.NewCounter(),
	}
}

// fill replaces nil counters with discard ones.
func (m *Metrics) fill() *Metrics {
	nop := NopMetrics()
	out := *m
	if out.Adds == nil {
		out.Adds = nop.Adds
	}
	if out.Removes == nil {
		out.Removes = nop.Removes
	}
	if out.Merges == nil {
		out.Merges = nop.Merges
	}

	return &out
}

// Options configures a Set.
type Options struct {
	// Clock stamps Add and Remove. If it also implements clock.Observer,
	// Merge feeds it the remote timestamps.
	Clock clock.Clock

	// Logger receives debug output from Merge.
	Logger log.Logger

	// Metrics counts local adds, removes and merges.
	Metrics *Metrics
}

// Option configures a Set via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with a fresh clock.Hybrid, a nop logger
// and discard counters.
func DefaultOptions() Options {
	return Options{
		Clock:   clock.NewHybrid(),
		Logger:  log.NewNopLogger(),
		Metrics: NopMetrics(),
	}
}

// WithClock sets the clock used by Add and Remove. Nil is ignored.
func WithClock(c clock.Clock) Option {
	return func(o *Options) {
		if c != nil {
			o.Clock = c
		}
	}
}

// WithLogger sets the logger. Nil is ignored.
func WithLogger(l log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics sets the counters. Nil is ignored; nil fields fall back to
// discard counters.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) {
		if m != nil {
			o.Metrics = m.fill()
		}
	}
}
