// SPDX-License-Identifier: MIT

package clock

import (
	"math"
	"sync"
	"time"
)

// Wall stamps events with the local wall clock only.
// Logical is always zero, so events inside one nanosecond tie.
type Wall struct{}

// Now returns the current wall time as a Timestamp.
func (Wall) Now() Timestamp { return Timestamp{Wall: time.Now().UnixNano()} }

// Hybrid is a hybrid logical clock.
//
// Now never returns a value less than or equal to one it returned before, and
// after Observe(remote) every Now orders after remote. It is safe for
// concurrent use.
type Hybrid struct {
	mu       sync.Mutex
	physical func() int64
	last     Timestamp
}

// HybridOption configures a Hybrid clock.
type HybridOption func(*Hybrid)

// WithPhysical replaces the physical time source (nanoseconds).
// A nil fn is ignored.
func WithPhysical(fn func() int64) HybridOption {
	return func(h *Hybrid) {
		if fn != nil {
			h.physical = fn
		}
	}
}

// NewHybrid returns a Hybrid clock reading time.Now by default.
func NewHybrid(opts ...HybridOption) *Hybrid {
	h := &Hybrid{physical: func() int64 { return time.Now().UnixNano() }}
	for _, opt := range opts {
		opt(h)
	}

	return h
}

// Now returns the next timestamp.
func (h *Hybrid) Now() Timestamp {
	h.mu.Lock()
	defer h.mu.Unlock()

	pt := h.physical()
	if pt > h.last.Wall {
		h.last = Timestamp{Wall: pt}
	} else if h.last.Logical == math.MaxUint32 {
		// logical counter exhausted; borrow a nanosecond
		h.last = Timestamp{Wall: h.last.Wall + 1}
	} else {
		// physical time stalled or went backwards
		h.last.Logical++
	}

	return h.last
}

// Observe folds a remote timestamp into the clock.
func (h *Hybrid) Observe(remote Timestamp) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.last = Max(h.last, remote)
}

// Last returns the most recent timestamp issued or observed.
func (h *Hybrid) Last() Timestamp {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.last
}

// Manual is a caller-driven clock for tests and deterministic replay.
//
// A Manual created by NewManual returns the same timestamp until it is moved
// with Set, Advance or Tick. One created by NewSequence advances by a fixed
// step on every Now.
type Manual struct {
	mu   sync.Mutex
	now  Timestamp
	step int64
}

// NewManual returns a Manual clock frozen at start.
func NewManual(start Timestamp) *Manual {
	return &Manual{now: start}
}

// NewSequence returns a Manual clock whose Now yields start+step,
// start+2*step, and so on. A non-positive step is treated as 1.
func NewSequence(start, step int64) *Manual {
	if step <= 0 {
		step = 1
	}

	return &Manual{now: Timestamp{Wall: start}, step: step}
}

// Now returns the current timestamp, advancing first in sequence mode.
func (m *Manual) Now() Timestamp {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.step > 0 {
		m.now = Timestamp{Wall: m.now.Wall + m.step}
	}

	return m.now
}

// Set moves the clock to ts.
func (m *Manual) Set(ts Timestamp) {
	m.mu.Lock()
	m.now = ts
	m.mu.Unlock()
}

// Advance moves the wall component forward by d and returns the new value.
func (m *Manual) Advance(d int64) Timestamp {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.now = Timestamp{Wall: m.now.Wall + d}

	return m.now
}

// Tick is Advance(1).
func (m *Manual) Tick() Timestamp { return m.Advance(1) }
