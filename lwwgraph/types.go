// SPDX-License-Identifier: MIT

package lwwgraph

import (
	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/discard"

	"github.com/katalvlaran/lwwgraph/clock"
	"github.com/katalvlaran/lwwgraph/lww"
)

// notFound is a lookup failure that also matches lww.ErrNotFound.
type notFound string

func (e notFound) Error() string { return string(e) }

// Is lets errors.Is(err, lww.ErrNotFound) match every graph lookup failure.
func (e notFound) Is(target error) bool { return target == lww.ErrNotFound }

// Sentinel errors for graph operations. Both satisfy
// errors.Is(err, lww.ErrNotFound).
var (
	// ErrVertexNotFound indicates an operation referenced a vertex that is
	// not currently in the graph.
	ErrVertexNotFound error = notFound("lwwgraph: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced an edge that is not
	// currently in the graph.
	ErrEdgeNotFound error = notFound("lwwgraph: edge not found")
)

// Edge is an unordered pair of vertices: {U,V} and {V,U} are the same edge
// and share one element key. U == V is a self-loop.
type Edge[T any] struct {
	U T `json:"u"`
	V T `json:"v"`
}

// NewEdge returns the edge {u, v}.
func NewEdge[T any](u, v T) Edge[T] { return Edge[T]{U: u, V: v} }

// ElementKey implements lww.Keyer. Endpoint keys are sorted before hashing,
// which makes the key independent of endpoint order.
func (e Edge[T]) ElementKey() lww.Key {
	a, b := e.keys()
	if b < a {
		a, b = b, a
	}

	return lww.HashKey("edge", string(a), string(b))
}

// Has reports whether v is an endpoint of e.
func (e Edge[T]) Has(v T) bool { return e.hasKey(lww.ElementKey(v)) }

func (e Edge[T]) keys() (lww.Key, lww.Key) {
	return lww.ElementKey(e.U), lww.ElementKey(e.V)
}

func (e Edge[T]) hasKey(k lww.Key) bool {
	a, b := e.keys()

	return a == k || b == k
}

// State is the authoritative replicated state of a Graph. The adjacency
// index is derived and therefore not part of it.
type State[T any] struct {
	Vertices lww.State[T]       `json:"vertices"`
	Edges    lww.State[Edge[T]] `json:"edges"`
}

// Metrics holds the counters a Graph reports to.
type Metrics struct {
	// Vertices and Edges are handed to the two inner sets.
	Vertices *lww.Metrics
	Edges    *lww.Metrics

	// PrunedEdges counts edges removed by Merge or NewFromState because an
	// endpoint was gone.
	PrunedEdges metrics.Counter
}

// NopMetrics returns Metrics backed by discard counters.
func NopMetrics() *Metrics {
	return &Metrics{
		Vertices:    lww.NopMetrics(),
		Edges:       lww.NopMetrics(),
		PrunedEdges: discard.NewCounter(),
	}
}

// Options configures a Graph.
type Options struct {
	// Clock stamps every add and remove. One clock serves both inner sets.
	Clock clock.Clock

	// Logger receives debug output from RemoveVertex and Merge.
	Logger log.Logger

	// Metrics receives counters from the graph and its inner sets.
	Metrics *Metrics
}

// Option configures a Graph via functional arguments.
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

// WithClock sets the clock shared by the vertex and edge sets. Nil is ignored.
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
		if m == nil {
			return
		}
		nop := NopMetrics()
		out := *m
		if out.Vertices == nil {
			out.Vertices = nop.Vertices
		}
		if out.Edges == nil {
			out.Edges = nop.Edges
		}
		if out.PrunedEdges == nil {
			out.PrunedEdges = nop.PrunedEdges
		}
		o.Metrics = &out
	}
}
