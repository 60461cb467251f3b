// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrNilNeighbors means BFS was handed no way to list neighbors.
	ErrNilNeighbors = errors.New("bfs: neighbor function is nil")

	// ErrOptionViolation wraps every rejected Option argument.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by PathTo for a key the search never discovered.
	ErrNoPath = errors.New("bfs: no path")
)

// NeighborFunc lists the keys adjacent to id. It is the whole graph as far
// as BFS is concerned: keys it never returns are never discovered. The order
// of the returned slice decides which of several equally short paths wins.
type NeighborFunc[K comparable] func(id K) ([]K, error)

// Option adjusts a search. A bad argument is remembered and reported by BFS
// as ErrOptionViolation before any key is expanded.
type Option[K comparable] func(*Options[K])

// Options is the resolved configuration of one search.
type Options[K comparable] struct {
	// Ctx is polled once per dequeued key.
	Ctx context.Context

	// OnEnqueue fires when a key is discovered, with its hop count.
	OnEnqueue func(id K, depth int)

	// OnDequeue fires when a key leaves the queue.
	OnDequeue func(id K, depth int)

	// OnVisit fires right after OnDequeue; an error ends the search.
	OnVisit func(id K, depth int) error

	// MaxDepth bounds the hop count of discovered keys. Zero means unbounded.
	MaxDepth int

	// FilterNeighbor drops the step curr→neighbor when it returns false.
	FilterNeighbor func(curr, neighbor K) bool

	// Target ends the search when it is dequeued, before its neighbors are
	// listed. Only honored after WithTarget.
	Target    K
	hasTarget bool

	err error
}

// DefaultOptions describes an unbounded, unfiltered search over the whole
// reachable component with a background context and no-op hooks.
func DefaultOptions[K comparable]() Options[K] {
	return Options[K]{
		Ctx:            context.Background(),
		OnEnqueue:      func(K, int) {},
		OnDequeue:      func(K, int) {},
		OnVisit:        func(K, int) error { return nil },
		FilterNeighbor: func(K, K) bool { return true },
	}
}

// WithContext lets ctx cancel the search. Nil is ignored.
func WithContext[K comparable](ctx context.Context) Option[K] {
	return func(o *Options[K]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue sets the discovery hook. Nil is ignored.
func WithOnEnqueue[K comparable](fn func(id K, depth int)) Option[K] {
	return func(o *Options[K]) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue sets the dequeue hook. Nil is ignored.
func WithOnDequeue[K comparable](fn func(id K, depth int)) Option[K] {
	return func(o *Options[K]) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit sets the visit hook. Nil is ignored.
func WithOnVisit[K comparable](fn func(id K, depth int) error) Option[K] {
	return func(o *Options[K]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth keeps keys more than d hops from the start undiscovered.
// d == 0 lifts the bound; d < 0 is rejected.
func WithMaxDepth[K comparable](d int) Option[K] {
	return func(o *Options[K]) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor sets the step filter. Nil is ignored.
func WithFilterNeighbor[K comparable](fn func(curr, neighbor K) bool) Option[K] {
	return func(o *Options[K]) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithTarget stops the search as soon as target is dequeued.
func WithTarget[K comparable](target K) Option[K] {
	return func(o *Options[K]) {
		o.Target = target
		o.hasTarget = true
	}
}

// Result is what a search discovered.
type Result[K comparable] struct {
	// Start is the key the search began from.
	Start K
	// Order lists keys in the order they were dequeued.
	Order []K
	// Depth maps every discovered key to its hop count from Start.
	Depth map[K]int
	// Parent maps every discovered key except Start to the key it was
	// discovered from.
	Parent map[K]K
	// Found reports whether the WithTarget key was dequeued.
	Found bool
}

// PathTo walks Parent links back from dest and returns the keys from Start
// to dest. Returns ErrNoPath if dest was never discovered.
func (r *Result[K]) PathTo(dest K) ([]K, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w to %v", ErrNoPath, dest)
	}

	path := []K{dest}
	for cur := dest; ; {
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
