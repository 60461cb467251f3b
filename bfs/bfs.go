// SPDX-License-Identifier: MIT

package bfs

import (
	"errors"
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
)

// ErrNeighbors wraps a failure of the NeighborFunc.
var ErrNeighbors = errors.New("bfs: neighbor iteration error")

// errStop ends the loop once the target is dequeued.
var errStop = errors.New("bfs: target reached")

type queueItem[K comparable] struct {
	id    K
	depth int
}

// walker is the state of one search. A key enters seen when it is
// discovered, so it is queued at most once.
type walker[K comparable] struct {
	neighbors NeighborFunc[K]
	opts      Options[K]
	queue     []queueItem[K]
	seen      mapset.Set[K]
	res       *Result[K]
}

// BFS searches outward from start, one hop layer at a time, and returns
// everything it discovered. The search stops early on WithTarget, on
// cancellation of WithContext, or when a hook or the NeighborFunc fails;
// in the failure cases the partial Result is returned with the error.
//
// Errors: ErrNilNeighbors, ErrOptionViolation, ErrNeighbors, the context's
// error, or the OnVisit error wrapped with the key it failed on.
// Complexity: O(V + E) calls into neighbors and the hooks.
func BFS[K comparable](start K, neighbors NeighborFunc[K], opts ...Option[K]) (*Result[K], error) {
	if neighbors == nil {
		return nil, ErrNilNeighbors
	}
	o := DefaultOptions[K]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker[K]{
		neighbors: neighbors,
		opts:      o,
		seen:      mapset.NewThreadUnsafeSet[K](),
		res: &Result[K]{
			Start:  start,
			Depth:  make(map[K]int),
			Parent: make(map[K]K),
		},
	}
	w.discover(start, 0, nil)

	if err := w.run(); err != nil && !errors.Is(err, errStop) {
		return w.res, err
	}

	return w.res, nil
}

// discover records id at depth d, reached from parent (nil for the start),
// and queues it.
func (w *walker[K]) discover(id K, d int, parent *K) {
	w.seen.Add(id)
	w.res.Depth[id] = d
	if parent != nil {
		w.res.Parent[id] = *parent
	}
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem[K]{id: id, depth: d})
}

func (w *walker[K]) run() error {
	for len(w.queue) > 0 {
		if err := w.opts.Ctx.Err(); err != nil {
			return err
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.opts.OnDequeue(item.id, item.depth)

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", item.id, err)
		}
		if w.opts.hasTarget && item.id == w.opts.Target {
			w.res.Found = true
			return errStop
		}

		if err := w.expand(item); err != nil {
			return err
		}
	}

	return nil
}

// expand discovers the unseen, unfiltered neighbors of item one hop further
// out, unless that hop would exceed MaxDepth.
func (w *walker[K]) expand(item queueItem[K]) error {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	nbrs, err := w.neighbors(item.id)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %v: %v", ErrNeighbors, item.id, err)
	}
	for _, nbr := range nbrs {
		if w.seen.Contains(nbr) || !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		parent := item.id
		w.discover(nbr, next, &parent)
	}

	return nil
}
