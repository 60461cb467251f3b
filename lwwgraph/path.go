// SPDX-License-Identifier: MIT

package lwwgraph

import (
	"fmt"

	"github.com/katalvlaran/lwwgraph/bfs"
	"github.com/katalvlaran/lwwgraph/lww"
)

// FindPath returns a shortest path (by edge count) from source to target,
// both endpoints included. Neighbors are expanded in key order, so among
// equally short paths the same one is returned for the same state.
//
// The path is [source] when source equals target, and empty when target is
// unreachable or not a vertex. Returns ErrVertexNotFound if source is not a
// vertex. Extra options (context, depth limit, filters, hooks) are passed to
// bfs.BFS over element keys.
// Complexity: O(V + E log E)
func (g *Graph[T]) FindPath(source, target T, opts ...bfs.Option[lww.Key]) ([]T, error) {
	src, dst := lww.ElementKey(source), lww.ElementKey(target)
	if _, ok := g.adjacency[src]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, source)
	}

	all := make([]bfs.Option[lww.Key], 0, len(opts)+1)
	all = append(all, opts...)
	all = append(all, bfs.WithTarget(dst))

	res, err := bfs.BFS(src, g.neighborKeys, all...)
	if err != nil {
		return nil, fmt.Errorf("lwwgraph: find path: %w", err)
	}
	if !res.Found {
		return []T{}, nil
	}
	keys, err := res.PathTo(dst)
	if err != nil {
		return nil, fmt.Errorf("lwwgraph: find path: %w", err)
	}

	return g.values(keys), nil
}
