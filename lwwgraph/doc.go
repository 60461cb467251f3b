// SPDX-License-Identifier: MIT

// Package lwwgraph implements an undirected LWW-Element-Graph: a
// state-based CRDT whose vertices and edges each live in an lww.Set.
//
// What
//
//   - AddVertex / RemoveVertex, AddEdge / RemoveEdge with Last-Write-Wins
//     semantics: on equal add and remove timestamps the remove wins.
//   - Removing a vertex also removes every edge incident to it.
//   - Merge folds another replica in. Afterwards, any edge that lost an
//     endpoint (for example because the vertex was removed on the other
//     replica) is removed too, and the adjacency index is rebuilt.
//   - FindPath returns a shortest path by edge count, using package bfs.
//
// Values are addressed by content through lww.ElementKey, so T may be any
// type, including structs holding slices and maps. Edge implements
// lww.Keyer so that {u,v} and {v,u} are the same edge.
//
// Replicas
//
//	a := lwwgraph.New[int]()
//	b := a.Clone()
//	a.AddVertex(1)
//	b.AddVertex(2)
//	a.Merge(b)
//	b.Merge(a) // a and b now agree on {1, 2}
//
// Merge is idempotent and commutative with respect to the observable vertex
// and edge membership. It is not associative in general: removing an edge
// whose endpoint is gone writes a fresh remove record, so if a vertex is
// removed on one replica and re-added on another, the order of merges
// decides whether its old edges survive. Replicas still converge once each
// has merged every other's state, including the removes written by those
// merges. Share one clock.Clock between replicas in tests, or use the
// default clock.Hybrid, which advances past every timestamp it observes
// during Merge.
//
// Errors
//
//   - ErrVertexNotFound  if an operation names a vertex that is not present.
//   - ErrEdgeNotFound    if RemoveEdge names an edge that is not present.
//
// Both match lww.ErrNotFound under errors.Is.
//
// CAUTION: a Graph is not safe for concurrent use; guard it externally.
package lwwgraph
