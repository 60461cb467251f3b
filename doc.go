// Package lwwgraph is a small toolkit for replicated graphs: Last-Write-Wins
// element sets and an undirected LWW-Element-Graph built on top of them,
// with shortest-path search over the merged result.
//
// What is in here?
//
//	Replicas edit their own copy of a graph without coordination and later
//	exchange full states. Merging is idempotent and commutative, and once
//	every replica has merged every other's state they all show the same
//	vertices and edges, regardless of delivery order or duplicates.
//
// Under the hood, everything is organized under four subpackages:
//
//	clock/    — Timestamp plus Wall, Hybrid (HLC) and Manual clocks
//	lww/      — LWW-Element-Set over arbitrary values, content-addressed keys
//	bfs/      — generic breadth-first search with hooks, limits and early stop
//	lwwgraph/ — the LWW-Element-Graph: vertices, edges, Merge and FindPath
//
// Quick example:
//
//	a := lwwgraph.New[string]()
//	a.AddVertex("A")
//	a.AddVertex("B")
//	_ = a.AddEdge("A", "B")
//
//	b := a.Clone()
//	_ = b.RemoveVertex("B") // also removes {A,B}
//
//	a.Merge(b)
//	path, _ := a.FindPath("A", "B") // [] : B is gone on both replicas after exchange
//
// examples/replicas runs a longer simulation with logging and Prometheus
// counters wired in.
//
//	go get github.com/katalvlaran/lwwgraph
package lwwgraph
