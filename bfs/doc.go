// Package bfs walks a graph it never sees. The caller describes adjacency
// with a NeighborFunc over keys of any comparable type; BFS asks it for
// one key's neighbors at a time and records what it learns.
//
// Output
//
// A Result holds the dequeue Order, the hop count of every discovered key
// in Depth, and the key each one was first reached from in Parent.
// PathTo follows Parent back to Start, so the path it returns is a
// shortest one by edge count. Found is set when a WithTarget key was
// dequeued.
//
// Controls
//
//   - WithMaxDepth leaves keys beyond a hop bound undiscovered.
//   - WithFilterNeighbor skips individual steps.
//   - WithTarget stops at a key before listing its neighbors.
//   - WithContext cancels between dequeues.
//   - WithOnEnqueue, WithOnDequeue and WithOnVisit observe the walk; an
//     OnVisit error ends it.
//
// Ties between equally short paths go to whichever neighbor the
// NeighborFunc listed first. A NeighborFunc that returns keys in a stable
// order gives stable results.
//
// Each key is queued at most once and asked for its neighbors at most once,
// so a search costs O(V + E) NeighborFunc work and O(V) memory.
//
//	adj := map[string][]string{"a": {"b"}, "b": {"a", "c"}, "c": {"b"}}
//	res, err := bfs.BFS("a", func(id string) ([]string, error) { return adj[id], nil },
//	    bfs.WithTarget("c"),
//	)
//	path, _ := res.PathTo("c") // [a b c]
//
// Errors
//
//   - ErrNilNeighbors     the NeighborFunc is nil.
//   - ErrOptionViolation  an Option got a bad argument, e.g. negative MaxDepth.
//   - ErrNeighbors        the NeighborFunc failed.
//   - ErrNoPath           PathTo was asked for an undiscovered key.
//
// OnVisit errors and context errors are returned as well.
package bfs
