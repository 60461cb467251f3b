// SPDX-License-Identifier: MIT

package lwwgraph

import (
	"fmt"
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/sanity-io/litter"

	"github.com/katalvlaran/lwwgraph/clock"
	"github.com/katalvlaran/lwwgraph/lww"
)

// Graph is an undirected LWW-Element-Graph: a vertex set and an edge set,
// each an lww.Set, plus an adjacency index derived from them.
//
// The index only ever lists current vertices, and every member edge
// appears in it in both directions: an edge that loses an endpoint is
// removed along with it. The index is mutated solely by Graph's own
// operations and is rebuilt after Merge.
//
// A Graph is not safe for concurrent use.
type Graph[T any] struct {
	vertices  *lww.Set[T]
	edges     *lww.Set[Edge[T]]
	adjacency map[lww.Key]mapset.Set[lww.Key]
	opts      Options
}

// New returns an empty Graph.
func New[T any](opts ...Option) *Graph[T] {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Graph[T]{
		vertices:  lww.NewSet[T](setOptions(o, "vertices", o.Metrics.Vertices)...),
		edges:     lww.NewSet[Edge[T]](setOptions(o, "edges", o.Metrics.Edges)...),
		adjacency: make(map[lww.Key]mapset.Set[lww.Key]),
		opts:      o,
	}
}

// NewFromState returns a Graph seeded with copies of state's sets. Member
// edges with a non-member endpoint are removed, as Merge would, and the
// index is built from scratch.
func NewFromState[T any](state State[T], opts ...Option) *Graph[T] {
	g := New[T](opts...)
	g.vertices = lww.NewSetFromState(state.Vertices, setOptions(g.opts, "vertices", g.opts.Metrics.Vertices)...)
	g.edges = lww.NewSetFromState(state.Edges, setOptions(g.opts, "edges", g.opts.Metrics.Edges)...)
	g.pruneEdges()
	g.rebuildIndex()

	return g
}

func setOptions(o Options, name string, m *lww.Metrics) []lww.Option {
	return []lww.Option{
		lww.WithClock(o.Clock),
		lww.WithLogger(log.With(o.Logger, "set", name)),
		lww.WithMetrics(m),
	}
}

// AddVertex records v as added. If v is a vertex afterwards, it gets an
// index entry unless it already has one; existing neighbors are kept.
func (g *Graph[T]) AddVertex(v T) {
	g.vertices.Add(v)
	if k := lww.ElementKey(v); g.vertices.ContainsKey(k) {
		g.ensureVertex(k)
	}
}

// RemoveVertex removes v and every edge incident to it.
// Returns ErrVertexNotFound if v is not a vertex.
func (g *Graph[T]) RemoveVertex(v T) error {
	k := lww.ElementKey(v)
	if !g.vertices.ContainsKey(k) {
		return fmt.Errorf("%w: %v", ErrVertexNotFound, v)
	}
	g.retireVertex(v)

	var incident int
	for _, e := range g.edges.Members() {
		if e.hasKey(k) {
			g.retireEdge(e)
			incident++
		}
	}

	delete(g.adjacency, k)
	for _, nbrs := range g.adjacency {
		nbrs.Remove(k)
	}

	level.Debug(g.opts.Logger).Log(
		"msg", "removed vertex",
		"vertex", k,
		"incident_edges", incident,
	)

	return nil
}

// AddEdge records the edge {v1, v2} as added. Self-loops are allowed.
// Returns ErrVertexNotFound if either endpoint is not a vertex.
func (g *Graph[T]) AddEdge(v1, v2 T) error {
	k1, k2 := lww.ElementKey(v1), lww.ElementKey(v2)
	if !g.vertices.ContainsKey(k1) {
		return fmt.Errorf("%w: %v", ErrVertexNotFound, v1)
	}
	if !g.vertices.ContainsKey(k2) {
		return fmt.Errorf("%w: %v", ErrVertexNotFound, v2)
	}

	e := NewEdge(v1, v2)
	g.edges.Add(e)
	if g.edges.ContainsKey(e.ElementKey()) {
		g.link(k1, k2)
	}

	return nil
}

// RemoveEdge removes the edge {v1, v2}. Endpoints are not checked.
// Returns ErrEdgeNotFound if the edge is not a member.
func (g *Graph[T]) RemoveEdge(v1, v2 T) error {
	e := NewEdge(v1, v2)
	if !g.edges.ContainsKey(e.ElementKey()) {
		return fmt.Errorf("%w: {%v, %v}", ErrEdgeNotFound, v1, v2)
	}
	g.retireEdge(e)
	g.unlink(e.keys())

	return nil
}

// HasVertex reports whether v is a vertex.
func (g *Graph[T]) HasVertex(v T) bool {
	_, ok := g.adjacency[lww.ElementKey(v)]

	return ok
}

// HasEdge reports whether {v1, v2} is a member edge.
func (g *Graph[T]) HasEdge(v1, v2 T) bool {
	return g.edges.Contains(NewEdge(v1, v2))
}

// Neighbors returns the vertices adjacent to v, ordered by element key.
// A self-loop makes v its own neighbor.
// Returns ErrVertexNotFound if v is not a vertex.
func (g *Graph[T]) Neighbors(v T) ([]T, error) {
	keys, err := g.neighborKeys(lww.ElementKey(v))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, v)
	}

	return g.values(keys), nil
}

// Degree returns the number of distinct neighbors of v.
// Returns ErrVertexNotFound if v is not a vertex.
func (g *Graph[T]) Degree(v T) (int, error) {
	nbrs, ok := g.adjacency[lww.ElementKey(v)]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrVertexNotFound, v)
	}

	return nbrs.Cardinality(), nil
}

// Vertices returns every vertex, ordered by element key.
func (g *Graph[T]) Vertices() []T { return g.vertices.Members() }

// Edges returns every member edge, ordered by element key.
func (g *Graph[T]) Edges() []Edge[T] { return g.edges.Members() }

// VertexCount returns the number of vertices.
func (g *Graph[T]) VertexCount() int { return len(g.adjacency) }

// EdgeCount returns the number of member edges.
func (g *Graph[T]) EdgeCount() int { return g.edges.Len() }

// Merge folds other's vertex and edge sets into g, then removes every member
// edge that lost an endpoint and rebuilds the adjacency index. Merging with
// nil is a no-op.
// Complexity: O(V + E) plus the inner set merges.
func (g *Graph[T]) Merge(other *Graph[T]) {
	if other == nil {
		return
	}

	g.vertices.Merge(other.vertices)
	g.edges.Merge(other.edges)

	pruned := g.pruneEdges()
	g.rebuildIndex()

	level.Debug(g.opts.Logger).Log(
		"msg", "merged lww graph",
		"vertices", g.VertexCount(),
		"edges", g.EdgeCount(),
		"pruned_edges", pruned,
	)
}

// State returns copies of the vertex and edge sets.
func (g *Graph[T]) State() State[T] {
	return State[T]{
		Vertices: g.vertices.State(),
		Edges:    g.edges.State(),
	}
}

// Clone returns an independent Graph with the same state and options.
// The clone shares g's clock.
func (g *Graph[T]) Clone() *Graph[T] {
	idx := make(map[lww.Key]mapset.Set[lww.Key], len(g.adjacency))
	for k, nbrs := range g.adjacency {
		idx[k] = nbrs.Clone()
	}

	return &Graph[T]{
		vertices:  g.vertices.Clone(),
		edges:     g.edges.Clone(),
		adjacency: idx,
		opts:      g.opts,
	}
}

// String dumps the current vertices and edges.
func (g *Graph[T]) String() string {
	return fmt.Sprintf("vertices: %s\nedges: %s", litter.Sdump(g.Vertices()), litter.Sdump(g.Edges()))
}

// retireVertex and retireEdge stamp the remove no earlier than the current
// add record, so the value stops being a member even when the local clock
// lags a merged-in add.
func (g *Graph[T]) retireVertex(v T) {
	ts := g.opts.Clock.Now()
	if added, ok := g.vertices.AddedAt(v); ok {
		ts = clock.Max(ts, added)
	}
	_ = g.vertices.RemoveAt(v, ts)
}

func (g *Graph[T]) retireEdge(e Edge[T]) {
	ts := g.opts.Clock.Now()
	if added, ok := g.edges.AddedAt(e); ok {
		ts = clock.Max(ts, added)
	}
	_ = g.edges.RemoveAt(e, ts)
}

// pruneEdges removes every member edge with a non-member endpoint and
// returns how many it removed.
func (g *Graph[T]) pruneEdges() int {
	var pruned int
	for _, e := range g.edges.Members() {
		k1, k2 := e.keys()
		if !g.vertices.ContainsKey(k1) || !g.vertices.ContainsKey(k2) {
			g.retireEdge(e)
			pruned++
		}
	}
	g.opts.Metrics.PrunedEdges.Add(float64(pruned))

	return pruned
}

func (g *Graph[T]) ensureVertex(k lww.Key) mapset.Set[lww.Key] {
	nbrs, ok := g.adjacency[k]
	if !ok {
		nbrs = mapset.NewThreadUnsafeSet[lww.Key]()
		g.adjacency[k] = nbrs
	}

	return nbrs
}

func (g *Graph[T]) link(k1, k2 lww.Key) {
	g.ensureVertex(k1).Add(k2)
	g.ensureVertex(k2).Add(k1)
}

func (g *Graph[T]) unlink(k1, k2 lww.Key) {
	if nbrs, ok := g.adjacency[k1]; ok {
		nbrs.Remove(k2)
	}
	if nbrs, ok := g.adjacency[k2]; ok {
		nbrs.Remove(k1)
	}
}

// rebuildIndex recomputes the adjacency index from the two sets.
func (g *Graph[T]) rebuildIndex() {
	idx := make(map[lww.Key]mapset.Set[lww.Key], g.vertices.Len())
	for _, k := range g.vertices.MemberKeys() {
		idx[k] = mapset.NewThreadUnsafeSet[lww.Key]()
	}
	for _, e := range g.edges.Members() {
		k1, k2 := e.keys()
		n1, ok1 := idx[k1]
		n2, ok2 := idx[k2]
		if !ok1 || !ok2 {
			continue
		}
		n1.Add(k2)
		n2.Add(k1)
	}
	g.adjacency = idx
}

// neighborKeys lists k's neighbors in key order.
func (g *Graph[T]) neighborKeys(k lww.Key) ([]lww.Key, error) {
	nbrs, ok := g.adjacency[k]
	if !ok {
		return nil, ErrVertexNotFound
	}
	keys := nbrs.ToSlice()
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	return keys, nil
}

func (g *Graph[T]) values(keys []lww.Key) []T {
	out := make([]T, 0, len(keys))
	for _, k := range keys {
		if v, ok := g.vertices.Lookup(k); ok {
			out = append(out, v)
		}
	}

	return out
}
