package lwwgraph_test

import (
	"fmt"

	"github.com/katalvlaran/lwwgraph/clock"
	"github.com/katalvlaran/lwwgraph/lwwgraph"
)

// ExampleGraph_FindPath finds the fewest-hop route between two cities.
func ExampleGraph_FindPath() {
	g := lwwgraph.New[string]()
	for _, city := range []string{"Kyiv", "Lviv", "Odesa", "Dnipro", "Kharkiv"} {
		g.AddVertex(city)
	}
	_ = g.AddEdge("Lviv", "Kyiv")
	_ = g.AddEdge("Kyiv", "Dnipro")
	_ = g.AddEdge("Dnipro", "Kharkiv")
	_ = g.AddEdge("Kyiv", "Kharkiv")

	path, err := g.FindPath("Lviv", "Kharkiv")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(path)

	path, _ = g.FindPath("Lviv", "Odesa")
	fmt.Println(len(path))
	// Output:
	// [Lviv Kyiv Kharkiv]
	// 0
}

// ExampleGraph_Merge removes a vertex on one replica while the other links
// to it; after exchanging states both replicas drop the vertex and its edges.
func ExampleGraph_Merge() {
	clk := clock.NewSequence(0, 1)
	a := lwwgraph.New[string](lwwgraph.WithClock(clk))
	for _, v := range []string{"x", "y", "z"} {
		a.AddVertex(v)
	}
	_ = a.AddEdge("x", "y")

	b := a.Clone()
	_ = a.RemoveVertex("y")
	_ = b.AddEdge("y", "z")

	a.Merge(b)
	b.Merge(a)
	fmt.Println(a.HasVertex("y"), b.HasVertex("y"))
	fmt.Println(len(a.Edges()), len(b.Edges()))
	fmt.Println(len(b.Vertices()), b.HasVertex("x"), b.HasVertex("z"))
	// Output:
	// false false
	// 0 0
	// 2 true true
}
