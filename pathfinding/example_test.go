// Package pathfinding_test provides runnable examples of non-backtracking path queries.
package pathfinding_test

import (
	"fmt"

	"github.com/katalvlaran/mazepath/pathfinding"
)

// ExampleShortestNonBacktrackingPath shows how an arrival edge changes the route.
// Without it, A reaches C through B (2+3). Having just arrived from B, the
// traveller may not turn straight back, so it takes the direct edge (6).
func ExampleShortestNonBacktrackingPath() {
	g := mustSimpleGraph(`
		A -- B 2
		A -- C 6
		B -> C 3
	`)

	path, _ := pathfinding.ShortestNonBacktrackingPath[string, int](g, "A", "C")
	fmt.Println(vertexSeq(g, path), pathfinding.PathWeight[string, int](g, path))

	path, _ = pathfinding.ShortestNonBacktrackingPath[string, int](g, "A", "C",
		pathfinding.WithArrivalEdge(g.edge("B", "A")))
	fmt.Println(vertexSeq(g, path), pathfinding.PathWeight[string, int](g, path))

	_, ok := pathfinding.ShortestNonBacktrackingPath[string, int](g, "C", "B",
		pathfinding.WithArrivalEdge(g.edge("A", "C")))
	fmt.Println("C to B after arriving from A:", ok)

	// Output:
	// [A B C] 5
	// [A C] 6
	// C to B after arriving from A: false
}

// ExamplePathInfo prints every reachable vertex with its distance.
func ExamplePathInfo() {
	g := mustSimpleGraph(graph1)

	info := pathfinding.PathInfo[string, int](g, "B")
	for _, v := range g.vertices() {
		fmt.Printf("%s: %g\n", v, info[v].Distance)
	}

	// Output:
	// A: 9
	// B: 0
	// C: 3
}
