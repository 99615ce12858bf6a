// Package mazegraph turns a tile grid into a weighted directed graph whose
// vertices are the traversable tiles and whose edges join orthogonal neighbours.
//
// Overview:
//
//   - Build performs a breadth-first discovery from a seed tile, wrapping at
//     the grid boundaries so that tiles on opposite edges are adjacent
//     ("tunnel" edges), and links each adjacency with a pair of directed edges.
//   - Edge weights are asymmetric: EdgeWeight charges more for climbing than for
//     descending, clamped so every weight lies in [0.25, 1.75].
//   - The resulting Graph is immutable. Vertices and edges live in dense arenas
//     addressed by VertexID and EdgeID, so edges hold indices rather than
//     pointers back into the vertex set.
//   - ClosestTo and Nearest snap an arbitrary tile position to a vertex, the
//     latter through an R-tree over vertex locations.
//
// Direction of a tunnel edge: an edge leaving a tile on the left boundary for
// the tile on the right boundary points Left (toward the tail's nearest
// boundary), not Right.
//
// Contract violations (seed tile not traversable, traversable region not a
// single toroidal component, a weight function returning a negative value)
// are programming errors and cause Build to panic with a wrapped sentinel
// error. There is no partial graph.
//
// Thread safety:
//
//   - A built Graph is never mutated, so any number of goroutines may query it
//     concurrently without synchronisation.
//
// Complexity:
//
//   - Build: O(V + E) time and memory plus O(W×H) for the connectivity check,
//     where V is the number of traversable tiles and E ≤ 4V.
//   - Lookup, EdgeInDirection, Tail, Head, Weight: O(1).
//   - Nearest: O(log V) expected.
package mazegraph
