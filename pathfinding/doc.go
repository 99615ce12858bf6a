// Package pathfinding computes shortest non-backtracking paths on weighted
// directed graphs with non-negative edge weights.
//
// A non-backtracking path never traverses an edge immediately followed by its
// reverse (v → w → v). Pursuers in a maze use this to chase a target without
// turning around on the spot: the edge a pursuer arrived by may be supplied
// as an arrival edge, and the first step of the route may not retrace it.
//
// Overview:
//
//   - PathInfo runs a single-source Dijkstra with a backtrack filter and returns,
//     for every reachable vertex, a PathEnd holding the best distance found and
//     the last edge of the corresponding path.
//   - PathTo walks those last edges back to the source.
//   - ShortestNonBacktrackingPath combines both for point-to-point queries.
//
// The engine only sees the Graph interface (outgoing edges, tail, head,
// weight), so it works over any graph representation, maze or otherwise.
//
// Approximation:
//
//	The search keeps a single (distance, lastEdge) state per vertex, not one per
//	(vertex, incoming edge) pair. Forbidding reversal of the committed incoming
//	edge is enough to keep every reported path non-backtracking, but the search
//	does not explore slightly longer arrivals at an intermediate vertex that
//	could enable a shorter continuation. Reported distances are therefore the
//	length of a non-backtracking path, not always the global minimum over all
//	non-backtracking paths. Callers (chase logic, tests) depend on exactly this
//	behaviour.
//
// Results:
//
//   - "No path" is reported by a false ok value.
//   - A path from a vertex to itself is an empty, non-nil slice with ok == true,
//     whatever arrival edge was supplied.
//
// Contract violations panic: an arrival edge whose head is not the source
// (ErrArrivalEdgeMismatch) or a negative edge weight (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O((V + E) log V) with a lazy decrease-key binary heap.
//   - Space: O(V + E).
//
// Thread safety:
//
//   - Each query owns its frontier and result map; concurrent queries over a
//     graph that is not being mutated need no synchronisation.
package pathfinding
