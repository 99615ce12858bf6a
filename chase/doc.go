// Package chase moves pursuers over a maze graph without U-turns.
//
// Every mover on the maze is identified by the edge it traversed last: the
// edge's head is where the mover stands, and the edge itself is the one it may
// not immediately reverse. A pursuer routes toward a tile coordinate, which is
// snapped to a vertex with mazegraph.Graph.ClosestTo, along the shortest
// non-backtracking path.
//
//	c := chase.Spawn(g, rng)
//	for !c.Caught(g) {
//		if !c.Advance(g) {
//			break // no route without turning back
//		}
//		c.Quarry = chase.Wander(g, c.Quarry, rng)
//	}
package chase
