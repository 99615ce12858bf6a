package chase

import (
	"math/rand"

	"github.com/katalvlaran/mazepath/mazegraph"
	"github.com/katalvlaran/mazepath/pathfinding"
)

// RouteTo returns the shortest path from the head of lastEdge to dst that
// never reverses lastEdge nor any of its own edges. ok is false when no such
// path exists; the path is empty when the mover already stands on dst.
func RouteTo(g *mazegraph.Graph, lastEdge mazegraph.EdgeID, dst mazegraph.VertexID) ([]mazegraph.EdgeID, bool) {
	return pathfinding.ShortestNonBacktrackingPath[mazegraph.VertexID, mazegraph.EdgeID](
		g, g.Head(lastEdge), dst, pathfinding.WithArrivalEdge(lastEdge))
}

// Route is RouteTo with the destination snapped from tile coordinate target.
func Route(g *mazegraph.Graph, lastEdge mazegraph.EdgeID, target mazegraph.Coordinate) ([]mazegraph.EdgeID, bool) {
	return RouteTo(g, lastEdge, g.ClosestTo(target.I, target.J))
}

// NextEdge returns the first edge of Route, or false when the mover is
// already at the target or cannot reach it.
func NextEdge(g *mazegraph.Graph, lastEdge mazegraph.EdgeID, target mazegraph.Coordinate) (mazegraph.EdgeID, bool) {
	path, ok := Route(g, lastEdge, target)
	if !ok || len(path) == 0 {
		return mazegraph.NoEdge, false
	}
	return path[0], true
}

// RandomEdge picks a random outgoing edge of the vertex closest to a random
// tile. It returns false only for a graph without edges.
func RandomEdge(g *mazegraph.Graph, rng *rand.Rand) (mazegraph.EdgeID, bool) {
	if g.NumEdges() == 0 {
		return mazegraph.NoEdge, false
	}
	v := g.ClosestTo(rng.Intn(g.Width()), rng.Intn(g.Height()))
	out := g.OutgoingEdges(v)
	return out[rng.Intn(len(out))], true
}

// Wander moves a mover one random step from the head of lastEdge, avoiding
// the reverse of lastEdge unless it is the only way out.
func Wander(g *mazegraph.Graph, lastEdge mazegraph.EdgeID, rng *rand.Rand) mazegraph.EdgeID {
	back := g.Reverse(lastEdge)
	out := g.OutgoingEdges(g.Head(lastEdge))
	forward := make([]mazegraph.EdgeID, 0, len(out))
	for _, e := range out {
		if e != back {
			forward = append(forward, e)
		}
	}
	if len(forward) == 0 {
		return back
	}
	return forward[rng.Intn(len(forward))]
}

// Spawn places a pursuer and a quarry on random edges of g.
// g must have at least one edge.
func Spawn(g *mazegraph.Graph, rng *rand.Rand) Chase {
	p, _ := RandomEdge(g, rng)
	q, _ := RandomEdge(g, rng)
	return Chase{Pursuer: p, Quarry: q}
}

// Path returns the pursuer's route to the quarry's vertex.
func (c Chase) Path(g *mazegraph.Graph) ([]mazegraph.EdgeID, bool) {
	return RouteTo(g, c.Pursuer, g.Head(c.Quarry))
}

// Caught reports whether pursuer and quarry stand on the same vertex.
func (c Chase) Caught(g *mazegraph.Graph) bool {
	return g.Head(c.Pursuer) == g.Head(c.Quarry)
}

// Advance moves the pursuer one edge along Path. It returns false, leaving
// the pursuer in place, when the quarry is caught or out of reach.
func (c *Chase) Advance(g *mazegraph.Graph) bool {
	path, ok := c.Path(g)
	if !ok || len(path) == 0 {
		return false
	}
	c.Pursuer = path[0]
	return true
}
