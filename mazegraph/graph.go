package mazegraph

import (
	"github.com/dhconnelly/rtreego"
)

// Graph is the immutable maze graph produced by Build. The zero value is not
// usable; obtain one from Build.
type Graph struct {
	width, height int
	vertices      []Vertex
	edges         []Edge
	index         map[Coordinate]VertexID
	spatial       *rtreego.Rtree
}

// Width and Height return the dimensions of the source grid.
func (g *Graph) Width() int  { return g.width }
func (g *Graph) Height() int { return g.height }

// Len returns the number of vertices.
func (g *Graph) Len() int { return len(g.vertices) }

// NumEdges returns the number of directed edges.
func (g *Graph) NumEdges() int { return len(g.edges) }

// Vertices returns every VertexID in discovery order (the seed first).
func (g *Graph) Vertices() []VertexID {
	ids := make([]VertexID, len(g.vertices))
	for i := range ids {
		ids[i] = VertexID(i)
	}
	return ids
}

// Vertex returns the vertex with the given id. Panics if id is out of range.
func (g *Graph) Vertex(id VertexID) Vertex { return g.vertices[id] }

// Edge returns the edge with the given id. Panics if id is out of range.
func (g *Graph) Edge(id EdgeID) Edge { return g.edges[id] }

// Loc returns the tile coordinate of vertex v.
func (g *Graph) Loc(v VertexID) Coordinate { return g.vertices[v].Loc }

// Lookup returns the vertex at coordinate c, if c is a vertex.
func (g *Graph) Lookup(c Coordinate) (VertexID, bool) {
	id, ok := g.index[c]
	return id, ok
}

// EdgeInDirection returns the outgoing edge of v in direction d, if any.
func (g *Graph) EdgeInDirection(v VertexID, d Direction) (EdgeID, bool) {
	return g.vertices[v].EdgeInDirection(d)
}

// OutgoingEdges returns v's outgoing edges in Directions order.
func (g *Graph) OutgoingEdges(v VertexID) []EdgeID {
	out := make([]EdgeID, 0, 4)
	for _, e := range g.vertices[v].edges {
		if e != NoEdge {
			out = append(out, e)
		}
	}
	return out
}

// Tail returns the vertex edge e leaves.
func (g *Graph) Tail(e EdgeID) VertexID { return g.edges[e].Tail }

// Head returns the vertex edge e enters.
func (g *Graph) Head(e EdgeID) VertexID { return g.edges[e].Head }

// Weight returns the weight of edge e.
func (g *Graph) Weight(e EdgeID) float64 { return g.edges[e].Weight }

// Reverse returns the edge running opposite to e, from e's head back to its tail.
// Every built edge has one.
func (g *Graph) Reverse(e EdgeID) EdgeID {
	edge := g.edges[e]
	return g.vertices[edge.Head].edges[edge.Direction.Reverse()]
}

// IsTunnel reports whether e crosses a grid boundary via wraparound.
func (g *Graph) IsTunnel(e EdgeID) bool {
	edge := g.edges[e]
	loc := g.vertices[edge.Tail].Loc
	di, dj := edge.Direction.Delta()
	i, j := loc.I+di, loc.J+dj
	return i < 0 || i >= g.width || j < 0 || j >= g.height
}
