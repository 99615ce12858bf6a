package mazegraph

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mazepath/tilegrid"
	"github.com/zyedidia/generic/mapset"
)

// DefaultSeed is the tile the maze generator always leaves open.
var DefaultSeed = Coordinate{I: 2, J: 2}

// Build discovers every traversable tile reachable from seed and returns the
// frozen maze graph over them.
//
// Preconditions (checked; violations panic with a wrapped sentinel error):
//  1. seed lies inside the grid (ErrSeedOutOfBounds).
//  2. grid has a traversable tile at seed (ErrSeedNotTraversable).
//  3. All traversable tiles form one toroidally connected component
//     (ErrDisconnected; skipped with WithoutConnectivityCheck).
//  4. The weight function never returns a negative value (ErrNegativeWeight).
//
// Algorithm:
//
//	Breadth-first from seed. For each dequeued tile and each Direction, the
//	neighbour is found by stepping once and wrapping both axes; non-traversable
//	neighbours are skipped. A missing neighbour vertex is created on sight. If
//	the tile has no outgoing edge in that direction yet, the edge pair is added
//	(tile→neighbour in the direction, neighbour→tile in its reverse), each
//	weighted from the two elevations. Undiscovered neighbours are enqueued.
//
// Complexity: O(V + E) time and memory, plus O(W×H) for precondition 3.
func Build(grid tilegrid.Grid, seed Coordinate, opts ...Option) *Graph {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	w, h := grid.Width(), grid.Height()
	if seed.I < 0 || seed.I >= w || seed.J < 0 || seed.J >= h {
		panic(fmt.Errorf("%w: %v in %dx%d grid", ErrSeedOutOfBounds, seed, w, h))
	}
	if !grid.CellType(seed.I, seed.J).Traversable() {
		panic(fmt.Errorf("%w: %v is %v", ErrSeedNotTraversable, seed, grid.CellType(seed.I, seed.J)))
	}

	b := &builder{
		grid:   grid,
		weight: cfg.WeightFunc,
		g: &Graph{
			width:  w,
			height: h,
			index:  make(map[Coordinate]VertexID),
		},
	}

	discovered := mapset.New[Coordinate]()
	discovered.Put(seed)
	frontier := []Coordinate{seed}
	b.vertexAt(seed)

	for qi := 0; qi < len(frontier); qi++ {
		c := frontier[qi]
		v := b.g.index[c]
		for _, dir := range Directions {
			di, dj := dir.Delta()
			ni, nj := tilegrid.Wrap(grid, c.I+di, c.J+dj)
			if !grid.CellType(ni, nj).Traversable() {
				continue
			}
			nc := Coordinate{I: ni, J: nj}
			n := b.vertexAt(nc)
			if b.g.vertices[v].edges[dir] == NoEdge {
				b.link(v, n, dir)
			}
			if !discovered.Has(nc) {
				discovered.Put(nc)
				frontier = append(frontier, nc)
			}
		}
	}

	if cfg.CheckConnectivity {
		if want := tilegrid.CountTraversable(grid); want != len(b.g.vertices) {
			panic(fmt.Errorf("%w: reached %d of %d traversable tiles from %v",
				ErrDisconnected, len(b.g.vertices), want, seed))
		}
	}

	b.g.spatial = newSpatialIndex(b.g.vertices)
	return b.g
}

// builder holds the mutable state of a single Build call.
type builder struct {
	grid   tilegrid.Grid
	weight WeightFunc
	g      *Graph
}

// vertexAt returns the vertex for c, creating it if c has not been seen.
func (b *builder) vertexAt(c Coordinate) VertexID {
	if id, ok := b.g.index[c]; ok {
		return id
	}
	id := VertexID(len(b.g.vertices))
	b.g.vertices = append(b.g.vertices, Vertex{
		Loc:   c,
		edges: [4]EdgeID{NoEdge, NoEdge, NoEdge, NoEdge},
	})
	b.g.index[c] = id
	return id
}

// link adds the edge pair between v and n, leaving v in direction dir.
func (b *builder) link(v, n VertexID, dir Direction) {
	vl, nl := b.g.vertices[v].Loc, b.g.vertices[n].Loc
	ve := b.grid.Elevation(vl.I, vl.J)
	ne := b.grid.Elevation(nl.I, nl.J)

	b.addEdge(Edge{Tail: v, Head: n, Direction: dir, Weight: b.checked(b.weight(ve, ne), vl, nl)})
	b.addEdge(Edge{Tail: n, Head: v, Direction: dir.Reverse(), Weight: b.checked(b.weight(ne, ve), nl, vl)})
}

func (b *builder) addEdge(e Edge) {
	tail := &b.g.vertices[e.Tail]
	if tail.edges[e.Direction] != NoEdge {
		panic(fmt.Sprintf("mazegraph: %v already has an edge %v", tail.Loc, e.Direction))
	}
	id := EdgeID(len(b.g.edges))
	b.g.edges = append(b.g.edges, e)
	tail.edges[e.Direction] = id
}

func (b *builder) checked(w float64, from, to Coordinate) float64 {
	if w < 0 || math.IsNaN(w) {
		panic(fmt.Errorf("%w: %v→%v weight=%g", ErrNegativeWeight, from, to, w))
	}
	return w
}
