package mazegraph

import (
	"math"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// blockSize is the side of the maze generator's tile blocks; the tile at
// (blockSize*x+2, blockSize*y+2) of every block is a path tile.
const blockSize = 3

// vertexEntry wraps a vertex for R-tree storage.
type vertexEntry struct {
	id   VertexID
	bbox rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *vertexEntry) Bounds() rtreego.Rect { return e.bbox }

// newSpatialIndex builds a 2D R-tree holding a unit square around every vertex.
func newSpatialIndex(vertices []Vertex) *rtreego.Rtree {
	tree := rtreego.NewTree(2, 25, 50) // 2D, min 25, max 50 entries per node
	for id, v := range vertices {
		bbox, err := rtreego.NewRect(
			rtreego.Point{float64(v.Loc.I) - 0.5, float64(v.Loc.J) - 0.5},
			[]float64{1, 1},
		)
		if err != nil {
			// unit lengths are always valid
			panic(err)
		}
		tree.Insert(&vertexEntry{id: VertexID(id), bbox: bbox})
	}
	return tree
}

// nearestCandidates is how many R-tree hits Nearest re-ranks by exact distance.
const nearestCandidates = 4

// Nearest returns a vertex whose tile centre is closest (Euclidean, ignoring
// tunnels) to tile position (i, j). The position need not be inside the grid.
//
// The R-tree yields the vertices with the nearest unit boxes; among those the
// smallest centre distance wins, ties going to the lower VertexID.
// Complexity: O(log V) expected.
func (g *Graph) Nearest(i, j int) VertexID {
	target := orb.Point{float64(i), float64(j)}
	best, bestDist := NoVertex, math.Inf(1)
	for _, item := range g.spatial.NearestNeighbors(nearestCandidates, rtreego.Point{target[0], target[1]}) {
		if item == nil {
			continue
		}
		id := item.(*vertexEntry).id
		loc := g.vertices[id].Loc
		d := planar.Distance(target, orb.Point{float64(loc.I), float64(loc.J)})
		if d < bestDist || (d == bestDist && id < best) {
			best, bestDist = id, d
		}
	}
	return best
}

// ClosestTo returns a vertex close to tile position (i, j), for snapping an
// arbitrary target to a reachable path tile. The result lies in the same 3×3
// tile block as (i, j) whenever the grid follows the maze generator's block
// layout; most of the time it is a closest vertex if tunnels are ignored.
//
// Candidates, in order: (i,j), (i,jp), (ip,j), (ip,jp), where (ip,jp) is the
// block's guaranteed path tile. When none is a vertex (for example the block
// lies inside the ghost box) the R-tree nearest vertex to (ip,jp) is returned.
func (g *Graph) ClosestTo(i, j int) VertexID {
	i = min(max(i, 0), max(g.width-2, 0))
	j = min(max(j, 0), max(g.height-2, 0))

	ip := ((i-1)/blockSize)*blockSize + 2
	jp := ((j-1)/blockSize)*blockSize + 2
	for _, c := range [4]Coordinate{{i, j}, {i, jp}, {ip, j}, {ip, jp}} {
		if id, ok := g.index[c]; ok {
			return id
		}
	}
	return g.Nearest(ip, jp)
}
