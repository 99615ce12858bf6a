package mazegen

import (
	"math/rand"
	"time"

	"github.com/katalvlaran/mazepath/tilegrid"
	"github.com/zyedidia/generic/mapset"
)

// Block directions, indexed so that d^1 is the opposite of d.
const (
	left = iota
	right
	up
	down
)

var steps = [4]block{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// block addresses one 3×3 tile block of the maze.
type block struct{ x, y int }

func (b block) step(d int) block { return block{b.x + steps[d].x, b.y + steps[d].y} }

// Generate builds a maze grid for cfg.
//
// rng drives every random choice; when nil, a generator seeded from cfg.Seed
// is used (0 means time-based). Equal configurations and equally seeded
// generators produce identical grids.
func Generate(cfg Config, rng *rand.Rand) (*tilegrid.TileGrid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}

	g := newGenerator(cfg, rng)
	g.chooseTunnels()
	g.spanningTree()
	if cfg.Braiding > 0 {
		g.braid()
	}
	types := g.carve()

	return tilegrid.New(types, Elevations(cfg.TileWidth(), cfg.TileHeight(), rng))
}

// generator holds the block-level state of a single Generate call.
type generator struct {
	cfg        Config
	rng        *rand.Rand
	ghost      block
	links      [][][4]bool // links[x][y][d]: block (x,y) is joined to its neighbour in d
	tunnelRows mapset.Set[int]
}

func newGenerator(cfg Config, rng *rand.Rand) *generator {
	links := make([][][4]bool, cfg.Width)
	for x := range links {
		links[x] = make([][4]bool, cfg.Height)
	}
	g := &generator{
		cfg:        cfg,
		rng:        rng,
		ghost:      block{-1, -1},
		links:      links,
		tunnelRows: mapset.New[int](),
	}
	if cfg.hasGhostBox() {
		g.ghost = block{cfg.Width / 2, cfg.Height / 2}
	}
	return g
}

// inMaze reports whether b is a block of the maze proper.
func (g *generator) inMaze(b block) bool {
	return b.x >= 0 && b.x < g.cfg.Width && b.y >= 0 && b.y < g.cfg.Height && b != g.ghost
}

// cells lists the maze blocks in row-major order.
func (g *generator) cells() []block {
	out := make([]block, 0, g.cfg.Width*g.cfg.Height)
	for y := 0; y < g.cfg.Height; y++ {
		for x := 0; x < g.cfg.Width; x++ {
			if b := (block{x, y}); g.inMaze(b) {
				out = append(out, b)
			}
		}
	}
	return out
}

func (g *generator) link(b block, d int) {
	n := b.step(d)
	g.links[b.x][b.y][d] = true
	g.links[n.x][n.y][d^1] = true
}

// exits counts the openings of b, tunnels included.
func (g *generator) exits(b block) int {
	n := 0
	for _, open := range g.links[b.x][b.y] {
		if open {
			n++
		}
	}
	if g.tunnelRows.Has(b.y) && (b.x == 0 || b.x == g.cfg.Width-1) {
		n++
	}
	return n
}

func (g *generator) chooseTunnels() {
	for _, y := range g.rng.Perm(g.cfg.Height)[:g.cfg.Tunnels] {
		g.tunnelRows.Put(y)
	}
}

// spanningTree links every maze block into one tree using Wilson's algorithm.
func (g *generator) spanningTree() {
	cells := g.cells()
	inTree := mapset.New[block]()
	inTree.Put(cells[g.rng.Intn(len(cells))])

	exit := make(map[block]int, len(cells))
	for _, start := range cells {
		if inTree.Has(start) {
			continue
		}
		// Random walk until the tree is hit. Only the last exit taken from each
		// block is kept, which erases the loops of the walk.
		for b := start; !inTree.Has(b); {
			d := g.randomStep(b)
			exit[b] = d
			b = b.step(d)
		}
		for b := start; !inTree.Has(b); {
			d := exit[b]
			g.link(b, d)
			inTree.Put(b)
			b = b.step(d)
		}
	}
}

// randomStep picks a uniformly random direction from b into the maze.
func (g *generator) randomStep(b block) int {
	var dirs [4]int
	n := 0
	for d := range steps {
		if g.inMaze(b.step(d)) {
			dirs[n] = d
			n++
		}
	}
	return dirs[g.rng.Intn(n)]
}

// braid links dead ends to one more neighbour with probability cfg.Braiding.
func (g *generator) braid() {
	for _, b := range g.cells() {
		if g.exits(b) != 1 || g.rng.Float64() >= g.cfg.Braiding {
			continue
		}
		candidates := make([]int, 0, 3)
		for d := range steps {
			if g.inMaze(b.step(d)) && !g.links[b.x][b.y][d] {
				candidates = append(candidates, d)
			}
		}
		if len(candidates) > 0 {
			g.link(b, candidates[g.rng.Intn(len(candidates))])
		}
	}
}

// carve lays the blocks out as tiles, column-major.
func (g *generator) carve() [][]tilegrid.TileType {
	tw, th := g.cfg.TileWidth(), g.cfg.TileHeight()
	types := make([][]tilegrid.TileType, tw)
	for i := range types {
		types[i] = make([]tilegrid.TileType, th) // zero value is Wall
	}

	for _, b := range g.cells() {
		ci, cj := 3*b.x+2, 3*b.y+2
		types[ci][cj] = tilegrid.Path
		if g.links[b.x][b.y][right] {
			types[ci+1][cj] = tilegrid.Path
			types[ci+2][cj] = tilegrid.Path
		}
		if g.links[b.x][b.y][down] {
			types[ci][cj+1] = tilegrid.Path
			types[ci][cj+2] = tilegrid.Path
		}
	}

	if g.cfg.hasGhostBox() {
		for i := 3*g.ghost.x + 1; i <= 3*g.ghost.x+3; i++ {
			for j := 3*g.ghost.y + 1; j <= 3*g.ghost.y+3; j++ {
				types[i][j] = tilegrid.GhostBox
			}
		}
	}

	for y := 0; y < g.cfg.Height; y++ {
		if !g.tunnelRows.Has(y) {
			continue
		}
		j := 3*y + 2
		types[0][j], types[1][j] = tilegrid.Path, tilegrid.Path
		types[tw-2][j], types[tw-1][j] = tilegrid.Path, tilegrid.Path
	}
	return types
}
