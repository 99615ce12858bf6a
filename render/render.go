package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/katalvlaran/mazepath/mazegraph"
	"github.com/katalvlaran/mazepath/tilegrid"
)

// Renderer draws onto a tcell screen.
type Renderer struct {
	Screen tcell.Screen
	Theme  Theme
}

// New returns a Renderer for screen.
func New(screen tcell.Screen, opts ...Option) *Renderer {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Renderer{Screen: screen, Theme: cfg.Theme}
}

// setTile fills both cells of tile (i, j).
func (r *Renderer) setTile(i, j int, left, right rune, style tcell.Style) {
	r.Screen.SetContent(2*i, j, left, nil, style)
	r.Screen.SetContent(2*i+1, j, right, nil, style)
}

// PathStyle returns the background style of a path tile at elevation elev.
func (r *Renderer) PathStyle(elev float64) tcell.Style {
	elev = min(max(elev, 0), 1)
	lo, hi := r.Theme.PathLow, r.Theme.PathHigh
	grey := lo + int32(elev*float64(hi-lo))
	return tcell.StyleDefault.Background(tcell.NewRGBColor(grey, grey, grey))
}

// DrawGrid draws every tile of grid.
func (r *Renderer) DrawGrid(grid tilegrid.Grid) {
	for i := 0; i < grid.Width(); i++ {
		for j := 0; j < grid.Height(); j++ {
			switch grid.CellType(i, j) {
			case tilegrid.Path:
				r.setTile(i, j, ' ', ' ', r.PathStyle(grid.Elevation(i, j)))
			case tilegrid.GhostBox:
				r.setTile(i, j, GhostRune, GhostRune, r.Theme.GhostBox)
			default:
				r.setTile(i, j, WallRune, WallRune, r.Theme.Wall)
			}
		}
	}
}

// DrawGraph overlays every vertex of g.
func (r *Renderer) DrawGraph(g *mazegraph.Graph) {
	for _, v := range g.Vertices() {
		r.drawVertex(g, v)
	}
}

func (r *Renderer) drawVertex(g *mazegraph.Graph, v mazegraph.VertexID) {
	loc := g.Loc(v)
	style := r.Theme.Vertex
	mask := 0
	for _, e := range g.OutgoingEdges(v) {
		mask |= 1 << g.Edge(e).Direction
		if g.IsTunnel(e) {
			style = r.Theme.Tunnel
		}
	}
	r.Screen.SetContent(2*loc.I, loc.J, junctions[mask], nil, style)

	if e, ok := g.EdgeInDirection(v, mazegraph.Right); ok && !g.IsTunnel(e) {
		r.Screen.SetContent(2*loc.I+1, loc.J, '─', nil, r.Theme.Vertex)
	}
}

// DrawPath marks each edge of path with an arrow on its head tile, plus a
// stroke between horizontally adjacent tiles.
func (r *Renderer) DrawPath(g *mazegraph.Graph, path []mazegraph.EdgeID) {
	for _, e := range path {
		edge := g.Edge(e)
		head := g.Loc(edge.Head)
		r.Screen.SetContent(2*head.I, head.J, arrows[edge.Direction], nil, r.Theme.Chase)
		if g.IsTunnel(e) {
			continue
		}
		tail := g.Loc(edge.Tail)
		switch edge.Direction {
		case mazegraph.Right:
			r.Screen.SetContent(2*tail.I+1, tail.J, '─', nil, r.Theme.Chase)
		case mazegraph.Left:
			r.Screen.SetContent(2*head.I+1, head.J, '─', nil, r.Theme.Chase)
		}
	}
}

// DrawMarker puts ch on vertex v.
func (r *Renderer) DrawMarker(g *mazegraph.Graph, v mazegraph.VertexID, ch rune, style tcell.Style) {
	loc := g.Loc(v)
	r.Screen.SetContent(2*loc.I, loc.J, ch, nil, style)
}

// DrawText writes s starting at cell (x, y).
func (r *Renderer) DrawText(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		r.Screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

// Frame clears the screen, draws st and shows the result.
func (r *Renderer) Frame(st State) {
	r.Screen.Clear()

	r.DrawGrid(st.Grid)
	if st.ShowGraph {
		r.DrawGraph(st.Graph)
	}
	if st.Chase != nil {
		if path, ok := st.Chase.Path(st.Graph); ok {
			r.DrawPath(st.Graph, path)
		}
		r.DrawMarker(st.Graph, st.Graph.Head(st.Chase.Quarry), QuarryRune, r.Theme.Quarry)
		r.DrawMarker(st.Graph, st.Graph.Head(st.Chase.Pursuer), PursuerRune, r.Theme.Pursuer)
	}
	if st.Status != "" {
		r.DrawText(0, st.Grid.Height(), st.Status, r.Theme.Status)
	}

	r.Screen.Show()
}
