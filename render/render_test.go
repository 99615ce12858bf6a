package render_test

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/katalvlaran/mazepath/chase"
	"github.com/katalvlaran/mazepath/mazegraph"
	"github.com/katalvlaran/mazepath/render"
	"github.com/katalvlaran/mazepath/tilegrid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ring is eight path tiles around a single wall, sloping up to the right.
const ring = `
wwwwwww
wwwwwww
wwpppww
wwpwpww
wwpppww
wwwwwww`

func slope(i, _ int) float64 { return float64(i) / 6 }

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(20, 10)
	t.Cleanup(s.Fini)
	return s
}

func cell(s tcell.Screen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y)
	return r
}

func style(s tcell.Screen, x, y int) tcell.Style {
	_, _, st, _ := s.GetContent(x, y)
	return st
}

func background(st tcell.Style) tcell.Color {
	_, bg, _ := st.Decompose()
	return bg
}

func setup(t *testing.T, template string) (tcell.SimulationScreen, *render.Renderer, *tilegrid.TileGrid, *mazegraph.Graph) {
	t.Helper()
	s := newScreen(t)
	grid := tilegrid.MustParse(template, slope)
	return s, render.New(s), grid, mazegraph.Build(grid, mazegraph.DefaultSeed)
}

func edge(t *testing.T, g *mazegraph.Graph, i, j int, d mazegraph.Direction) mazegraph.EdgeID {
	t.Helper()
	v, ok := g.Lookup(mazegraph.Coordinate{I: i, J: j})
	require.True(t, ok)
	e, ok := g.EdgeInDirection(v, d)
	require.True(t, ok)
	return e
}

func TestPathStyle(t *testing.T) {
	r := render.New(newScreen(t))
	assert.Equal(t, r.PathStyle(0), r.PathStyle(-3))
	assert.Equal(t, r.PathStyle(1), r.PathStyle(7))
	assert.NotEqual(t, r.PathStyle(0), r.PathStyle(1))

	th := render.DefaultTheme()
	assert.Equal(t, tcell.NewRGBColor(th.PathLow, th.PathLow, th.PathLow), background(r.PathStyle(0)))
	assert.Equal(t, tcell.NewRGBColor(th.PathHigh, th.PathHigh, th.PathHigh), background(r.PathStyle(1)))
}

func TestDrawGrid(t *testing.T) {
	s, r, grid, _ := setup(t, ring)
	r.DrawGrid(grid)

	assert.Equal(t, render.WallRune, cell(s, 0, 0))
	assert.Equal(t, render.WallRune, cell(s, 1, 0))
	assert.Equal(t, render.WallRune, cell(s, 6, 3)) // the wall inside the ring
	assert.Equal(t, ' ', cell(s, 4, 2))
	assert.Equal(t, ' ', cell(s, 5, 2))

	// both cells of a tile share the elevation shade; higher tiles differ
	assert.Equal(t, r.PathStyle(2.0/6), style(s, 4, 2))
	assert.Equal(t, style(s, 4, 2), style(s, 5, 2))
	assert.NotEqual(t, background(style(s, 4, 2)), background(style(s, 8, 2)))
}

func TestDrawGrid_GhostBox(t *testing.T) {
	s := newScreen(t)
	r := render.New(s)
	r.DrawGrid(tilegrid.MustParse("wwwww\nwwwww\nwwpgw", nil))

	assert.Equal(t, render.GhostRune, cell(s, 6, 2))
	assert.Equal(t, render.GhostRune, cell(s, 7, 2))
	assert.Equal(t, render.DefaultTheme().GhostBox, style(s, 6, 2))
}

func TestDrawGraph(t *testing.T) {
	s, r, grid, g := setup(t, ring)
	r.DrawGrid(grid)
	r.DrawGraph(g)

	cases := []struct {
		x, y int
		want rune
	}{
		{4, 2, '┌'}, {5, 2, '─'},
		{6, 2, '─'}, {7, 2, '─'},
		{8, 2, '┐'}, {9, 2, ' '},
		{4, 3, '│'}, {8, 3, '│'},
		{4, 4, '└'}, {6, 4, '─'}, {8, 4, '┘'},
		{6, 3, render.WallRune},
	}
	for _, tc := range cases {
		assert.Equal(t, string(tc.want), string(cell(s, tc.x, tc.y)), "cell (%d,%d)", tc.x, tc.y)
	}
}

func TestDrawGraph_Tunnel(t *testing.T) {
	s := newScreen(t)
	r := render.New(s)
	grid := tilegrid.MustParse(`
		wwwwww
		wwwwww
		pppwwp
		wwwwww`, slope)
	r.DrawGrid(grid)
	r.DrawGraph(mazegraph.Build(grid, mazegraph.DefaultSeed))

	tunnel := render.DefaultTheme().Tunnel
	assert.Equal(t, '─', cell(s, 0, 2))
	assert.Equal(t, tunnel, style(s, 0, 2))
	assert.Equal(t, '╶', cell(s, 10, 2))
	assert.Equal(t, tunnel, style(s, 10, 2))
	assert.Equal(t, ' ', cell(s, 11, 2), "no stroke across the border")
	assert.Equal(t, render.DefaultTheme().Vertex, style(s, 2, 2))
}

func TestDrawPath(t *testing.T) {
	s, r, _, g := setup(t, ring)
	c := chase.Chase{
		Pursuer: edge(t, g, 2, 2, mazegraph.Right), // on (3,2)
		Quarry:  edge(t, g, 2, 3, mazegraph.Up),    // on (2,2)
	}
	path, ok := c.Path(g)
	require.True(t, ok)
	r.DrawPath(g, path)

	cases := []struct {
		x, y int
		want rune
	}{
		{8, 2, '→'}, {7, 2, '─'},
		{8, 3, '↓'}, {8, 4, '↓'},
		{6, 4, '←'}, {7, 4, '─'},
		{4, 4, '←'}, {5, 4, '─'},
		{4, 3, '↑'}, {4, 2, '↑'},
	}
	for _, tc := range cases {
		assert.Equal(t, string(tc.want), string(cell(s, tc.x, tc.y)), "cell (%d,%d)", tc.x, tc.y)
	}
	assert.Equal(t, render.DefaultTheme().Chase, style(s, 8, 2))
}

func TestFrame(t *testing.T) {
	s, r, grid, g := setup(t, ring)
	c := chase.Chase{
		Pursuer: edge(t, g, 2, 2, mazegraph.Right),
		Quarry:  edge(t, g, 2, 3, mazegraph.Up),
	}
	r.Frame(render.State{Grid: grid, Graph: g, ShowGraph: true, Chase: &c, Status: "seed 1"})

	assert.Equal(t, render.PursuerRune, cell(s, 6, 2))
	assert.Equal(t, render.QuarryRune, cell(s, 4, 2))
	assert.Equal(t, '↓', cell(s, 8, 3))
	assert.Equal(t, "seed 1", string([]rune{
		cell(s, 0, 6), cell(s, 1, 6), cell(s, 2, 6), cell(s, 3, 6), cell(s, 4, 6), cell(s, 5, 6),
	}))

	// without the overlay or chase only tiles remain
	r.Frame(render.State{Grid: grid, Graph: g})
	assert.Equal(t, ' ', cell(s, 6, 2))
	assert.Equal(t, ' ', cell(s, 0, 6))
}

func TestWithTheme(t *testing.T) {
	th := render.DefaultTheme()
	th.Wall = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	s := newScreen(t)
	r := render.New(s, render.WithTheme(th))
	r.DrawGrid(tilegrid.MustParse("wp", nil))

	assert.Equal(t, th.Wall, style(s, 0, 0))
}
