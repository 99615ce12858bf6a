package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/katalvlaran/mazepath/chase"
	"github.com/katalvlaran/mazepath/mazegraph"
	"github.com/katalvlaran/mazepath/tilegrid"
)

// Theme holds the styles the renderer draws with.
//
// Path tiles are shaded by elevation: their background interpolates between
// grey levels PathLow (elevation ≤ 0) and PathHigh (elevation ≥ 1).
type Theme struct {
	Wall     tcell.Style
	GhostBox tcell.Style
	Vertex   tcell.Style
	Tunnel   tcell.Style
	Chase    tcell.Style
	Pursuer  tcell.Style
	Quarry   tcell.Style
	Status   tcell.Style

	PathLow, PathHigh int32
}

// DefaultTheme returns blue walls, a magenta ghost pen and a red chase path.
func DefaultTheme() Theme {
	return Theme{
		Wall:     tcell.StyleDefault.Foreground(tcell.ColorNavy),
		GhostBox: tcell.StyleDefault.Foreground(tcell.ColorPurple),
		Vertex:   tcell.StyleDefault.Foreground(tcell.ColorWhite),
		Tunnel:   tcell.StyleDefault.Foreground(tcell.ColorAqua),
		Chase:    tcell.StyleDefault.Foreground(tcell.ColorRed),
		Pursuer:  tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
		Quarry:   tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
		Status:   tcell.StyleDefault.Foreground(tcell.ColorSilver),
		PathLow:  24,
		PathHigh: 120,
	}
}

// Options configures a Renderer.
type Options struct {
	Theme Theme
}

// Option represents a functional option for configuring a Renderer.
type Option func(*Options)

// WithTheme replaces the default theme.
func WithTheme(t Theme) Option {
	return func(o *Options) {
		o.Theme = t
	}
}

// DefaultOptions returns the default renderer options.
func DefaultOptions() Options {
	return Options{Theme: DefaultTheme()}
}

// State is everything one frame shows.
//
// Graph is the maze graph of Grid; it is only drawn when ShowGraph is set.
// Chase may be nil to hide the chase. Status, when non-empty, is written on
// the line below the maze.
type State struct {
	Grid      tilegrid.Grid
	Graph     *mazegraph.Graph
	ShowGraph bool
	Chase     *chase.Chase
	Status    string
}

// Glyphs for tiles, markers and paths.
const (
	WallRune    = '█'
	GhostRune   = '▒'
	PursuerRune = 'G'
	QuarryRune  = 'C'
)

// junctions maps a direction mask (bit d set when the vertex has an edge in
// Direction d) to a box-drawing rune.
var junctions = [16]rune{
	'•', '╴', '╶', '─',
	'╵', '┘', '└', '┴',
	'╷', '┐', '┌', '┬',
	'│', '┤', '├', '┼',
}

// arrows indexes by mazegraph.Direction.
var arrows = [4]rune{'←', '→', '↑', '↓'}
