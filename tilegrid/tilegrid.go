package tilegrid

import (
	"fmt"
)

// New constructs a TileGrid from column-major tile types and elevations.
// Both inputs are deep-copied so later mutation by the caller has no effect.
//
// Returns ErrEmptyGrid if there are no columns or rows, ErrNonRectangular if
// any column length differs, and ErrShapeMismatch if the elevation shape does
// not match the type shape.
// Complexity: O(W×H) time and memory.
func New(types [][]TileType, elevations [][]float64) (*TileGrid, error) {
	if len(types) == 0 || len(types[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w, h := len(types), len(types[0])
	for i, col := range types {
		if len(col) != h {
			return nil, fmt.Errorf("%w: column %d has %d rows, want %d", ErrNonRectangular, i, len(col), h)
		}
	}
	if len(elevations) != w {
		return nil, fmt.Errorf("%w: %d elevation columns, want %d", ErrShapeMismatch, len(elevations), w)
	}
	for i, col := range elevations {
		if len(col) != h {
			return nil, fmt.Errorf("%w: elevation column %d has %d rows, want %d", ErrShapeMismatch, i, len(col), h)
		}
	}

	// Deep copy to prevent external mutation
	ts := make([][]TileType, w)
	es := make([][]float64, w)
	for i := 0; i < w; i++ {
		ts[i] = make([]TileType, h)
		copy(ts[i], types[i])
		es[i] = make([]float64, h)
		copy(es[i], elevations[i])
	}

	return &TileGrid{width: w, height: h, types: ts, elevations: es}, nil
}

// Width returns the number of columns.
func (g *TileGrid) Width() int { return g.width }

// Height returns the number of rows.
func (g *TileGrid) Height() int { return g.height }

// CellType returns the tile type at column i, row j. Panics if out of bounds.
func (g *TileGrid) CellType(i, j int) TileType { return g.types[i][j] }

// Elevation returns the elevation at column i, row j. Panics if out of bounds.
func (g *TileGrid) Elevation(i, j int) float64 { return g.elevations[i][j] }

// InBounds reports whether (i,j) lies within the grid boundaries.
// Complexity: O(1).
func (g *TileGrid) InBounds(i, j int) bool {
	return i >= 0 && i < g.width && j >= 0 && j < g.height
}

// Wrap reduces (i,j) onto the torus formed by joining opposite grid edges.
func Wrap(grid Grid, i, j int) (int, int) {
	w, h := grid.Width(), grid.Height()
	return ((i % w) + w) % w, ((j % h) + h) % h
}

// CountTraversable returns the number of traversable tiles in grid.
// Complexity: O(W×H).
func CountTraversable(grid Grid) int {
	n := 0
	for i := 0; i < grid.Width(); i++ {
		for j := 0; j < grid.Height(); j++ {
			if grid.CellType(i, j).Traversable() {
				n++
			}
		}
	}
	return n
}

// String renders the grid as a template accepted by Parse.
func (g *TileGrid) String() string {
	buf := make([]byte, 0, (g.width+1)*g.height)
	for j := 0; j < g.height; j++ {
		for i := 0; i < g.width; i++ {
			buf = append(buf, g.types[i][j].String()...)
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
