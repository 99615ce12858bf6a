package tilegrid

import (
	"errors"
)

// Sentinel errors for tilegrid construction.
var (
	// ErrEmptyGrid indicates the input has no columns or no rows.
	ErrEmptyGrid = errors.New("tilegrid: grid must have at least one column and one row")
	// ErrNonRectangular indicates columns of differing lengths.
	ErrNonRectangular = errors.New("tilegrid: all columns must have the same length")
	// ErrShapeMismatch indicates the elevations do not have the same shape as the tile types.
	ErrShapeMismatch = errors.New("tilegrid: elevations must have the same shape as tile types")
	// ErrUnknownTile indicates a template character that does not name a tile type.
	ErrUnknownTile = errors.New("tilegrid: unknown tile character")
)

// TileType classifies a single tile of the grid.
type TileType uint8

const (
	// Wall tiles block movement.
	Wall TileType = iota
	// Path tiles are traversable and become graph vertices.
	Path
	// GhostBox tiles enclose the pursuers' pen; not traversable for graph purposes.
	GhostBox
)

// Traversable reports whether a tile of this type is connectable.
func (t TileType) Traversable() bool { return t == Path }

// String returns the template character for t.
func (t TileType) String() string {
	switch t {
	case Wall:
		return "w"
	case Path:
		return "p"
	case GhostBox:
		return "g"
	}
	return "?"
}

// Grid is the read-only view of a tile grid that graph construction consumes.
// Implementations must be safe for concurrent reads.
type Grid interface {
	// Width returns the number of columns.
	Width() int
	// Height returns the number of rows.
	Height() int
	// CellType returns the type of the tile in column i, row j.
	CellType(i, j int) TileType
	// Elevation returns the elevation of the tile in column i, row j.
	Elevation(i, j int) float64
}

// ElevationFunc supplies an elevation for column i, row j.
type ElevationFunc func(i, j int) float64

// GradientElevation slopes 2 per column and 1 per row from the top-left corner.
// It is the default elevation used by Parse.
func GradientElevation(i, j int) float64 {
	return 2.0*float64(i) + float64(j)
}

// TileGrid is an immutable Grid backed by column-major arrays:
// types[i][j] and elevations[i][j] describe column i, row j.
type TileGrid struct {
	width, height int
	types         [][]TileType
	elevations    [][]float64
}
