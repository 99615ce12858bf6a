package tilegrid

import (
	"bufio"
	"fmt"
	"strings"
	"unicode"
)

// Parse builds a TileGrid from a text template, one line per row:
// 'w' = Wall, 'p' = Path, 'g' = GhostBox. Whitespace inside or around lines is
// ignored and blank lines are skipped. Elevations come from elev, or from
// GradientElevation when elev is nil.
//
// Example:
//
//	wwwww
//	wwpww
//	wwwww
func Parse(template string, elev ElevationFunc) (*TileGrid, error) {
	if elev == nil {
		elev = GradientElevation
	}

	var rows [][]TileType
	sc := bufio.NewScanner(strings.NewReader(template))
	for sc.Scan() {
		var row []TileType
		for _, c := range sc.Text() {
			if unicode.IsSpace(c) {
				continue
			}
			t, err := tileFromRune(c)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d", err, len(rows)+1)
			}
			row = append(row, t)
		}
		if len(row) == 0 {
			continue
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}

	h, w := len(rows), len(rows[0])
	for j, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d tiles, want %d", ErrNonRectangular, j, len(row), w)
		}
	}

	// Transpose into column-major order.
	types := make([][]TileType, w)
	elevations := make([][]float64, w)
	for i := 0; i < w; i++ {
		types[i] = make([]TileType, h)
		elevations[i] = make([]float64, h)
		for j := 0; j < h; j++ {
			types[i][j] = rows[j][i]
			elevations[i][j] = elev(i, j)
		}
	}

	return New(types, elevations)
}

// MustParse is like Parse but panics on error. Intended for tests and fixtures.
func MustParse(template string, elev ElevationFunc) *TileGrid {
	g, err := Parse(template, elev)
	if err != nil {
		panic(err)
	}
	return g
}

func tileFromRune(c rune) (TileType, error) {
	switch c {
	case 'w':
		return Wall, nil
	case 'p':
		return Path, nil
	case 'g':
		return GhostBox, nil
	}
	return Wall, fmt.Errorf("%w %q", ErrUnknownTile, c)
}
