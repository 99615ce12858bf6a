// Package tilegrid is the tile-grid source consumed by the maze graph builder.
//
// A grid is a rectangle of Width×Height tiles indexed by (i, j), where i is the
// column (increasing to the right) and j is the row (increasing downward). Each
// tile carries a TileType and a scalar elevation. Only Path tiles are
// traversable; every other classification is treated uniformly as a blocker.
//
// Adjacency in this package is toroidal: stepping off one edge of the grid
// wraps around to the opposite edge, which is how "tunnel" connections between
// boundary tiles arise.
//
// Overview:
//
//   - Grid: the read-only adapter interface (dimensions, CellType, Elevation).
//   - TileGrid: an immutable, deep-copied implementation of Grid.
//   - Parse: builds a TileGrid from a 'w'/'p'/'g' text template.
//   - ConnectedComponents: toroidal 4-connected regions of Path tiles, used to
//     check the single-component precondition of the graph builder.
//
// Errors (sentinel):
//
//   - ErrEmptyGrid      if the input has no columns or no rows.
//   - ErrNonRectangular if columns have differing lengths.
//   - ErrShapeMismatch  if the elevation array shape differs from the tile array.
//   - ErrUnknownTile    if a template contains an unrecognised character.
package tilegrid
