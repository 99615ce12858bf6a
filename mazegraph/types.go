package mazegraph

import (
	"errors"
	"fmt"
)

// Sentinel errors. Build panics with these wrapped when its contract is violated.
var (
	// ErrSeedNotTraversable indicates the seed coordinate is not a traversable tile.
	ErrSeedNotTraversable = errors.New("mazegraph: seed tile is not traversable")

	// ErrDisconnected indicates traversable tiles unreachable from the seed.
	ErrDisconnected = errors.New("mazegraph: traversable tiles do not form a single component")

	// ErrNegativeWeight indicates a weight function produced a negative or NaN weight.
	ErrNegativeWeight = errors.New("mazegraph: edge weight must be non-negative")

	// ErrSeedOutOfBounds indicates a seed coordinate outside the grid.
	ErrSeedOutOfBounds = errors.New("mazegraph: seed coordinate out of bounds")
)

// Coordinate is a tile position: I is the column, J is the row.
type Coordinate struct {
	I, J int
}

// String formats c as "(i,j)".
func (c Coordinate) String() string { return fmt.Sprintf("(%d,%d)", c.I, c.J) }

// Direction is one of the four orthogonal travel directions on the grid.
type Direction uint8

const (
	Left Direction = iota
	Right
	Up
	Down
)

// Directions lists every Direction in enumeration order.
var Directions = [4]Direction{Left, Right, Up, Down}

// Reverse returns the opposite direction. Reverse is an involution.
func (d Direction) Reverse() Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	default:
		return Up
	}
}

// Delta returns the column and row step of one move in direction d.
func (d Direction) Delta() (di, dj int) {
	switch d {
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	case Up:
		return 0, -1
	default:
		return 0, 1
	}
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "LEFT"
	case Right:
		return "RIGHT"
	case Up:
		return "UP"
	case Down:
		return "DOWN"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// VertexID addresses a vertex in a Graph's vertex arena.
type VertexID int32

// EdgeID addresses an edge in a Graph's edge arena.
type EdgeID int32

const (
	// NoVertex is the VertexID returned when no vertex applies.
	NoVertex VertexID = -1
	// NoEdge marks the absence of an outgoing edge in some direction.
	NoEdge EdgeID = -1
)

// Vertex is one traversable tile together with its outgoing edges,
// at most one per Direction.
type Vertex struct {
	Loc   Coordinate
	edges [4]EdgeID
}

// EdgeInDirection returns the vertex's outgoing edge in direction d, if any.
func (v Vertex) EdgeInDirection(d Direction) (EdgeID, bool) {
	e := v.edges[d]
	return e, e != NoEdge
}

// Degree returns the number of outgoing edges.
func (v Vertex) Degree() int {
	n := 0
	for _, e := range v.edges {
		if e != NoEdge {
			n++
		}
	}
	return n
}

// Edge is a directed, weighted connection leaving Tail in Direction toward Head.
type Edge struct {
	Tail      VertexID
	Head      VertexID
	Direction Direction
	Weight    float64
}

// WeightFunc maps the elevations at an edge's tail and head to its weight.
// It must never return a negative value.
type WeightFunc func(tailElev, headElev float64) float64

// Options configures Build.
//
// WeightFunc        – weight of each directed edge (default EdgeWeight).
// CheckConnectivity – after discovery, panic with ErrDisconnected unless every
//
//	traversable tile became a vertex (default true).
type Options struct {
	WeightFunc        WeightFunc
	CheckConnectivity bool
}

// Option represents a functional option for configuring Build.
type Option func(*Options)

// WithWeightFunc replaces the edge weight function. A nil fn is ignored.
func WithWeightFunc(fn WeightFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.WeightFunc = fn
		}
	}
}

// WithoutConnectivityCheck skips the O(W×H) post-build check that the
// traversable region is a single component. Intended for grids already
// validated by their producer.
func WithoutConnectivityCheck() Option {
	return func(o *Options) {
		o.CheckConnectivity = false
	}
}

// DefaultOptions returns the Options used when Build receives none.
func DefaultOptions() Options {
	return Options{
		WeightFunc:        EdgeWeight,
		CheckConnectivity: true,
	}
}
