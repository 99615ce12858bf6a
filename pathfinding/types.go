package pathfinding

import (
	"errors"
)

// Sentinel errors. Both signal a broken caller contract and are raised via panic.
var (
	// ErrArrivalEdgeMismatch indicates an arrival edge whose head is not the source vertex.
	ErrArrivalEdgeMismatch = errors.New("pathfinding: arrival edge does not end at the source vertex")

	// ErrNegativeWeight indicates a negative edge weight was encountered.
	ErrNegativeWeight = errors.New("pathfinding: negative edge weight encountered")

	// ErrBrokenPathInfo indicates a PathEnd chain that does not lead back to the source.
	ErrBrokenPathInfo = errors.New("pathfinding: last-edge chain does not reach the source")
)

// Graph is the view of a weighted directed graph the engine needs.
// V identifies vertices and E identifies edges; both must be comparable.
type Graph[V, E comparable] interface {
	// OutgoingEdges returns the edges leaving v.
	OutgoingEdges(v V) []E
	// Tail returns the vertex e leaves.
	Tail(e E) V
	// Head returns the vertex e enters.
	Head(e E) V
	// Weight returns the non-negative weight of e.
	Weight(e E) float64
}

// PathEnd summarises the best known path from the source to one vertex.
//
// LastEdge is the final edge of that path. For the source vertex it is the
// arrival edge when one was supplied (HasLastEdge reports whether it is set);
// it only blocks the first step and is never part of a reconstructed path.
type PathEnd[E any] struct {
	Distance    float64
	LastEdge    E
	HasLastEdge bool
}

// Options configures a query.
//
// ArrivalEdge – edge by which the traveller reached the source; the first
//
//	step may not reverse it. Only honoured when HasArrivalEdge is set.
type Options[E any] struct {
	ArrivalEdge    E
	HasArrivalEdge bool
}

// Option represents a functional option for configuring a query.
type Option[E any] func(*Options[E])

// WithArrivalEdge forbids the first step of any path from reversing e.
// e's head must be the query's source vertex.
func WithArrivalEdge[E any](e E) Option[E] {
	return func(o *Options[E]) {
		o.ArrivalEdge = e
		o.HasArrivalEdge = true
	}
}

// WithOptionalArrivalEdge is WithArrivalEdge when ok is true and a no-op otherwise,
// for callers holding an edge together with a presence flag.
func WithOptionalArrivalEdge[E any](e E, ok bool) Option[E] {
	return func(o *Options[E]) {
		if ok {
			o.ArrivalEdge = e
			o.HasArrivalEdge = true
		}
	}
}

// DefaultOptions returns Options with no arrival edge.
func DefaultOptions[E any]() Options[E] {
	return Options[E]{}
}
