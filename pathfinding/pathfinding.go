package pathfinding

import (
	"container/heap"
	"fmt"
)

// PathInfo computes, for every vertex reachable from src along a
// non-backtracking path, the distance of the path found and its last edge.
//
// The returned map always contains src with Distance 0 and, when an arrival
// edge was supplied, that edge as LastEdge. Every other entry's LastEdge is
// the final edge of a path of the reported Distance.
//
// Preconditions (panic on violation):
//  1. A supplied arrival edge must end at src (ErrArrivalEdgeMismatch).
//  2. Edge weights must be non-negative (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func PathInfo[V, E comparable](g Graph[V, E], src V, opts ...Option[E]) map[V]PathEnd[E] {
	cfg := DefaultOptions[E]()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.HasArrivalEdge && g.Head(cfg.ArrivalEdge) != src {
		panic(fmt.Errorf("%w: head %v, source %v", ErrArrivalEdgeMismatch, g.Head(cfg.ArrivalEdge), src))
	}

	r := &runner[V, E]{
		g:    g,
		info: make(map[V]PathEnd[E]),
	}
	r.init(src, cfg)
	r.process()

	return r.info
}

// PathTo reconstructs the path from src to dst recorded in info, which must
// come from PathInfo(g, src, ...). It returns false if dst is not in info.
// The path is empty (not nil) when src == dst.
// Complexity: O(path length).
func PathTo[V, E comparable](g Graph[V, E], info map[V]PathEnd[E], src, dst V) ([]E, bool) {
	if _, ok := info[dst]; !ok {
		return nil, false
	}

	// build reversed path
	path := []E{}
	for cur := dst; cur != src; {
		end := info[cur]
		if !end.HasLastEdge || len(path) > len(info) {
			panic(fmt.Errorf("%w: stuck at %v", ErrBrokenPathInfo, cur))
		}
		path = append(path, end.LastEdge)
		cur = g.Tail(end.LastEdge)
	}
	// reverse to get src → dst
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}

// ShortestNonBacktrackingPath returns the edges of the non-backtracking path
// from src to dst found by PathInfo, in travel order. ok is false when no such
// path exists; an empty path with ok true means src == dst.
func ShortestNonBacktrackingPath[V, E comparable](g Graph[V, E], src, dst V, opts ...Option[E]) ([]E, bool) {
	if src == dst {
		// The source is always reachable from itself, arrival edge or not.
		return []E{}, true
	}
	return PathTo(g, PathInfo(g, src, opts...), src, dst)
}

// PathWeight returns the summed weight of path's edges.
func PathWeight[V, E comparable](g Graph[V, E], path []E) float64 {
	total := 0.0
	for _, e := range path {
		total += g.Weight(e)
	}
	return total
}

// IsWalk reports whether each edge of path starts where the previous one ended.
func IsWalk[V, E comparable](g Graph[V, E], path []E) bool {
	for i := 1; i < len(path); i++ {
		if g.Head(path[i-1]) != g.Tail(path[i]) {
			return false
		}
	}
	return true
}

// runner holds the mutable state for a single PathInfo execution.
type runner[V, E comparable] struct {
	g    Graph[V, E]      // The input graph; read-only here.
	info map[V]PathEnd[E] // Best known path end per discovered vertex.
	pq   nodePQ[V]        // Min-heap of *nodeItem for lazy priority queue.
}

// init records the source and pushes it with distance 0.
func (r *runner[V, E]) init(src V, cfg Options[E]) {
	r.info[src] = PathEnd[E]{
		Distance:    0,
		LastEdge:    cfg.ArrivalEdge,
		HasLastEdge: cfg.HasArrivalEdge,
	}
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem[V]{id: src, dist: 0})
}

// process repeatedly settles the closest frontier vertex until none remain.
func (r *runner[V, E]) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem[V])

		// A stale entry: the vertex was re-queued at a smaller distance.
		if item.dist > r.info[item.id].Distance {
			continue
		}
		r.relax(item.id)
	}
}

// relax examines each edge leaving u, skipping the one that would reverse
// u's last edge, and improves the path ends of their heads.
func (r *runner[V, E]) relax(u V) {
	end := r.info[u]
	for _, e := range r.g.OutgoingEdges(u) {
		v := r.g.Head(e)

		// backtrack filter
		if end.HasLastEdge && r.g.Tail(end.LastEdge) == v {
			continue
		}

		w := r.g.Weight(e)
		if w < 0 {
			panic(fmt.Errorf("%w: edge %v→%v weight=%g", ErrNegativeWeight, u, v, w))
		}

		newDist := end.Distance + w
		if cur, seen := r.info[v]; seen && newDist >= cur.Distance {
			continue
		}

		r.info[v] = PathEnd[E]{Distance: newDist, LastEdge: e, HasLastEdge: true}
		heap.Push(&r.pq, &nodeItem[V]{id: v, dist: newDist})
	}
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem[V any] struct {
	id   V
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending. Improved
// distances are pushed as new items; outdated ones are skipped when popped.
type nodePQ[V any] []*nodeItem[V]

func (pq nodePQ[V]) Len() int           { return len(pq) }
func (pq nodePQ[V]) Less(i, j int) bool { return pq[i].dist < pq[j].dist }
func (pq nodePQ[V]) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x, which must be a *nodeItem, to the heap.
func (pq *nodePQ[V]) Push(x any) { *pq = append(*pq, x.(*nodeItem[V])) }

// Pop removes and returns the last element; heap.Pop moves the minimum there first.
func (pq *nodePQ[V]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
