package pathfinding_test

import (
	"bufio"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// simpleGraph is a labelled test graph parsed from text, one edge per line:
//
//	tail -> head [weight]   directed edge
//	tail -- head [weight]   pair of directed edges, one each way
//
// A missing weight defaults to 1. Edge ids are dense ints in creation order.
type simpleGraph struct {
	out   map[string][]int
	tails []string
	heads []string
	wts   []float64
	byEnd map[[2]string]int
}

func mustSimpleGraph(text string) *simpleGraph {
	g := &simpleGraph{out: map[string][]int{}, byEnd: map[[2]string]int{}}
	sc := bufio.NewScanner(strings.NewReader(text))
	for sc.Scan() {
		f := strings.Fields(sc.Text())
		if len(f) == 0 {
			continue
		}
		if len(f) < 3 || len(f) > 4 {
			panic(fmt.Sprintf("simpleGraph: malformed line %q", sc.Text()))
		}
		w := 1.0
		if len(f) == 4 {
			var err error
			if w, err = strconv.ParseFloat(f[3], 64); err != nil {
				panic(err)
			}
		}
		switch f[1] {
		case "->":
			g.add(f[0], f[2], w)
		case "--":
			g.add(f[0], f[2], w)
			g.add(f[2], f[0], w)
		default:
			panic(fmt.Sprintf("simpleGraph: unknown edge kind %q", f[1]))
		}
	}
	return g
}

func (g *simpleGraph) add(tail, head string, w float64) {
	id := len(g.tails)
	g.tails = append(g.tails, tail)
	g.heads = append(g.heads, head)
	g.wts = append(g.wts, w)
	g.out[tail] = append(g.out[tail], id)
	if _, ok := g.out[head]; !ok {
		g.out[head] = nil
	}
	g.byEnd[[2]string{tail, head}] = id
}

// edge returns the id of tail→head; panics if absent.
func (g *simpleGraph) edge(tail, head string) int {
	id, ok := g.byEnd[[2]string{tail, head}]
	if !ok {
		panic(fmt.Sprintf("simpleGraph: no edge %s->%s", tail, head))
	}
	return id
}

func (g *simpleGraph) vertices() []string {
	vs := make([]string, 0, len(g.out))
	for v := range g.out {
		vs = append(vs, v)
	}
	sort.Strings(vs)
	return vs
}

func (g *simpleGraph) OutgoingEdges(v string) []int { return g.out[v] }
func (g *simpleGraph) Tail(e int) string            { return g.tails[e] }
func (g *simpleGraph) Head(e int) string            { return g.heads[e] }
func (g *simpleGraph) Weight(e int) float64         { return g.wts[e] }
