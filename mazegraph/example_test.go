package mazegraph_test

import (
	"fmt"

	"github.com/katalvlaran/mazepath/mazegraph"
	"github.com/katalvlaran/mazepath/tilegrid"
)

// ExampleBuild lists the edges of a maze with a tunnel through its side borders.
func ExampleBuild() {
	grid := tilegrid.MustParse(`
		wwwwww
		wwwwww
		pppwwp
		wwwwww`, nil)
	g := mazegraph.Build(grid, mazegraph.DefaultSeed)

	for _, v := range g.Vertices() {
		for _, e := range g.OutgoingEdges(v) {
			edge := g.Edge(e)
			fmt.Printf("%v -%v-> %v w=%.2f tunnel=%v\n",
				g.Loc(edge.Tail), edge.Direction, g.Loc(edge.Head), edge.Weight, g.IsTunnel(e))
		}
	}

	// Output:
	// (2,2) -LEFT-> (1,2) w=0.25 tunnel=false
	// (1,2) -LEFT-> (0,2) w=0.25 tunnel=false
	// (1,2) -RIGHT-> (2,2) w=1.75 tunnel=false
	// (0,2) -LEFT-> (5,2) w=1.75 tunnel=true
	// (0,2) -RIGHT-> (1,2) w=1.75 tunnel=false
	// (5,2) -RIGHT-> (0,2) w=0.25 tunnel=true
}

func ExampleGraph_ClosestTo() {
	grid := tilegrid.MustParse(`
		wwwwwwww
		wwwwwwww
		wwppppww
		wwpwwpww
		wwpwwpww
		wwppppww
		wwwwwwww
		wwwwwwww`, nil)
	g := mazegraph.Build(grid, mazegraph.DefaultSeed)

	fmt.Println(g.Loc(g.ClosestTo(0, 0)))
	fmt.Println(g.Loc(g.ClosestTo(7, 7)))
	fmt.Println(g.Loc(g.ClosestTo(4, 4)))

	// Output:
	// (2,2)
	// (5,5)
	// (4,5)
}
