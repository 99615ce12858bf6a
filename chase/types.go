package chase

import (
	"github.com/katalvlaran/mazepath/mazegraph"
)

// Chase pairs a pursuer with its quarry, each given by the edge it traversed last.
type Chase struct {
	Pursuer mazegraph.EdgeID
	Quarry  mazegraph.EdgeID
}
