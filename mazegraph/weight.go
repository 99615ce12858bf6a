package mazegraph

const (
	// MaxElevationDelta bounds the elevation change an edge weight responds to.
	MaxElevationDelta = 0.25
	// ClimbFactor scales the clamped elevation change into weight.
	ClimbFactor = 3.0
	// MinEdgeWeight and MaxEdgeWeight are the bounds of EdgeWeight.
	MinEdgeWeight = 1 - ClimbFactor*MaxElevationDelta
	MaxEdgeWeight = 1 + ClimbFactor*MaxElevationDelta
)

// EdgeWeight returns the weight of an edge from a tile at elevation tailElev
// to a tile at elevation headElev. Uphill edges cost more than downhill ones;
// the elevation change is clamped to ±MaxElevationDelta, so the result always
// lies in [MinEdgeWeight, MaxEdgeWeight] = [0.25, 1.75].
//
// Call it once per direction, with the arguments swapped, to weight both
// edges of an adjacency.
func EdgeWeight(tailElev, headElev float64) float64 {
	diff := min(max(headElev-tailElev, -MaxElevationDelta), MaxElevationDelta)
	w := 1 + ClimbFactor*diff
	if w < 0 {
		panic(ErrNegativeWeight)
	}
	return w
}
