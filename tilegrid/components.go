package tilegrid

// offsets are the four orthogonal steps used for toroidal adjacency.
var offsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// ConnectedComponents finds all regions of traversable tiles that are
// connected under toroidal 4-adjacency. Each component is a slice of
// column-major indices (i*Height + j) in BFS order; components are ordered by
// their smallest index. Use Coordinate to convert an index back to (i,j).
//
// Time:   O(W·H).
// Memory: O(W·H) for seen flags and output.
func ConnectedComponents(grid Grid) [][]int {
	w, h := grid.Width(), grid.Height()
	seen := make([]bool, w*h)
	var comps [][]int

	for i := 0; i < w; i++ {
		for j := 0; j < h; j++ {
			if !grid.CellType(i, j).Traversable() {
				continue
			}
			i0 := i*h + j
			if seen[i0] {
				continue
			}
			// BFS to collect component
			queue := []int{i0}
			seen[i0] = true
			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				ui, uj := u/h, u%h
				for _, d := range offsets {
					vi, vj := Wrap(grid, ui+d[0], uj+d[1])
					if !grid.CellType(vi, vj).Traversable() {
						continue
					}
					v := vi*h + vj
					if !seen[v] {
						seen[v] = true
						queue = append(queue, v)
					}
				}
			}
			comps = append(comps, queue)
		}
	}
	return comps
}

// Coordinate converts a column-major index produced by ConnectedComponents
// back to (i,j).
func Coordinate(grid Grid, idx int) (i, j int) {
	return idx / grid.Height(), idx % grid.Height()
}
