package gridgraph

// ConnectedComponents finds all contiguous regions ("islands") of passable
// cells (CellValues[y][x] ≥ LandThreshold), according to gg.Conn connectivity.
// Returns a slice of components; each component is a slice of cell‐indices
// (row‐major) in ascending order.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	labels, count := gg.label()
	comps := make([][]int, count)
	for i, l := range labels {
		if l >= 0 {
			comps[l] = append(comps[l], i)
		}
	}
	return comps
}

// Component returns the cell indices of component i, as numbered by
// ConnectedComponents. Returns ErrComponentIndex for an invalid i.
func (gg *GridGraph) Component(i int) ([]int, error) {
	comps := gg.ConnectedComponents()
	if i < 0 || i >= len(comps) {
		return nil, ErrComponentIndex
	}
	return comps[i], nil
}

// Reachable reports whether a path of passable cells joins a and b.
// Both cells must belong to gg.
func (gg *GridGraph) Reachable(a, b Cell) bool {
	if a.grid != gg || b.grid != gg {
		return false
	}
	labels, _ := gg.label()
	la := labels[gg.index(a.X, a.Y)]
	return la >= 0 && la == labels[gg.index(b.X, b.Y)]
}

// label assigns every passable cell the number of its component, walls -1.
// Components are numbered in row-major order of their first cell.
func (gg *GridGraph) label() ([]int, int) {
	total := gg.Width * gg.Height
	labels := make([]int, total)
	for i := range labels {
		labels[i] = -1
	}
	count := 0

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.Passable(x, y) {
				continue // wall
			}
			i0 := gg.index(x, y)
			if labels[i0] >= 0 {
				continue
			}
			// BFS to collect component
			queue := []int{i0}
			labels[i0] = count

			for qi := 0; qi < len(queue); qi++ {
				ux, uy := gg.Coordinate(queue[qi])
				for _, m := range gg.moves {
					dx, dy := m.Offset()
					vx, vy := ux+dx, uy+dy
					if !gg.Passable(vx, vy) {
						continue
					}
					vi := gg.index(vx, vy)
					if labels[vi] < 0 {
						labels[vi] = count
						queue = append(queue, vi)
					}
				}
			}
			count++
		}
	}
	return labels, count
}
