package gridgraph

import "fmt"

// Cell is a passable position on a GridGraph. Cells of different grids never
// compare equal. The zero Cell belongs to no grid and has no transitions.
type Cell struct {
	grid *GridGraph
	X, Y int
}

// Grid returns the grid the cell belongs to.
func (c Cell) Grid() *GridGraph { return c.grid }

// Transitions lists the moves leading to passable in-bounds neighbors, in the
// grid's move order.
func (c Cell) Transitions() []Move {
	if c.grid == nil {
		return nil
	}
	all := c.grid.Moves()
	out := make([]Move, 0, len(all))
	for _, m := range all {
		dx, dy := m.Offset()
		if c.grid.Passable(c.X+dx, c.Y+dy) {
			out = append(out, m)
		}
	}
	return out
}

// Apply returns the neighbor reached by m. m must be one of c.Transitions().
func (c Cell) Apply(m Move) Cell {
	dx, dy := m.Offset()
	return Cell{grid: c.grid, X: c.X + dx, Y: c.Y + dy}
}

// String implements fmt.Stringer.
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}
