// Package gridgraph provides utilities to treat a 2D grid of integer cell values
// as an implicit graph. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Cells as meet.State values for meet-in-the-middle search
//   - Identification of connected components of passable cells
//
// Cells with value < LandThreshold are walls; cells with value ≥ LandThreshold are passable.
package gridgraph

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/midway/meet"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	// Precompute moves based on connectivity
	var moves []Move
	if opts.Conn == Conn8 {
		moves = []Move{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}
	} else {
		moves = []Move{North, East, South, West}
	}
	gg := &GridGraph{
		Width:         w,
		Height:        h,
		CellValues:    cells,
		Conn:          opts.Conn,
		LandThreshold: opts.LandThreshold,
		moves:         moves,
	}

	return gg, nil
}

// From2D builds a GridGraph with default LandThreshold and the given connectivity.
func From2D(values [][]int, conn Connectivity) (*GridGraph, error) {
	opts := DefaultGridOptions()
	opts.Conn = conn
	return NewGridGraph(values, opts)
}

// Rectangle builds a width×height grid without walls.
func Rectangle(width, height int, conn Connectivity) (*GridGraph, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	values := make([][]int, height)
	for y := range values {
		values[y] = make([]int, width)
		for x := range values[y] {
			values[y][x] = 1
		}
	}
	return From2D(values, conn)
}

// ParseGrid reads an ASCII map where '.' is passable and '#' is a wall.
// Blank lines and surrounding whitespace are ignored.
func ParseGrid(text string, conn Connectivity) (*GridGraph, error) {
	var values [][]int
	for n, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		row := make([]int, 0, len(line))
		for col, r := range line {
			switch r {
			case '.':
				row = append(row, 1)
			case '#':
				row = append(row, 0)
			default:
				return nil, fmt.Errorf("%w: %q at line %d column %d", ErrBadGlyph, r, n+1, col+1)
			}
		}
		values = append(values, row)
	}
	return From2D(values, conn)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Passable reports whether (x,y) is in bounds and not a wall.
// Complexity: O(1).
func (gg *GridGraph) Passable(x, y int) bool {
	return gg.InBounds(x, y) && gg.CellValues[y][x] >= gg.LandThreshold
}

// Moves returns the precomputed moves for the grid's connectivity.
// Should be used in all adjacency traversals to avoid branching.
// Complexity: O(1).
func (gg *GridGraph) Moves() []Move {
	return gg.moves
}

// Cell returns the cell at (x,y). Returns ErrOutOfBounds or ErrBlocked for
// coordinates that cannot take part in a search.
func (gg *GridGraph) Cell(x, y int) (Cell, error) {
	if !gg.InBounds(x, y) {
		return Cell{}, fmt.Errorf("%w: (%d,%d) in %d×%d grid", ErrOutOfBounds, x, y, gg.Width, gg.Height)
	}
	if !gg.Passable(x, y) {
		return Cell{}, fmt.Errorf("%w: (%d,%d)", ErrBlocked, x, y)
	}
	return Cell{grid: gg, X: x, Y: y}, nil
}

// Path returns a shortest path of cells from a to b, both included.
// Cells in different components fail fast with ErrNoPath instead of
// exhausting a search. opts are passed to meet.FindPath.
func (gg *GridGraph) Path(a, b Cell, opts ...meet.Option) ([]Cell, error) {
	if !gg.Reachable(a, b) {
		return nil, fmt.Errorf("%w: %s and %s", ErrNoPath, a, b)
	}
	return meet.FindPath[Cell, Move](a, b, opts...)
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}
