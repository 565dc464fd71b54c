// Package gridgraph treats a 2D grid of cells as an implicit state graph,
// enabling meet-in-the-middle shortest paths between cells and component
// analysis of passable regions.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with tunable LandThreshold.
//   - Cell is a position on that grid and implements meet.State: its
//     transitions are the Moves leading to in-bounds passable neighbors.
//   - Identifies connected components ("islands") of cells with value ≥ LandThreshold,
//     and answers Reachable before a search is started.
//   - Rectangle builds an obstacle-free grid; ParseGrid reads ASCII maps.
//
// Why:
//
//   - Game maps: fewest-step routes around walls.
//   - Testing: grid distances are easy to reason about (Manhattan distance on
//     an empty Conn4 rectangle, Chebyshev distance under Conn8).
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//   - Path:                see package meet.
//
// Options:
//
//   - GridOptions.LandThreshold: minimum value considered passable.
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrComponentIndex: requested component index out of range.
//   - ErrOutOfBounds: requested cell lies outside the grid.
//   - ErrBlocked: requested cell is a wall.
//   - ErrBadGlyph: ParseGrid met an unknown map character.
//   - ErrNoPath: the two cells lie in different components.
package gridgraph
