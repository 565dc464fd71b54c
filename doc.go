// Package midway finds shortest paths in graphs too large to write down,
// by searching from both ends at once and meeting in the middle.
//
// 🚀 What is midway?
//
//	A graph is described only by its states: each state knows its own
//	transitions and where they lead. midway grows one breadth-first
//	frontier from the source and one from the target, finds a state
//	strictly inside a shortest path, and recurses on both halves. Memory
//	stays proportional to the two frontiers instead of everything a
//	one-sided search would visit.
//
// ✨ Packages
//
//	meet/         the engine: State contract, Frontier, Solver, FindPath, Verify
//	bfs/          plain breadth-first search over the same states (reference distances)
//	gridgraph/    grid positions with walls, 4- or 8-connected
//	cube/         a bit-packed Rubik's cube with 18 layer turns
//	cmd/midway/   CLI: grid, cube and bench commands
//
// Quick example:
//
//	g, _ := gridgraph.Rectangle(6, 4, gridgraph.Conn4)
//	a, _ := g.Cell(0, 0)
//	b, _ := g.Cell(2, 1)
//	path, err := meet.FindPath[gridgraph.Cell, gridgraph.Move](a, b)
//	// path: (0,0) … (2,1), four cells
//
// Any comparable type with Transitions, Apply and String can be searched
// the same way, as long as every transition can be undone by another one.
//
//	go install github.com/katalvlaran/midway/cmd/midway@latest
package midway
