// Package bfs provides a single-direction breadth-first search over an
// implicit state graph, returning unweighted distances, parent links and
// visit order.
//
// What
//
//   - Explore states in non-decreasing distance (transition count) from a
//     start state, using the meet.State contract to enumerate neighbors.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from state → distance from start
//   - Parent: map from state → its predecessor in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (when a state is first discovered)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Honors MaxDepth (d>0) or explicit "no limit" (d==0).
//
// Why
//
//   - Reference distances for checking meet.FindPath on small graphs.
//   - Reachability and level layering of finite state spaces.
//
// Unlike meet.FindPath this search stores a parent for every discovered
// state, so its memory grows with everything explored. On an infinite graph
// BFS only terminates with a MaxDepth, a cancelled context, or (for
// ShortestPath) when the goal is found.
//
// Determinism
//
//	States are enqueued in the order their Transitions are reported, so the
//	visit sequence is reproducible for a deterministic domain.
//
// Complexity (V = states reached, E = transitions applied)
//
//   - Time:   O(V + E)
//   - Memory: O(V)       (for queue, Depth map, Parent map)
//
// Usage
//
//	res, err := bfs.BFS[gridgraph.Cell, gridgraph.Move](start, bfs.WithMaxDepth(10))
//	path, err := bfs.ShortestPath[gridgraph.Cell, gridgraph.Move](start, goal)
//
// Errors
//
//   - ErrOptionViolation  if an invalid Option was supplied (e.g. negative MaxDepth).
//   - ErrNoPath           if ShortestPath exhausted the search without reaching goal.
//   - Wrapped user-supplied hook errors from OnVisit.
//   - ctx.Err() on cancellation.
package bfs
