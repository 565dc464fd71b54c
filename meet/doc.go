// Package meet finds shortest paths between two states of an implicit graph
// that is far too large to materialize, using bidirectional breadth-first
// search and recursive "meet in the middle" path reconstruction.
//
// What
//
//   - The graph is never built. A domain supplies a State type that knows
//     how to compare itself (Go equality), print itself (fmt.Stringer),
//     enumerate its outgoing Transitions, and Apply one of them.
//   - Frontier expands one direction level by level, one new state per call.
//   - Solver alternates two Frontiers (from source and from target) and
//     reports a state lying on a shortest path strictly between them.
//   - FindPath bisects the problem at that state and recurses on both halves,
//     so no parent pointers are ever stored.
//
// Why
//
//   - A plain BFS with a parent map costs memory proportional to everything
//     explored. Bidirectional search explores two balls of radius d/2
//     instead of one of radius d, and recursion rebuilds the full path from
//     single meeting states.
//   - Expanding lazily, one transition at a time, bounds the extra work either
//     side performs before a meeting is noticed to one node's branching factor
//     instead of a whole level.
//
// Guarantees
//
//   - Every returned path is a shortest path under unit edge cost.
//   - The first element is the source, the last the target.
//   - FindPath(x, x) returns [x]; adjacent endpoints return two elements.
//   - Among equally short paths the choice depends on transition order; it is
//     deterministic for a deterministic domain but not canonical.
//
// Preconditions
//
//   - The reverse search walks transitions outward from the target, so the
//     graph must be symmetric: if b = a.Apply(t) then some transition of b
//     leads back to a.
//   - Equality must be consistent with identity of states. A domain that makes
//     two different configurations compare equal corrupts the visited sets.
//
// Complexity (b = branching factor, d = distance)
//
//   - Time:   O(d · b^(d/2)) transition applications over the whole recursion.
//   - Memory: O(b^(d/2)) for the two visited sets of the largest search.
//
// Usage
//
//	path, err := meet.FindPath[Cell, Move](from, to)
//	if err != nil {
//	    // ErrNoPath, ErrBudgetExceeded, ErrOptionViolation or ctx.Err()
//	}
//
//	// Bounding the work on graphs that may be disconnected or infinite:
//	path, err = meet.FindPath[Cell, Move](from, to,
//	    meet.WithContext(ctx),
//	    meet.WithMaxDiscoveries(1_000_000),
//	    meet.WithLogger(logger),
//	)
//
// Options
//
//   - WithContext(ctx):          cancellation and deadlines.
//   - WithLogger(l):             zap logger for level and meeting diagnostics.
//   - WithMaxDiscoveries(n):     cap on states discovered across the whole call.
//   - WithOnLevel(fn):           hook called whenever a direction finishes a level.
//   - WithOnMeet(fn):            hook called whenever a meeting state is accepted.
//
// Errors
//
//   - ErrNoPath            a direction exhausted its component without meeting.
//   - ErrBudgetExceeded    WithMaxDiscoveries was reached.
//   - ErrNoInterior        Solver.Run on equal or adjacent endpoints.
//   - ErrOptionViolation   an invalid Option was supplied.
//   - ErrInvalidHop        Verify found two consecutive states not connected.
//   - ErrEmptyPath         Verify was given no states.
package meet
