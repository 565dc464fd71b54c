package meet

// Frontier is one direction of a bidirectional search: a breadth-first
// expansion from a single root that yields newly discovered states one at a
// time, strictly in level order.
//
// Internally it holds the visited set (each state tagged with the level it
// was discovered at), the queue of states awaiting expansion at the active
// level, the queue being filled for the next level, and the node currently
// being expanded together with its not yet applied transitions.
//
// A Frontier is not safe for concurrent use.
type Frontier[S State[S, T], T any] struct {
	explored map[S]int
	current  []S
	next     []S

	node    S
	pending []T

	level     int
	exhausted bool

	// onLevel is called with a level once every state at that level has
	// been discovered.
	onLevel func(level, explored int)
}

// NewFrontier seeds a Frontier with root, explored at level 0 and waiting as
// the only entry of the next-level queue.
func NewFrontier[S State[S, T], T any](root S) *Frontier[S, T] {
	return &Frontier[S, T]{
		explored: map[S]int{root: 0},
		next:     []S{root},
		onLevel:  func(int, int) {},
	}
}

// Next discovers one new state and returns it with its level, i.e. its
// distance from the root. States already explored are skipped silently, so
// no state is ever returned twice. ok is false once every state reachable
// from the root has been discovered; on an infinite graph that never happens.
//
// Each call applies transitions only until it finds one unexplored state.
func (f *Frontier[S, T]) Next() (s S, level int, ok bool) {
	for {
		for len(f.pending) > 0 {
			t := f.pending[0]
			f.pending = f.pending[1:]

			s = f.node.Apply(t)
			if _, seen := f.explored[s]; seen {
				continue
			}
			f.explored[s] = f.level
			f.next = append(f.next, s)

			return s, f.level, true
		}
		if !f.advance() {
			var zero S
			return zero, f.level, false
		}
	}
}

// advance loads the next node to expand. When the active level has no
// nodes left it promotes the next-level queue and increments the level.
// Returns false when both queues are empty.
func (f *Frontier[S, T]) advance() bool {
	if len(f.current) == 0 {
		if len(f.next) == 0 {
			f.exhausted = true
			return false
		}
		if f.level > 0 {
			f.onLevel(f.level, len(f.explored))
		}
		f.current, f.next = f.next, make([]S, 0, len(f.next))
		f.level++
	}
	f.node = f.current[0]
	f.current = f.current[1:]
	f.pending = f.node.Transitions()

	return true
}

// Seen reports whether s has been discovered by this Frontier.
// Complexity: O(1).
func (f *Frontier[S, T]) Seen(s S) bool {
	_, ok := f.explored[s]
	return ok
}

// Level returns the level at which s was discovered.
func (f *Frontier[S, T]) Level(s S) (int, bool) {
	l, ok := f.explored[s]
	return l, ok
}

// Depth returns the level of the states currently being discovered.
func (f *Frontier[S, T]) Depth() int { return f.level }

// Completed returns the deepest level L such that every state at distance
// at most L from the root has already been discovered.
func (f *Frontier[S, T]) Completed() int {
	if len(f.current) == 0 && len(f.pending) == 0 {
		return f.level
	}
	return f.level - 1
}

// Len returns the number of discovered states, the root included.
func (f *Frontier[S, T]) Len() int { return len(f.explored) }

// Exhausted reports whether every state reachable from the root has been
// discovered.
func (f *Frontier[S, T]) Exhausted() bool { return f.exhausted }
