package meet

import (
	"math"

	"go.uber.org/zap"
)

// unbounded stands in for the completed level of an exhausted Frontier.
// Two of them still sum without overflow.
const unbounded = math.MaxInt / 4

// Stats summarizes the work performed by one Solver run.
type Stats struct {
	// Forward and Backward are the sizes of the two visited sets.
	Forward, Backward int
	// Distance is the source-target distance through the meeting state,
	// 0 if no meeting was found.
	Distance int
}

// Solver drives two Frontiers, one grown from the source and one from the
// target, until it can name a state that lies strictly inside a shortest
// source-target path.
type Solver[S State[S, T], T any] struct {
	source, target S

	forward  *Frontier[S, T]
	backward *Frontier[S, T]

	opts   Options
	budget *budget
	log    *zap.Logger

	best     S
	bestDist int // 0 while no meeting state is known
}

// NewSolver prepares a search between source and target. Invalid options are
// reported by Run.
func NewSolver[S State[S, T], T any](source, target S, opts ...Option) *Solver[S, T] {
	o, _ := buildOptions(opts)
	return newSolver[S, T](source, target, o, &budget{limit: o.MaxDiscoveries})
}

// newSolver wires a Solver to options and a budget shared with its caller.
func newSolver[S State[S, T], T any](source, target S, o Options, b *budget) *Solver[S, T] {
	sv := &Solver[S, T]{
		source:   source,
		target:   target,
		forward:  NewFrontier[S, T](source),
		backward: NewFrontier[S, T](target),
		opts:     o,
		budget:   b,
		log:      o.Logger,
	}
	sv.forward.onLevel = sv.levelHook(Forward)
	sv.backward.onLevel = sv.levelHook(Backward)

	return sv
}

// levelHook forwards level completion of one direction to the logger and to
// the OnLevel option.
func (sv *Solver[S, T]) levelHook(dir Direction) func(level, explored int) {
	return func(level, explored int) {
		sv.log.Debug("level finished",
			zap.Stringer("direction", dir),
			zap.Int("level", level),
			zap.Int("explored", explored),
		)
		sv.opts.OnLevel(dir, level, explored)
	}
}

// Run alternates single discoveries between the two directions. Every state
// discovered by one side is looked up in the other side's visited set; a hit
// that is neither root is a meeting state, and the sum of its two levels is
// the length of a path through it.
//
// Run returns the best meeting state as soon as the levels both sides have
// fully explored rule out any shorter one. The returned state therefore lies
// on a shortest path and differs from both endpoints.
//
// Errors: ErrNoInterior for equal or adjacent endpoints, ErrNoPath when a side
// runs out of states, ErrBudgetExceeded, ErrOptionViolation or ctx.Err().
func (sv *Solver[S, T]) Run() (S, error) {
	var zero S
	if sv.opts.err != nil {
		return zero, sv.opts.err
	}
	if sv.source == sv.target ||
		Adjacent[S, T](sv.source, sv.target) ||
		Adjacent[S, T](sv.target, sv.source) {
		return zero, ErrNoInterior
	}

	for {
		for _, pair := range [2][2]*Frontier[S, T]{
			{sv.forward, sv.backward},
			{sv.backward, sv.forward},
		} {
			// cancellation check (once per discovery)
			select {
			case <-sv.opts.Ctx.Done():
				return zero, sv.opts.Ctx.Err()
			default:
			}

			if err := sv.step(pair[0], pair[1]); err != nil {
				return zero, err
			}
			if sv.settled() {
				sv.log.Debug("meeting state found",
					zap.Stringer("state", sv.best),
					zap.Int("distance", sv.bestDist),
					zap.Int("forward", sv.forward.Len()),
					zap.Int("backward", sv.backward.Len()),
				)
				sv.opts.OnMeet(sv.best, sv.bestDist)
				return sv.best, nil
			}
			if sv.disconnected() {
				return zero, ErrNoPath
			}
		}
	}
}

// step discovers one state on f and records it if other has seen it too.
func (sv *Solver[S, T]) step(f, other *Frontier[S, T]) error {
	if f.Exhausted() {
		return nil
	}
	if sv.budget.exhausted() {
		return ErrBudgetExceeded
	}
	s, level, ok := f.Next()
	if !ok {
		return nil
	}
	sv.budget.used++

	otherLevel, seen := other.Level(s)
	if !seen || otherLevel == 0 {
		return nil
	}
	if d := level + otherLevel; sv.bestDist == 0 || d < sv.bestDist {
		sv.best, sv.bestDist = s, d
	}

	return nil
}

// reach is the completed level of f, unbounded once f is exhausted.
func reach[S State[S, T], T any](f *Frontier[S, T]) int {
	if f.Exhausted() {
		return unbounded
	}
	return f.Completed()
}

// settled reports whether the best meeting state is provably optimal.
//
// With Rf and Rb the completed levels of both sides, every interior state of
// a path of length d <= Rf+Rb is discovered by both sides, provided each side
// completed level 1. Once best-1 <= Rf+Rb, a shorter path would already have
// produced a better meeting state.
func (sv *Solver[S, T]) settled() bool {
	if sv.bestDist == 0 {
		return false
	}
	rf, rb := reach(sv.forward), reach(sv.backward)
	return rf >= 1 && rb >= 1 && rf+rb >= sv.bestDist-1
}

// disconnected reports whether no path can exist: one side discovered its
// whole component and the other completed level 1, yet nothing met.
func (sv *Solver[S, T]) disconnected() bool {
	if sv.bestDist != 0 {
		return false
	}
	return (sv.forward.Exhausted() && reach(sv.backward) >= 1) ||
		(sv.backward.Exhausted() && reach(sv.forward) >= 1)
}

// Stats reports the current sizes of both visited sets and the distance
// through the best meeting state.
func (sv *Solver[S, T]) Stats() Stats {
	return Stats{
		Forward:  sv.forward.Len(),
		Backward: sv.backward.Len(),
		Distance: sv.bestDist,
	}
}
