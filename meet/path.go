package meet

import (
	"fmt"

	"go.uber.org/zap"
)

// reconstructor carries what the recursive halves of one FindPath share.
type reconstructor[S State[S, T], T any] struct {
	opts   Options
	budget *budget
	log    *zap.Logger
}

// FindPath returns a shortest path from source to target, both included.
//
// It asks a Solver for one state m strictly inside a shortest path, then
// solves source→m and m→target the same way and concatenates the pieces.
// Equal endpoints yield [source]; adjacent ones yield [source, target].
// The recursion depth is bounded by the path length because every meeting
// state is strictly closer to both ends than they are to each other.
//
// Returns ErrNoPath when target is unreachable within a finite component,
// ErrBudgetExceeded when WithMaxDiscoveries runs out, ErrOptionViolation for
// bad options, or the context error on cancellation. Without a budget or a
// deadline the call does not return if the graph is infinite and target is
// unreachable.
func FindPath[S State[S, T], T any](source, target S, opts ...Option) ([]S, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if source == target {
		return []S{source}, nil
	}

	r := &reconstructor[S, T]{
		opts:   o,
		budget: &budget{limit: o.MaxDiscoveries},
		log:    o.Logger,
	}
	inner, err := r.between(source, target, 0)
	if err != nil {
		return nil, err
	}

	path := make([]S, 0, len(inner)+2)
	path = append(path, source)
	path = append(path, inner...)
	path = append(path, target)
	r.log.Debug("path found",
		zap.Stringer("source", source),
		zap.Stringer("target", target),
		zap.Int("length", len(path)-1),
		zap.Int("discovered", r.budget.used),
	)

	return path, nil
}

// between returns the states strictly between source and target on a
// shortest path.
func (r *reconstructor[S, T]) between(source, target S, depth int) ([]S, error) {
	if source == target ||
		Adjacent[S, T](source, target) ||
		Adjacent[S, T](target, source) {
		return nil, nil
	}

	sv := newSolver[S, T](source, target, r.opts, r.budget)
	m, err := sv.Run()
	if err != nil {
		return nil, err
	}
	r.log.Debug("split",
		zap.Int("depth", depth),
		zap.Stringer("source", source),
		zap.Stringer("meeting", m),
		zap.Stringer("target", target),
		zap.Int("distance", sv.Stats().Distance),
	)

	left, err := r.between(source, m, depth+1)
	if err != nil {
		return nil, err
	}
	right, err := r.between(m, target, depth+1)
	if err != nil {
		return nil, err
	}

	inner := make([]S, 0, len(left)+1+len(right))
	inner = append(inner, left...)
	inner = append(inner, m)
	inner = append(inner, right...)

	return inner, nil
}

// Verify checks that path is non-empty and that each state is reachable from
// its predecessor by one of the predecessor's transitions.
func Verify[S State[S, T], T any](path []S) error {
	if len(path) == 0 {
		return ErrEmptyPath
	}
	for i := 1; i < len(path); i++ {
		if !Adjacent[S, T](path[i-1], path[i]) {
			return fmt.Errorf("%w: step %d from %s to %s", ErrInvalidHop, i, path[i-1], path[i])
		}
	}

	return nil
}
