// Package meet defines the state contract, tunable options and sentinel
// errors for meet-in-the-middle search.
package meet

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Sentinel errors for search execution.
var (
	// ErrNoPath is returned when one direction has explored every state it can
	// reach without meeting the other one.
	ErrNoPath = errors.New("meet: no path between source and target")

	// ErrBudgetExceeded is returned when the discovery budget set through
	// WithMaxDiscoveries runs out before a path is found.
	ErrBudgetExceeded = errors.New("meet: discovery budget exceeded")

	// ErrNoInterior is returned by Solver.Run when source and target are equal
	// or adjacent, so no state lies strictly between them.
	ErrNoInterior = errors.New("meet: endpoints are equal or adjacent")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("meet: invalid option supplied")

	// ErrInvalidHop is returned by Verify when two consecutive states are not
	// connected by any transition.
	ErrInvalidHop = errors.New("meet: consecutive states are not connected")

	// ErrEmptyPath is returned by Verify for a path without states.
	ErrEmptyPath = errors.New("meet: empty path")
)

// State is the capability set a searchable domain must provide.
//
// S is the state type itself and T its transition type. States are compared
// with == and used as map keys, so S must be comparable and equal values must
// describe the same configuration. Transitions returns the complete ordered
// out-edge set of the state; it is called again for every expansion and must
// not have side effects. Apply must be deterministic for every transition the
// state itself reports.
type State[S any, T any] interface {
	comparable
	fmt.Stringer

	// Transitions lists the transitions applicable to this state.
	Transitions() []T

	// Apply returns the state reached by taking t from this state.
	Apply(t T) S
}

// Direction names the side a Frontier grows from.
type Direction int

const (
	// Forward grows from the source.
	Forward Direction = iota
	// Backward grows from the target.
	Backward
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// Option configures search behavior via functional arguments.
// If an Option is invalid (e.g. a negative budget), it is recorded
// internally and surfaced as ErrOptionViolation when the search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Ctx allows cancellation and deadlines. It is checked once per
	// discovered state.
	Ctx context.Context

	// Logger receives debug diagnostics. Defaults to a no-op logger.
	Logger *zap.Logger

	// MaxDiscoveries, if > 0, caps the number of states discovered across
	// all Solvers of one FindPath call. 0 disables the cap.
	MaxDiscoveries int

	// OnLevel is called when a direction has discovered every state at the
	// given level. explored is the size of that direction's visited set.
	OnLevel func(dir Direction, level, explored int)

	// OnMeet is called when a Solver settles on a meeting state.
	// distance is the length of the shortest path through it.
	OnMeet func(meeting fmt.Stringer, distance int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no-op logger
//   - no discovery cap
//   - no-op hooks
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		Logger:         zap.NewNop(),
		MaxDiscoveries: 0,
		OnLevel:        func(Direction, int, int) {},
		OnMeet:         func(fmt.Stringer, int) {},
		err:            nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger sets the logger used for debug diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMaxDiscoveries caps the number of states discovered by one search.
//
//	n > 0: stop with ErrBudgetExceeded once n states have been discovered
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxDiscoveries(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: MaxDiscoveries cannot be negative (%d)", ErrOptionViolation, n)
		default:
			o.MaxDiscoveries = n
		}
	}
}

// WithOnLevel registers a callback run whenever a direction completes a level.
func WithOnLevel(fn func(dir Direction, level, explored int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnLevel = fn
		}
	}
}

// WithOnMeet registers a callback run whenever a meeting state is accepted.
func WithOnMeet(fn func(meeting fmt.Stringer, distance int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnMeet = fn
		}
	}
}

// buildOptions applies opts over DefaultOptions and reports the first
// recorded violation.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// budget counts discoveries shared by every Solver of one search.
type budget struct {
	limit int
	used  int
}

// exhausted reports whether no further discovery is allowed.
func (b *budget) exhausted() bool {
	return b.limit > 0 && b.used >= b.limit
}

// Neighbors returns the states reachable from s by one transition, in
// transition order. Duplicates are kept.
func Neighbors[S State[S, T], T any](s S) []S {
	ts := s.Transitions()
	out := make([]S, 0, len(ts))
	for _, t := range ts {
		out = append(out, s.Apply(t))
	}

	return out
}

// Adjacent reports whether some transition of from leads to to.
func Adjacent[S State[S, T], T any](from, to S) bool {
	for _, t := range from.Transitions() {
		if from.Apply(t) == to {
			return true
		}
	}

	return false
}
