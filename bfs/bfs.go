// Package bfs provides breadth-first search over implicit state graphs,
// returning unweighted shortest-path distances, parent links, and visit order.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/midway/meet"
)

// queueItem pairs a state with its BFS depth.
type queueItem[S any] struct {
	state S
	depth int
}

// walker encapsulates mutable BFS state.
type walker[S meet.State[S, T], T any] struct {
	opts  BFSOptions
	ctx   context.Context
	queue []queueItem[S]
	res   *Result[S]

	goal    S
	hasGoal bool
	reached bool
}

// BFS runs breadth-first search from start, applying any number of
// functional Options. Returns ErrOptionViolation for bad options, any
// user-supplied hook error, or the context error on cancellation.
func BFS[S meet.State[S, T], T any](start S, opts ...Option) (*Result[S], error) {
	w, err := newWalker[S, T](opts)
	if err != nil {
		return nil, err
	}
	w.enqueue(start, 0, start, false)

	return w.res, w.loop()
}

// ShortestPath runs BFS from start until goal is visited and returns the
// path between them, both included. Returns ErrNoPath if the search ends
// (MaxDepth or a finite component) without reaching goal.
func ShortestPath[S meet.State[S, T], T any](start, goal S, opts ...Option) ([]S, error) {
	w, err := newWalker[S, T](opts)
	if err != nil {
		return nil, err
	}
	w.goal, w.hasGoal = goal, true
	w.enqueue(start, 0, start, false)
	if err := w.loop(); err != nil {
		return nil, err
	}
	if !w.reached {
		return nil, fmt.Errorf("%w: %s unreachable from %s", ErrNoPath, goal, start)
	}

	return w.res.PathTo(goal)
}

// Distance returns the number of transitions on a shortest path from start
// to goal.
func Distance[S meet.State[S, T], T any](start, goal S, opts ...Option) (int, error) {
	path, err := ShortestPath[S, T](start, goal, opts...)
	if err != nil {
		return 0, err
	}
	return len(path) - 1, nil
}

// newWalker builds options and catches any invalid ones immediately.
func newWalker[S meet.State[S, T], T any](opts []Option) (*walker[S, T], error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &walker[S, T]{
		opts: o,
		ctx:  o.Ctx,
		res: &Result[S]{
			Depth:  make(map[S]int),
			Parent: make(map[S]S),
		},
	}, nil
}

// enqueue marks s discovered at depth d, calls OnEnqueue, records its parent,
// and adds it to the queue.
func (w *walker[S, T]) enqueue(s S, d int, parent S, hasParent bool) {
	w.res.Depth[s] = d
	if hasParent {
		w.res.Parent[s] = parent
	}
	if w.opts.OnEnqueue != nil {
		w.opts.OnEnqueue(s.String(), d)
	}
	w.queue = append(w.queue, queueItem[S]{state: s, depth: d})
}

// loop processes the queue until empty, goal, error, or cancellation.
func (w *walker[S, T]) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if w.hasGoal && item.state == w.goal {
			w.reached = true
			return nil
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker[S, T]) dequeue() queueItem[S] {
	item := w.queue[0]
	w.queue = w.queue[1:]
	if w.opts.OnDequeue != nil {
		w.opts.OnDequeue(item.state.String(), item.depth)
	}
	return item
}

// visit records the state in Order and calls OnVisit.
func (w *walker[S, T]) visit(item queueItem[S]) error {
	w.res.Order = append(w.res.Order, item.state)
	if w.opts.OnVisit == nil {
		return nil
	}
	if err := w.opts.OnVisit(item.state.String(), item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %q: %w", item.state.String(), err)
	}
	return nil
}

// enqueueNeighbors applies every transition of the item's state, honors
// MaxDepth, and enqueues each unseen neighbor.
func (w *walker[S, T]) enqueueNeighbors(item queueItem[S]) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, t := range item.state.Transitions() {
		nbr := item.state.Apply(t)
		// first time seen?
		if _, seen := w.res.Depth[nbr]; !seen {
			w.enqueue(nbr, nextDepth, item.state, true)
		}
	}
}
