package bfs_test

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/katalvlaran/midway/bfs"
)

// table is an undirected adjacency list; neighbor order is insertion order.
type table map[string][]string

func newTable(edges ...string) table {
	t := table{}
	for _, e := range edges {
		u, v, _ := strings.Cut(e, "-")
		t[u] = append(t[u], v)
		if u != v {
			t[v] = append(t[v], u)
		}
	}
	return t
}

// node is a state of a table, identified by name.
type node struct {
	t  *table
	id string
}

func (n node) Transitions() []string { return (*n.t)[n.id] }
func (n node) Apply(to string) node  { return node{n.t, to} }
func (n node) String() string        { return n.id }

func (t *table) at(id string) node { return node{t, id} }

func ids(states []node) []string {
	out := make([]string, len(states))
	for i, s := range states {
		out[i] = s.id
	}
	return out
}

// TestBFS_Errors verifies that invalid options are rejected.
func TestBFS_Errors(t *testing.T) {
	g := newTable("A-B")
	if _, err := bfs.BFS[node, string](g.at("A"), bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
	if _, err := bfs.ShortestPath[node, string](g.at("A"), g.at("B"), bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("ShortestPath negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_SimpleTraversal covers a state without transitions.
func TestBFS_SimpleTraversal(t *testing.T) {
	g := table{"A": nil}
	res, err := bfs.BFS[node, string](g.at("A"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"A"}; !reflect.DeepEqual(ids(res.Order), want) {
		t.Errorf("Order = %v; want %v", ids(res.Order), want)
	}
	if d := res.Depth[g.at("A")]; d != 0 {
		t.Errorf("Depth[A] = %d; want 0", d)
	}
}

// TestCycleAndDepths covers a simple cycle and checks depths.
func TestCycleAndDepths(t *testing.T) {
	// A-B-C-D-A
	g := newTable("A-B", "B-C", "C-D", "D-A")

	res, err := bfs.BFS[node, string](g.at("A"))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := ids(res.Order), []string{"A", "B", "D", "C"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Order = %v; want %v", got, want)
	}
	for id, want := range map[string]int{"A": 0, "B": 1, "D": 1, "C": 2} {
		if got := res.Depth[g.at(id)]; got != want {
			t.Errorf("Depth[%s] = %d; want %d", id, got, want)
		}
	}
}

// TestBFS_Disconnected ensures BFS only explores the component of the start state.
func TestBFS_Disconnected(t *testing.T) {
	g := newTable("X-Y", "P-Q")

	resX, _ := bfs.BFS[node, string](g.at("X"))
	if !reflect.DeepEqual(ids(resX.Order), []string{"X", "Y"}) {
		t.Errorf("From X: got %v; want [X Y]", ids(resX.Order))
	}
	if _, err := bfs.ShortestPath[node, string](g.at("X"), g.at("Q")); !errors.Is(err, bfs.ErrNoPath) {
		t.Errorf("X→Q: want ErrNoPath, got %v", err)
	}
}

// TestBFS_MaxDepth verifies WithMaxDepth behavior for positive, zero (no limit), and large depths.
func TestBFS_MaxDepth(t *testing.T) {
	g := newTable("A-B", "B-C")
	if res, _ := bfs.BFS[node, string](g.at("A"), bfs.WithMaxDepth(1)); !reflect.DeepEqual(ids(res.Order), []string{"A", "B"}) {
		t.Errorf("MaxDepth=1: got %v; want [A B]", ids(res.Order))
	}
	if res, _ := bfs.BFS[node, string](g.at("A"), bfs.WithMaxDepth(0)); !reflect.DeepEqual(ids(res.Order), []string{"A", "B", "C"}) {
		t.Errorf("MaxDepth=0: got %v; want [A B C]", ids(res.Order))
	}
	if _, err := bfs.Distance[node, string](g.at("A"), g.at("C"), bfs.WithMaxDepth(1)); !errors.Is(err, bfs.ErrNoPath) {
		t.Errorf("MaxDepth=1 distance: want ErrNoPath, got %v", err)
	}
}

// TestBFS_SelfLoopAndDuplicates ensures repeated or looping transitions do not enqueue twice.
func TestBFS_SelfLoopAndDuplicates(t *testing.T) {
	g := newTable("A-A", "A-B", "A-B")
	res, _ := bfs.BFS[node, string](g.at("A"))
	if want := []string{"A", "B"}; !reflect.DeepEqual(ids(res.Order), want) {
		t.Errorf("SelfLoop/Duplicate: got %v; want %v", ids(res.Order), want)
	}
}

// TestBFS_Hooks asserts that hooks fire in the expected sequence and count.
func TestBFS_Hooks(t *testing.T) {
	g := newTable("A-B", "B-C")

	var enq, deq, vis []string
	makeEntry := func(prefix, id string, d int) string {
		return prefix + ":" + id + "@" + strconv.Itoa(d)
	}

	_, err := bfs.BFS[node, string](
		g.at("A"),
		bfs.WithOnEnqueue(func(id string, d int) { enq = append(enq, makeEntry("e", id, d)) }),
		bfs.WithOnDequeue(func(id string, d int) { deq = append(deq, makeEntry("d", id, d)) }),
		bfs.WithOnVisit(func(id string, d int) error { vis = append(vis, makeEntry("v", id, d)); return nil }),
	)
	if err != nil {
		t.Fatal(err)
	}

	wantDepths := []string{"A@0", "B@1", "C@2"}
	for i, suffix := range wantDepths {
		if !strings.HasSuffix(enq[i], suffix) {
			t.Errorf("OnEnqueue[%d] = %q, want suffix %q", i, enq[i], suffix)
		}
		if !strings.HasSuffix(deq[i], suffix) {
			t.Errorf("OnDequeue[%d] = %q, want suffix %q", i, deq[i], suffix)
		}
		if !strings.HasSuffix(vis[i], suffix) {
			t.Errorf("OnVisit[%d] = %q, want suffix %q", i, vis[i], suffix)
		}
	}
}

// TestBFS_VisitError stops at the first failing visit.
func TestBFS_VisitError(t *testing.T) {
	g := newTable("A-B", "B-C")
	stop := errors.New("stop")
	_, err := bfs.BFS[node, string](g.at("A"), bfs.WithOnVisit(func(id string, _ int) error {
		if id == "B" {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) || !strings.Contains(err.Error(), `"B"`) {
		t.Errorf("OnVisit error: got %v", err)
	}
}

// TestBFS_PathTo covers both trivial (start→start) and unreachable targets.
func TestBFS_PathTo(t *testing.T) {
	g := newTable("X-Z")
	res, _ := bfs.BFS[node, string](g.at("X"))
	if path, _ := res.PathTo(g.at("X")); !reflect.DeepEqual(ids(path), []string{"X"}) {
		t.Errorf("PathTo start: got %v; want [X]", ids(path))
	}
	if path, _ := res.PathTo(g.at("Z")); !reflect.DeepEqual(ids(path), []string{"X", "Z"}) {
		t.Errorf("PathTo Z: got %v; want [X Z]", ids(path))
	}
	_, err := res.PathTo(g.at("Y"))
	if !errors.Is(err, bfs.ErrNoPath) {
		t.Errorf("PathTo unreachable: want ErrNoPath, got %v", err)
	}
}

// TestShortestPath stops at the goal and returns a minimal route.
func TestShortestPath(t *testing.T) {
	g := newTable("A-B", "B-C", "C-D", "A-E", "E-D", "D-F")
	path, err := bfs.ShortestPath[node, string](g.at("A"), g.at("F"))
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "E", "D", "F"}; !reflect.DeepEqual(ids(path), want) {
		t.Errorf("ShortestPath: got %v; want %v", ids(path), want)
	}
	if d, _ := bfs.Distance[node, string](g.at("A"), g.at("A")); d != 0 {
		t.Errorf("Distance to self = %d; want 0", d)
	}
}

// TestBFS_Cancellation verifies that a cancelled context halts BFS promptly.
func TestBFS_Cancellation(t *testing.T) {
	var edges []string
	for i := 0; i < 100; i++ {
		edges = append(edges, fmt.Sprintf("v%d-v%d", i, i+1))
	}
	g := newTable(edges...)
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // immediate
	if _, err := bfs.BFS[node, string](g.at("v0"), bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("Cancellation: want context.Canceled, got %v", err)
	}
}

// TestBFS_ConcurrentSafety ensures two concurrent BFS runs over the same table do not interfere.
func TestBFS_ConcurrentSafety(t *testing.T) {
	g := newTable("A-B")
	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() { _, err := bfs.BFS[node, string](g.at("A")); errs <- err }()
	}
	for i := 0; i < 2; i++ {
		if err := <-errs; err != nil {
			t.Errorf("Concurrent run #%d: unexpected error %v", i, err)
		}
	}
}
