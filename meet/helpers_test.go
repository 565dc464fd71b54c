package meet_test

import (
	"fmt"
	"sort"
)

// ring is a node of an undirected cycle of n nodes. Odd n gives a
// non-bipartite graph.
type ring struct {
	i, n int
}

func (r ring) Transitions() []int { return []int{1, -1} }

func (r ring) Apply(d int) ring { return ring{(r.i + d + r.n) % r.n, r.n} }

func (r ring) String() string { return fmt.Sprintf("r%d", r.i) }

// lattice is a point of the infinite 4-connected integer grid.
type lattice struct {
	X, Y int
}

var latticeSteps = [4][2]int{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}

func (p lattice) Transitions() []int { return []int{0, 1, 2, 3} }

func (p lattice) Apply(k int) lattice {
	return lattice{p.X + latticeSteps[k][0], p.Y + latticeSteps[k][1]}
}

func (p lattice) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// graph is an explicit undirected adjacency table. Neighbor order is
// insertion order, which lets tests control discovery order.
type graph struct {
	adj map[string][]string
}

func newGraph(edges ...[2]string) *graph {
	g := &graph{adj: make(map[string][]string)}
	for _, e := range edges {
		g.adj[e[0]] = append(g.adj[e[0]], e[1])
		g.adj[e[1]] = append(g.adj[e[1]], e[0])
	}
	return g
}

// isolate adds a vertex without edges.
func (g *graph) isolate(id string) *graph {
	if _, ok := g.adj[id]; !ok {
		g.adj[id] = nil
	}
	return g
}

func (g *graph) v(id string) vertex { return vertex{g: g, id: id} }

// ids lists every vertex in sorted order.
func (g *graph) ids() []string {
	out := make([]string, 0, len(g.adj))
	for id := range g.adj {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// vertex is a state of a graph; it moves by naming the neighbor.
type vertex struct {
	g  *graph
	id string
}

func (v vertex) Transitions() []string { return v.g.adj[v.id] }

func (v vertex) Apply(to string) vertex { return vertex{g: v.g, id: to} }

func (v vertex) String() string { return v.id }

// petersen returns the Petersen graph: odd cycles, diameter two.
func petersen() *graph {
	var edges [][2]string
	for i := 0; i < 5; i++ {
		o, o2 := fmt.Sprintf("o%d", i), fmt.Sprintf("o%d", (i+1)%5)
		in, in2 := fmt.Sprintf("i%d", i), fmt.Sprintf("i%d", (i+2)%5)
		edges = append(edges, [2]string{o, o2}, [2]string{o, in}, [2]string{in, in2})
	}
	return newGraph(edges...)
}

// ladder returns a 2×n grid graph with an extra chord, giving both even and
// odd cycles.
func ladder(n int) *graph {
	var edges [][2]string
	for i := 0; i < n; i++ {
		a, b := fmt.Sprintf("a%d", i), fmt.Sprintf("b%d", i)
		edges = append(edges, [2]string{a, b})
		if i+1 < n {
			edges = append(edges,
				[2]string{a, fmt.Sprintf("a%d", i+1)},
				[2]string{b, fmt.Sprintf("b%d", i+1)},
			)
		}
	}
	edges = append(edges, [2]string{"a0", "b1"})
	return newGraph(edges...)
}

// mixed is either a lattice point or a vertex of a finite graph. The two
// kinds never connect, which gives an infinite side and a finite side.
type mixed struct {
	p      lattice
	v      vertex
	finite bool
}

func (m mixed) Transitions() []int {
	n := 4
	if m.finite {
		n = len(m.v.Transitions())
	}
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func (m mixed) Apply(k int) mixed {
	if m.finite {
		return mixed{v: m.v.Apply(m.v.Transitions()[k]), finite: true}
	}
	return mixed{p: m.p.Apply(k)}
}

func (m mixed) String() string {
	if m.finite {
		return m.v.String()
	}
	return m.p.String()
}
