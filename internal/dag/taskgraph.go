// Package dag models the audit task dependency graph: tasks are nodes, an
// edge A -> B means A must complete before B. Construction validates the
// graph and proves acyclicity with a deterministic cycle witness.
package dag

import "sort"

// Node is a task in the dependency graph.
type Node struct {
	ID     string
	Label  string // human-readable, used for DOT rendering
	Status string
}

// Edge is a dependency: From must complete before To.
type Edge struct {
	From string
	To   string
}

// Graph is a validated task dependency DAG.
type Graph struct {
	nodes    []Node // sorted by ID, the canonical order
	index    map[string]int
	outgoing [][]int // adjacency by canonical index, each list sorted
	indeg    []int
	edges    []Edge
}

// New builds and validates a Graph. It fails on duplicate node IDs, edges
// referencing unknown nodes, self-dependencies, and cycles.
func New(nodes []Node, edges []Edge) (*Graph, error) {
	sorted := make([]Node, len(nodes))
	copy(sorted, nodes)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	index := make(map[string]int, len(sorted))
	for i, n := range sorted {
		if n.ID == "" {
			return nil, invalidf("node with empty ID")
		}
		if _, dup := index[n.ID]; dup {
			return nil, invalidf("duplicate node %q", n.ID)
		}
		index[n.ID] = i
	}

	g := &Graph{
		nodes:    sorted,
		index:    index,
		outgoing: make([][]int, len(sorted)),
		indeg:    make([]int, len(sorted)),
		edges:    make([]Edge, 0, len(edges)),
	}

	seen := make(map[Edge]bool, len(edges))
	for _, e := range edges {
		from, ok := index[e.From]
		if !ok {
			return nil, invalidf("edge references unknown task %q", e.From)
		}
		to, ok := index[e.To]
		if !ok {
			return nil, invalidf("edge references unknown task %q", e.To)
		}
		if from == to {
			return nil, invalidf("task %q depends on itself", e.To)
		}
		if seen[e] {
			continue
		}
		seen[e] = true
		g.outgoing[from] = append(g.outgoing[from], to)
		g.indeg[to]++
		g.edges = append(g.edges, e)
	}

	for i := range g.outgoing {
		sort.Ints(g.outgoing[i])
	}

	if err := g.validateAcyclic(); err != nil {
		return nil, err
	}
	return g, nil
}

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// Nodes returns the nodes in canonical order.
func (g *Graph) Nodes() []Node {
	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// Edges returns the deduplicated edges in insertion order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// TopoOrder returns task IDs in a deterministic topological order.
func (g *Graph) TopoOrder() []string {
	order := g.topoOrderIndices()
	out := make([]string, len(order))
	for i, idx := range order {
		out[i] = g.nodes[idx].ID
	}
	return out
}
