package graph

import (
	"log/slog"
	"sort"
)

// Node is one observable in the dependency graph, addressed by its dense
// index. Parents is empty for root observables.
type Node struct {
	ID      int   `json:"id"`
	Parents []int `json:"parents"`
}

// Graph is the serializable directed acyclic graph of observable
// dependencies for one render pass.
type Graph struct {
	Nodes []Node `json:"nodes"`

	// RootIDs are the node indices with no parents.
	RootIDs []int `json:"rootIds"`
}

// Build constructs a graph from the ordered observable identifiers of a
// render pass (the order defines the node indices) and a side table mapping
// a derived observable's identifier to the identifiers of its parents.
//
// Parent indices are stored in ascending numeric order so that multi-parent
// traversals are stable. A parent identifier that is not part of the
// ordered collection is skipped with a warning.
func Build(order []string, parents map[string][]string) *Graph {
	index := make(map[string]int, len(order))
	for i, id := range order {
		index[id] = i
	}

	g := &Graph{
		Nodes: make([]Node, len(order)),
	}

	for i, id := range order {
		node := Node{ID: i}
		for _, pid := range parents[id] {
			pi, ok := index[pid]
			if !ok {
				slog.Warn("dependency graph references unknown parent",
					"observable", id,
					"parent", pid)
				continue
			}
			node.Parents = append(node.Parents, pi)
		}
		sort.Ints(node.Parents)
		g.Nodes[i] = node

		if len(node.Parents) == 0 {
			g.RootIDs = append(g.RootIDs, i)
		}
	}

	return g
}

// IsRoot reports whether the node at index id has no parents.
func (g *Graph) IsRoot(id int) bool {
	return id >= 0 && id < len(g.Nodes) && len(g.Nodes[id].Parents) == 0
}

// FindRootDependencies returns the node indices of every root reachable
// from nodeID by following parent edges, in ascending order. Visited nodes
// are deduplicated so diamond-shaped graphs terminate and each shared root
// appears exactly once. A node that is itself a root returns the singleton
// set containing itself.
func (g *Graph) FindRootDependencies(nodeID int) []int {
	if nodeID < 0 || nodeID >= len(g.Nodes) {
		return nil
	}

	visited := make(map[int]bool)
	var roots []int

	var walk func(id int)
	walk = func(id int) {
		if visited[id] {
			return
		}
		visited[id] = true

		node := g.Nodes[id]
		if len(node.Parents) == 0 {
			roots = append(roots, id)
			return
		}
		for _, p := range node.Parents {
			walk(p)
		}
	}
	walk(nodeID)

	sort.Ints(roots)
	return roots
}

// FindPathsToRoots returns, for each root reachable from nodeID, the node
// sequence from nodeID to that root (inclusive at both ends). The traversal
// mirrors FindRootDependencies: parents are visited in numeric index order
// and visited nodes are deduplicated, so each root yields one path. The
// paths allow binding replay on the client without re-walking the graph.
func (g *Graph) FindPathsToRoots(nodeID int) [][]int {
	if nodeID < 0 || nodeID >= len(g.Nodes) {
		return nil
	}

	visited := make(map[int]bool)
	var paths [][]int

	var walk func(id int, trail []int)
	walk = func(id int, trail []int) {
		if visited[id] {
			return
		}
		visited[id] = true

		trail = append(trail, id)
		node := g.Nodes[id]
		if len(node.Parents) == 0 {
			path := make([]int, len(trail))
			copy(path, trail)
			paths = append(paths, path)
			return
		}
		for _, p := range node.Parents {
			walk(p, trail)
		}
	}
	walk(nodeID, nil)

	return paths
}
