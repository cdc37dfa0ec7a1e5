// Package graph provides the compact undirected graph the family
// pathfinder runs over. Nodes are addressed by small integer handles
// assigned at insertion time; the ingest index maps person identifiers
// to handles, so nodes themselves only carry the identifier.
package graph

import "github.com/scrypster/heritage/pkg/types"

// NodeID is an opaque handle addressing a node within one Graph.
// Handles are assigned densely from zero and never reused.
type NodeID int

// Edge is an undirected edge together with the orientation it was
// declared in. From is the node whose record declared the
// relationship, To is the declared relative; Kind reads as
// "To is Kind of From".
type Edge struct {
	From NodeID
	To   NodeID
	Kind types.RelKind
}

// Graph is an undirected, edge-labeled graph over compact node
// handles. It is append-only: nodes and edges are added during the
// build phase and only read afterwards, so concurrent readers need no
// locking.
type Graph struct {
	persons []int64 // person identifier per node handle
	edges   []Edge
	adj     [][]int // node -> indices into edges, recorded on both endpoints
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{}
}

// AddNode registers a node carrying the given person identifier and
// returns its handle.
func (g *Graph) AddNode(personID int64) NodeID {
	n := NodeID(len(g.persons))
	g.persons = append(g.persons, personID)
	g.adj = append(g.adj, nil)
	return n
}

// PersonID returns the person identifier stored on node n.
func (g *Graph) PersonID(n NodeID) int64 {
	return g.persons[n]
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	return len(g.persons)
}

// EdgeCount returns the number of edges, counting parallel edges
// individually.
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// AddEdge adds an undirected edge declared from from to to. Parallel
// edges between the same pair are kept as-is; insertion order is
// preserved and tie-breaks label lookups later.
func (g *Graph) AddEdge(from, to NodeID, kind types.RelKind) {
	idx := len(g.edges)
	g.edges = append(g.edges, Edge{From: from, To: to, Kind: kind})
	g.adj[from] = append(g.adj[from], idx)
	if to != from {
		g.adj[to] = append(g.adj[to], idx)
	}
}

// Neighbors returns the nodes adjacent to n, in edge insertion order.
// Parallel edges yield the same neighbor more than once.
func (g *Graph) Neighbors(n NodeID) []NodeID {
	out := make([]NodeID, 0, len(g.adj[n]))
	for _, ei := range g.adj[n] {
		e := g.edges[ei]
		if e.From == n {
			out = append(out, e.To)
		} else {
			out = append(out, e.From)
		}
	}
	return out
}

// EdgesBetween returns every edge connecting a and b in insertion
// order, regardless of declared orientation.
func (g *Graph) EdgesBetween(a, b NodeID) []Edge {
	var out []Edge
	for _, ei := range g.adj[a] {
		e := g.edges[ei]
		if (e.From == a && e.To == b) || (e.From == b && e.To == a) {
			out = append(out, e)
		}
	}
	return out
}
