package graph

import (
	"context"
	"fmt"
)

// ShortestPath runs a breadth-first search and returns the node
// sequence from start to finish, inclusive. All edges carry unit
// weight, so BFS yields a shortest path. The boolean is false when the
// two nodes are not connected; that is an expected outcome, not an
// error.
//
// The context is checked once per dequeued node so callers can abort a
// search over a large graph.
func (g *Graph) ShortestPath(ctx context.Context, start, finish NodeID) ([]NodeID, bool, error) {
	if !g.valid(start) || !g.valid(finish) {
		return nil, false, fmt.Errorf("graph: node handle out of range")
	}
	if start == finish {
		return []NodeID{start}, true, nil
	}

	// parent doubles as the visited set; -1 means undiscovered.
	parent := make([]NodeID, len(g.persons))
	for i := range parent {
		parent[i] = -1
	}
	parent[start] = start

	queue := []NodeID{start}
	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, false, err
		}

		cur := queue[0]
		queue = queue[1:]

		for _, next := range g.Neighbors(cur) {
			if parent[next] != -1 {
				continue
			}
			parent[next] = cur
			if next == finish {
				return g.reconstruct(parent, start, finish), true, nil
			}
			queue = append(queue, next)
		}
	}

	return nil, false, nil
}

// reconstruct walks the parent links back from finish and reverses the
// result into start-to-finish order.
func (g *Graph) reconstruct(parent []NodeID, start, finish NodeID) []NodeID {
	path := []NodeID{finish}
	for cur := finish; cur != start; {
		cur = parent[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

func (g *Graph) valid(n NodeID) bool {
	return n >= 0 && int(n) < len(g.persons)
}
