// Package engine resolves shortest-path relationship chains between
// two persons over an ingested dataset.
package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/scrypster/heritage/internal/graph"
	"github.com/scrypster/heritage/internal/ingest"
	"github.com/scrypster/heritage/pkg/types"
)

// ErrNoRelationship is returned when both persons exist but no chain
// of spouse/parent edges connects them. It is an expected, reportable
// outcome, never conflated with a failure of the query machinery.
var ErrNoRelationship = errors.New("no direct or indirect relationship found")

// UnknownPersonError reports a person identifier that is not present
// in the dataset.
type UnknownPersonError struct {
	ID int64
}

func (e *UnknownPersonError) Error() string {
	return fmt.Sprintf("unknown person %d", e.ID)
}

// PathStep is one entry of a resolved chain. Rel labels the
// relationship to the next step and is empty on the final step.
type PathStep struct {
	ID   int64         `json:"id"`
	Name string        `json:"name"`
	Rel  types.RelKind `json:"relationship,omitempty"`
}

// Engine answers shortest-path relationship queries. It only reads
// the dataset, so a single Engine is safe for concurrent callers;
// each query allocates its own search state.
type Engine struct {
	ds *ingest.Dataset
}

// New creates an engine over an ingested dataset.
func New(ds *ingest.Dataset) *Engine {
	return &Engine{ds: ds}
}

// Resolve finds a shortest chain between startID and finishID. The
// returned steps are ordered from the finish person toward the start
// person: each step reads "<person> is <kind> of <next person>", and
// that phrasing only works when the more distant relative comes first.
func (e *Engine) Resolve(ctx context.Context, startID, finishID int64) ([]PathStep, error) {
	start, ok := e.ds.Lookup(startID)
	if !ok {
		return nil, &UnknownPersonError{ID: startID}
	}
	finish, ok := e.ds.Lookup(finishID)
	if !ok {
		return nil, &UnknownPersonError{ID: finishID}
	}

	nodes, found, err := e.ds.Graph().ShortestPath(ctx, start.Node, finish.Node)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNoRelationship
	}

	// Flip the path into finish-first order.
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}

	g := e.ds.Graph()
	steps := make([]PathStep, len(nodes))
	for i, n := range nodes {
		pid := g.PersonID(n)
		ent, ok := e.ds.Lookup(pid)
		if !ok {
			return nil, &UnknownPersonError{ID: pid}
		}
		steps[i] = PathStep{ID: pid, Name: ent.Record.Name}
		if i > 0 {
			steps[i-1].Rel = e.label(nodes[i-1], n)
		}
	}

	return steps, nil
}

// label picks the relationship kind reported for the step from a to b,
// where a is printed first. An edge declared from b to a phrases
// literally as "a is Kind of b" and is preferred. Failing that, the
// first edge in insertion order between the pair is used and its kind
// reported exactly as declared; the original tool never flipped labels
// for reverse traversal and parallel spouse declarations carry the
// same kind anyway.
func (e *Engine) label(a, b graph.NodeID) types.RelKind {
	edges := e.ds.Graph().EdgesBetween(a, b)
	for _, ed := range edges {
		if ed.From == b && ed.To == a {
			return ed.Kind
		}
	}
	if len(edges) > 0 {
		return edges[0].Kind
	}
	return ""
}
