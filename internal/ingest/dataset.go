package ingest

import (
	"sort"

	"github.com/scrypster/heritage/internal/graph"
	"github.com/scrypster/heritage/pkg/types"
)

// Entry pairs a canonical person record with its graph node handle.
type Entry struct {
	Record *types.PersonRecord
	Node   graph.NodeID
}

// Dataset is one fully ingested relationship table: the identifier
// index plus the family graph it implies. Once BuildEdges has run the
// whole structure is read-only, so any number of concurrent readers
// can query it without locking.
type Dataset struct {
	index map[int64]*Entry
	graph *graph.Graph
	built bool
}

// NewDataset returns an empty dataset.
func NewDataset() *Dataset {
	return &Dataset{
		index: make(map[int64]*Entry),
		graph: graph.New(),
	}
}

// Add inserts one parsed row. First sight of an identifier creates the
// canonical record and its node handle; later rows are merged into the
// existing record and the handle stays untouched.
func (d *Dataset) Add(rec *types.PersonRecord) {
	if ent, ok := d.index[rec.ID]; ok {
		ent.Record.Merge(rec)
		return
	}
	d.index[rec.ID] = &Entry{
		Record: rec,
		Node:   d.graph.AddNode(rec.ID),
	}
}

// Lookup resolves a person identifier to its entry.
func (d *Dataset) Lookup(id int64) (*Entry, bool) {
	ent, ok := d.index[id]
	return ent, ok
}

// Len returns the number of distinct persons.
func (d *Dataset) Len() int {
	return len(d.index)
}

// Graph exposes the underlying family graph.
func (d *Dataset) Graph() *graph.Graph {
	return d.graph
}

// PersonIDs returns every ingested identifier in ascending order.
func (d *Dataset) PersonIDs() []int64 {
	ids := make([]int64, 0, len(d.index))
	for id := range d.index {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// BuildEdges adds one undirected labeled edge per relative reference
// that resolves within the index. References to persons outside the
// table are skipped; parallel edges (both spouses declaring each
// other) are kept. Records are visited in ascending identifier order
// and each record's references in Spouse, Father, Mother order, so
// edge insertion order is reproducible across runs. A second call is
// a no-op.
func (d *Dataset) BuildEdges() {
	if d.built {
		return
	}
	d.built = true

	for _, id := range d.PersonIDs() {
		ent := d.index[id]
		for _, rel := range ent.Record.Relatives() {
			other, ok := d.index[rel.ID]
			if !ok {
				// Relative outside the table.
				continue
			}
			d.graph.AddEdge(ent.Node, other.Node, rel.Kind)
		}
	}
}
