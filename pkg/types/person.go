// Package types defines the person records shared across the heritage
// packages. Raw table rows are parsed into PersonRecord values and
// merged into one canonical record per identifier.
package types

// PersonRecord is the canonical, merged representation of one person
// from the relationship table. A single person is often referenced by
// several raw rows (both halves of a spouse pair each contribute one);
// all of them are folded into one record keyed by ID.
type PersonRecord struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`

	// Relative references. nil means no source row declared the
	// relationship. A non-nil reference may still point at a person
	// outside the ingested table.
	SpouseID *int64 `json:"spouse_id,omitempty"`
	FatherID *int64 `json:"father_id,omitempty"`
	MotherID *int64 `json:"mother_id,omitempty"`
}

// Relative is one declared relationship reference on a record.
type Relative struct {
	ID   int64
	Kind RelKind
}

// Merge folds a later row for the same person into r. A relative
// reference present on row overwrites the stored one; an absent
// reference never erases stored data. The display name from the first
// row is kept unless it was empty.
func (r *PersonRecord) Merge(row *PersonRecord) {
	if row.SpouseID != nil {
		r.SpouseID = row.SpouseID
	}
	if row.FatherID != nil {
		r.FatherID = row.FatherID
	}
	if row.MotherID != nil {
		r.MotherID = row.MotherID
	}
	if r.Name == "" {
		r.Name = row.Name
	}
}

// Relatives lists the declared references in Spouse, Father, Mother
// order. Edge construction relies on this order being stable.
func (r *PersonRecord) Relatives() []Relative {
	rels := make([]Relative, 0, 3)
	if r.SpouseID != nil {
		rels = append(rels, Relative{ID: *r.SpouseID, Kind: RelSpouse})
	}
	if r.FatherID != nil {
		rels = append(rels, Relative{ID: *r.FatherID, Kind: RelFather})
	}
	if r.MotherID != nil {
		rels = append(rels, Relative{ID: *r.MotherID, Kind: RelMother})
	}
	return rels
}
