package types

// RelKind labels a declared relationship between two persons. The kind
// is fixed when the declaring record is ingested: a record's FatherID
// reference is always a Father edge, no matter which way a path later
// walks it.
type RelKind string

const (
	RelSpouse RelKind = "Spouse"
	RelFather RelKind = "Father"
	RelMother RelKind = "Mother"
)
