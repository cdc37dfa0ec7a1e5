package ingest

import "fmt"

// ParseError reports a malformed row in the relationship table.
// Ingestion stops at the first one; a table that fails to parse would
// leave the index and graph inconsistent, so there is no partial
// recovery.
type ParseError struct {
	// Line is the 1-based line number within the table, counting the
	// header line.
	Line int

	// Column is the logical column the bad value sat in, empty when
	// the row as a whole was malformed (e.g. wrong field count).
	Column string

	Err error
}

func (e *ParseError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("ingest: line %d: column %s: %v", e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("ingest: line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
