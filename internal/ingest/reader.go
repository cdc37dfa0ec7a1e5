// Package ingest reads a delimited relationship table into the person
// index and family graph the pathfinder queries. Rows referencing the
// same person identifier are merged into one canonical record; each
// distinct identifier gets exactly one graph node, assigned at first
// sight and stable from then on.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/scrypster/heritage/pkg/types"
)

// DefaultDelimiter is the field delimiter used when Options does not
// override it.
const DefaultDelimiter = ';'

// Options controls how a relationship table is read.
type Options struct {
	// Delimiter is the field delimiter; DefaultDelimiter when zero.
	Delimiter rune

	// Columns holds the header names to look for; empty fields fall
	// back to the canonical names (see DefaultColumns).
	Columns ColumnNames
}

// columnIndexes holds the resolved header positions of the five
// logical columns. Extra columns in the table are simply ignored.
type columnIndexes struct {
	personID int
	spouseID int
	fatherID int
	motherID int
	person   int
}

// ReadDataset streams the delimited table from r, merges duplicate
// identifier rows, builds the relationship edges, and returns the
// completed dataset. The first malformed row aborts the whole read
// with a *ParseError.
func ReadDataset(r io.Reader, opts Options) (*Dataset, error) {
	delim := opts.Delimiter
	if delim == 0 {
		delim = DefaultDelimiter
	}
	names := opts.Columns.withDefaults()

	cr := csv.NewReader(r)
	cr.Comma = delim

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("ingest: table is empty, header row is mandatory")
	}
	if err != nil {
		return nil, &ParseError{Line: 1, Err: err}
	}

	cols, err := resolveColumns(header, names)
	if err != nil {
		return nil, err
	}

	ds := NewDataset()
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			// encoding/csv reports wrong field counts and broken
			// quoting here.
			return nil, &ParseError{Line: line, Err: err}
		}

		rec, perr := parseRow(row, cols, names, line)
		if perr != nil {
			return nil, perr
		}
		ds.Add(rec)
	}

	ds.BuildEdges()
	return ds, nil
}

// resolveColumns locates the five logical columns in the header row.
// All five must be present under their (possibly aliased) names.
func resolveColumns(header []string, names ColumnNames) (columnIndexes, error) {
	find := func(name string) int {
		for i, h := range header {
			if strings.TrimSpace(h) == name {
				return i
			}
		}
		return -1
	}

	cols := columnIndexes{
		personID: find(names.PersonID),
		spouseID: find(names.SpouseID),
		fatherID: find(names.FatherID),
		motherID: find(names.MotherID),
		person:   find(names.Person),
	}

	for _, c := range []struct {
		idx  int
		name string
	}{
		{cols.personID, names.PersonID},
		{cols.spouseID, names.SpouseID},
		{cols.fatherID, names.FatherID},
		{cols.motherID, names.MotherID},
		{cols.person, names.Person},
	} {
		if c.idx < 0 {
			return cols, fmt.Errorf("ingest: header is missing column %q", c.name)
		}
	}

	return cols, nil
}

// parseRow deserializes one data row into a partial person record.
func parseRow(row []string, cols columnIndexes, names ColumnNames, line int) (*types.PersonRecord, *ParseError) {
	id, err := strconv.ParseInt(strings.TrimSpace(row[cols.personID]), 10, 64)
	if err != nil {
		return nil, &ParseError{Line: line, Column: names.PersonID, Err: err}
	}

	rec := &types.PersonRecord{ID: id, Name: strings.TrimSpace(row[cols.person])}

	var perr *ParseError
	if rec.SpouseID, perr = optionalID(row[cols.spouseID], names.SpouseID, line); perr != nil {
		return nil, perr
	}
	if rec.FatherID, perr = optionalID(row[cols.fatherID], names.FatherID, line); perr != nil {
		return nil, perr
	}
	if rec.MotherID, perr = optionalID(row[cols.motherID], names.MotherID, line); perr != nil {
		return nil, perr
	}

	return rec, nil
}

// optionalID parses an optional relative reference. An empty field is
// a valid absent reference.
func optionalID(raw, column string, line int) (*int64, *ParseError) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, &ParseError{Line: line, Column: column, Err: err}
	}
	return &v, nil
}
