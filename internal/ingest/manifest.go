package ingest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Manifest describes the shape of a particular relationship table
// export: renamed header columns and, optionally, a different field
// delimiter. Localized spreadsheet exports (headers like "Ehepartner"
// or "Vater") can be ingested without editing the data file itself.
//
//	delimiter: ";"
//	columns:
//	  person_id: PersonID
//	  spouse_id: Ehepartner
//	  father_id: Vater
//	  mother_id: Mutter
//	  person: Person
type Manifest struct {
	Delimiter string      `yaml:"delimiter,omitempty"`
	Columns   ColumnNames `yaml:"columns"`
}

// ColumnNames maps the five logical columns to the header names used
// by one export. Empty fields keep the canonical name.
type ColumnNames struct {
	PersonID string `yaml:"person_id"`
	SpouseID string `yaml:"spouse_id"`
	FatherID string `yaml:"father_id"`
	MotherID string `yaml:"mother_id"`
	Person   string `yaml:"person"`
}

// DefaultColumns returns the canonical header naming.
func DefaultColumns() ColumnNames {
	return ColumnNames{
		PersonID: "PersonID",
		SpouseID: "SpouseID",
		FatherID: "FatherID",
		MotherID: "MotherID",
		Person:   "Person",
	}
}

// withDefaults fills empty fields with the canonical names.
func (c ColumnNames) withDefaults() ColumnNames {
	def := DefaultColumns()
	if c.PersonID == "" {
		c.PersonID = def.PersonID
	}
	if c.SpouseID == "" {
		c.SpouseID = def.SpouseID
	}
	if c.FatherID == "" {
		c.FatherID = def.FatherID
	}
	if c.MotherID == "" {
		c.MotherID = def.MotherID
	}
	if c.Person == "" {
		c.Person = def.Person
	}
	return c
}

// LoadManifest reads and validates a YAML manifest from path.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ingest: read manifest: %w", err)
	}

	m := &Manifest{}
	if err := yaml.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("ingest: parse manifest %s: %w", path, err)
	}
	if err := m.validate(); err != nil {
		return nil, fmt.Errorf("ingest: manifest %s: %w", path, err)
	}
	return m, nil
}

func (m *Manifest) validate() error {
	if m.Delimiter != "" && len([]rune(m.Delimiter)) != 1 {
		return fmt.Errorf("delimiter must be a single character, got %q", m.Delimiter)
	}
	return nil
}

// Options returns the reader options the manifest describes.
func (m *Manifest) Options() Options {
	opts := Options{Columns: m.Columns.withDefaults()}
	if m.Delimiter != "" {
		opts.Delimiter = []rune(m.Delimiter)[0]
	}
	return opts
}
