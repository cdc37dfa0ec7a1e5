package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "manifest.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadManifest_LocalizedColumns(t *testing.T) {
	path := writeManifest(t, `
delimiter: ";"
columns:
  spouse_id: Ehepartner
  father_id: Vater
  mother_id: Mutter
`)

	m, err := LoadManifest(path)
	require.NoError(t, err)

	opts := m.Options()
	assert.Equal(t, ';', int32(opts.Delimiter))
	assert.Equal(t, "Ehepartner", opts.Columns.SpouseID)
	assert.Equal(t, "Vater", opts.Columns.FatherID)
	assert.Equal(t, "Mutter", opts.Columns.MotherID)
	// Unnamed columns fall back to the canonical names.
	assert.Equal(t, "PersonID", opts.Columns.PersonID)
	assert.Equal(t, "Person", opts.Columns.Person)
}

func TestLoadManifest_DefaultDelimiter(t *testing.T) {
	path := writeManifest(t, `
columns:
  person: Name
`)

	m, err := LoadManifest(path)
	require.NoError(t, err)

	opts := m.Options()
	assert.EqualValues(t, 0, opts.Delimiter, "unset delimiter is left to the reader default")
	assert.Equal(t, "Name", opts.Columns.Person)
}

func TestLoadManifest_MultiCharDelimiter(t *testing.T) {
	path := writeManifest(t, `delimiter: ";;"`)

	_, err := LoadManifest(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "single character")
}

func TestLoadManifest_MissingFile(t *testing.T) {
	_, err := LoadManifest(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadManifest_BadYAML(t *testing.T) {
	path := writeManifest(t, "columns: [broken")

	_, err := LoadManifest(path)
	require.Error(t, err)
}
