package archivator

import (
	"path/filepath"
	"testing"

	"github.com/opencontainers/go-digest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspect(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	files := map[string]string{
		"a.txt": "xyz",
		"b.bin": "",
	}
	createTestFiles(t, dir, files)

	archive := filepath.Join(t.TempDir(), "inspect.arc")
	_, err := Archive(dir, archive)
	require.NoError(t, err)

	m, err := Inspect(archive)
	require.NoError(t, err)
	assert.Equal(t, archive, m.Archive)
	assert.Equal(t, 2, m.Files)
	assert.Equal(t, uint64(3), m.TotalBytes)
	require.Len(t, m.Records, 2)

	byName := make(map[string]RecordInfo, len(m.Records))
	for _, rec := range m.Records {
		byName[rec.Name] = rec
	}
	for name, content := range files {
		rec, ok := byName[name]
		require.True(t, ok, "record %q missing from manifest", name)
		assert.Equal(t, uint64(len(content)), rec.Size)
		assert.Equal(t, digest.FromString(content), rec.Digest)
	}
}

func TestInspectEmptyArchive(t *testing.T) {
	t.Parallel()

	archive := filepath.Join(t.TempDir(), "empty.arc")
	_, err := Archive(t.TempDir(), archive)
	require.NoError(t, err)

	m, err := Inspect(archive)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Files)
	assert.Empty(t, m.Records)
}

func TestInspectMissingArchive(t *testing.T) {
	t.Parallel()

	_, err := Inspect(filepath.Join(t.TempDir(), "nope.arc"))
	assert.Error(t, err)
}
