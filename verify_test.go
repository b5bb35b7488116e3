package archivator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// archiveDir builds an archive of dir in a fresh temp location.
func archiveDir(t *testing.T, dir string) string {
	t.Helper()
	archive := filepath.Join(t.TempDir(), "test.arc")
	res, err := Archive(dir, archive)
	require.NoError(t, err)
	require.False(t, res.Skipped)
	return archive
}

func TestEquivalentMissingArchive(t *testing.T) {
	t.Parallel()

	same, err := Equivalent(filepath.Join(t.TempDir(), "nope.arc"), t.TempDir())
	require.NoError(t, err)
	assert.False(t, same)
}

func TestEquivalentMatch(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	createTestFiles(t, dir, map[string]string{
		"a.txt": "xyz",
		"b.bin": "",
		"c.dat": "\x00binary\x00content\x00",
	})
	archive := archiveDir(t, dir)

	same, err := Equivalent(archive, dir)
	require.NoError(t, err)
	assert.True(t, same)
}

func TestEquivalentNestedLayoutIsNeverEquivalent(t *testing.T) {
	t.Parallel()

	// Records are looked up as dir/<name>. A file archived from a
	// subdirectory is not found at the top level, so directories with
	// nested files always re-archive.
	dir := t.TempDir()
	createTestFiles(t, dir, map[string]string{"sub/c.txt": "nested"})
	archive := archiveDir(t, dir)

	same, err := Equivalent(archive, dir)
	require.NoError(t, err)
	assert.False(t, same)
}

func TestEquivalentSameSizeContentChange(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	createTestFiles(t, dir, map[string]string{"a.txt": "xyz"})
	archive := archiveDir(t, dir)

	// Same size, one byte differs.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("xyZ"), 0o644))

	same, err := Equivalent(archive, dir)
	require.NoError(t, err)
	assert.False(t, same)
}

func TestEquivalentDiffersAfterEmbeddedNUL(t *testing.T) {
	t.Parallel()

	// A NUL-terminated comparison would stop at the first byte and miss
	// the difference; the length-bounded compare must not.
	dir := t.TempDir()
	createTestFiles(t, dir, map[string]string{"bin.dat": "\x00aa"})
	archive := archiveDir(t, dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "bin.dat"), []byte("\x00ab"), 0o644))

	same, err := Equivalent(archive, dir)
	require.NoError(t, err)
	assert.False(t, same)
}

func TestEquivalentSizeChange(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	createTestFiles(t, dir, map[string]string{"a.txt": "xyz"})
	archive := archiveDir(t, dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("xyzz"), 0o644))

	same, err := Equivalent(archive, dir)
	require.NoError(t, err)
	assert.False(t, same)
}

func TestEquivalentRemovedFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	createTestFiles(t, dir, map[string]string{"a.txt": "xyz", "b.txt": "abc"})
	archive := archiveDir(t, dir)

	require.NoError(t, os.Remove(filepath.Join(dir, "b.txt")))

	same, err := Equivalent(archive, dir)
	require.NoError(t, err)
	assert.False(t, same)
}

func TestEquivalentExtraFile(t *testing.T) {
	t.Parallel()

	// Every archived record still matches; only the independent file
	// count can catch the addition.
	dir := t.TempDir()
	createTestFiles(t, dir, map[string]string{"a.txt": "xyz"})
	archive := archiveDir(t, dir)

	createTestFiles(t, dir, map[string]string{"sub/new.txt": "added later"})

	same, err := Equivalent(archive, dir)
	require.NoError(t, err)
	assert.False(t, same)
}

func TestEquivalentEmptyDirZeroLengthArchive(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	archive := filepath.Join(t.TempDir(), "empty.arc")
	require.NoError(t, os.WriteFile(archive, nil, 0o644))

	same, err := Equivalent(archive, dir)
	require.NoError(t, err)
	assert.True(t, same)
}

func TestEquivalentTruncatedArchive(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	createTestFiles(t, dir, map[string]string{"a.txt": "hello world"})
	archive := archiveDir(t, dir)

	raw, err := os.ReadFile(archive)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(archive, raw[:len(raw)-4], 0o644))

	same, err := Equivalent(archive, dir)
	require.NoError(t, err)
	assert.False(t, same, "a malformed archive needs re-archiving, not an error")
}
