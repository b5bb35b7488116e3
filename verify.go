package archivator

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const compareChunkSize = 32 * 1024

// Equivalent reports whether the archive at archivePath matches the
// current contents of dir byte-for-byte.
//
// A missing or unopenable archive is not an error; it simply means the
// directory needs archiving, so Equivalent returns (false, nil). The same
// applies to a truncated or otherwise malformed archive.
//
// Records are decoded sequentially. For each record the live file
// dir/name must exist, have the same size, and have identical content;
// the first mismatch short-circuits without reading the rest of the
// archive. Content comparison is a length-bounded byte compare, so
// embedded NUL bytes are handled correctly. After all records match, the
// regular files under dir are independently counted (recursively); extra
// files make the directory inequivalent.
func Equivalent(archivePath, dir string, opts ...Option) (bool, error) {
	cfg := newConfig(opts)

	f, err := os.Open(archivePath)
	if err != nil {
		cfg.log().Debug("archive not readable, treating as stale", "archive", archivePath, "error", err)
		return false, nil
	}
	defer f.Close()

	dec := NewDecoder(f)
	archiveBuf := make([]byte, compareChunkSize)
	fileBuf := make([]byte, compareChunkSize)
	count := 0
	for {
		rec, err := dec.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			if errors.Is(err, ErrTruncated) || errors.Is(err, ErrSizeOverflow) {
				cfg.log().Debug("archive is malformed, treating as stale", "archive", archivePath, "error", err)
				return false, nil
			}
			return false, err
		}
		count++

		same, err := matchesFile(dec, rec, filepath.Join(dir, rec.Name), archiveBuf, fileBuf)
		if err != nil {
			if errors.Is(err, ErrTruncated) {
				cfg.log().Debug("archive is malformed, treating as stale", "archive", archivePath, "error", err)
				return false, nil
			}
			return false, err
		}
		if !same {
			cfg.log().Debug("record differs from directory", "name", rec.Name)
			return false, nil
		}
	}

	// Files present in dir but absent from the archive only show up in an
	// independent count; the record loop cannot see them.
	records, err := Scan(dir)
	if err != nil {
		return false, err
	}
	return len(records) == count, nil
}

// matchesFile compares the current record's content against the live file
// at path. A missing file, size mismatch, or unreadable file is a plain
// mismatch, not an error.
func matchesFile(dec *Decoder, rec *Record, path string, archiveBuf, fileBuf []byte) (bool, error) {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() || uint64(info.Size()) != rec.Size {
		return false, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return false, nil
	}
	defer f.Close()

	remain := rec.Size
	for remain > 0 {
		n := uint64(len(archiveBuf))
		if n > remain {
			n = remain
		}
		if _, err := io.ReadFull(dec, archiveBuf[:n]); err != nil {
			return false, fmt.Errorf("read archive content: %w", err)
		}
		if _, err := io.ReadFull(f, fileBuf[:n]); err != nil {
			// File shrank between stat and read.
			return false, nil
		}
		if !bytes.Equal(archiveBuf[:n], fileBuf[:n]) {
			return false, nil
		}
		remain -= n
	}
	return true, nil
}
