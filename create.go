package archivator

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Result summarizes an Archive or Unarchive operation.
type Result struct {
	// Skipped is true when Archive found the existing archive already
	// equivalent to the source directory and performed no write.
	Skipped bool

	// Files is the number of records written or extracted.
	Files int

	// Bytes is the total content bytes written or extracted.
	Bytes uint64
}

// Archive builds an archive of dir's regular files at archivePath.
//
// If an archive already exists at archivePath and is byte-for-byte
// equivalent to dir (see [Equivalent]), no write is performed and the
// result reports Skipped. Otherwise dir is scanned recursively and any
// existing file at archivePath is overwritten.
//
// Skip policy: a source file that cannot be opened or stat'd at write
// time is logged at Warn and left out of the archive. A source file that
// fails mid-read, or any archive write failure, aborts the operation and
// may leave a partially written archive on disk.
func Archive(dir, archivePath string, opts ...Option) (*Result, error) {
	cfg := newConfig(opts)

	if !cfg.force {
		same, err := Equivalent(archivePath, dir, opts...)
		if err != nil {
			return nil, err
		}
		if same {
			cfg.log().Info("archive is up to date", "archive", archivePath, "source", dir)
			return &Result{Skipped: true}, nil
		}
	}

	records, err := Scan(dir)
	if err != nil {
		return nil, err
	}

	out, err := os.Create(archivePath)
	if err != nil {
		return nil, fmt.Errorf("create archive: %w", err)
	}
	defer out.Close()

	enc := NewEncoder(out)
	res := &Result{}
	for i := range records {
		n, ok, err := appendFile(enc, &records[i], cfg.log())
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		res.Files++
		res.Bytes += n
	}
	if err := enc.Flush(); err != nil {
		return nil, err
	}
	if err := out.Close(); err != nil {
		return nil, fmt.Errorf("close archive: %w", err)
	}

	cfg.log().Info("archive written", "archive", archivePath, "files", res.Files, "bytes", res.Bytes)
	return res, nil
}

// appendFile writes one scanned file as a record. Open and stat failures
// are skipped with a warning; the record size is re-read from the open
// handle so the header always matches the bytes that follow it.
func appendFile(enc *Encoder, rec *Record, logger *slog.Logger) (uint64, bool, error) {
	f, err := os.Open(rec.Path)
	if err != nil {
		logger.Warn("skipping unreadable file", "path", rec.Path, "error", err)
		return 0, false, nil
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		logger.Warn("skipping unreadable file", "path", rec.Path, "error", err)
		return 0, false, nil
	}
	size := uint64(info.Size())

	if err := enc.WriteHeader(rec.Name, size); err != nil {
		return 0, false, err
	}
	if _, err := io.CopyN(enc, f, int64(size)); err != nil {
		return 0, false, fmt.Errorf("archive %s: %w", rec.Path, err)
	}
	return size, true, nil
}
