package archivator

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Unarchive extracts every record of the archive at archivePath into
// outDir, creating outDir and any missing parents first.
//
// Extraction is flat: each record becomes a file named by its record name
// directly inside outDir. Any directory hierarchy that existed before
// archiving is not reconstructed, because only base names were stored.
//
// Skip policy: a record whose output file cannot be created is logged at
// Warn and skipped (its content is still consumed from the stream). An
// unopenable archive, a truncated archive, or a write failure aborts the
// operation, leaving any partially extracted files in place.
func Unarchive(archivePath, outDir string, opts ...Option) (*Result, error) {
	cfg := newConfig(opts)

	f, err := os.Open(archivePath)
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	defer f.Close()

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	dec := NewDecoder(f)
	res := &Result{}
	for {
		rec, err := dec.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if !ValidName(rec.Name) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidName, rec.Name)
		}

		ok, err := extractRecord(dec, rec, outDir, cfg.log())
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		res.Files++
		res.Bytes += rec.Size
	}

	cfg.log().Info("archive extracted", "archive", archivePath, "dir", outDir, "files", res.Files, "bytes", res.Bytes)
	return res, nil
}

// extractRecord writes the current record's content to outDir/name.
// Create failures are skipped with a warning; the decoder discards the
// unread content when advancing to the next record.
func extractRecord(dec *Decoder, rec *Record, outDir string, logger *slog.Logger) (bool, error) {
	out, err := os.Create(filepath.Join(outDir, rec.Name))
	if err != nil {
		logger.Warn("skipping record, cannot create file", "name", rec.Name, "error", err)
		return false, nil
	}
	defer out.Close()

	if _, err := io.CopyN(out, dec, int64(rec.Size)); err != nil {
		return false, fmt.Errorf("extract %s: %w", rec.Name, err)
	}
	if err := out.Close(); err != nil {
		return false, fmt.Errorf("close %s: %w", rec.Name, err)
	}
	return true, nil
}
