package archivator

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/opencontainers/go-digest"
)

// RecordInfo describes one record in a [Manifest].
type RecordInfo struct {
	Name   string        `yaml:"name" json:"name"`
	Size   uint64        `yaml:"size" json:"size"`
	Digest digest.Digest `yaml:"digest" json:"digest"`
}

// Manifest lists an archive's records with content digests.
type Manifest struct {
	Archive    string       `yaml:"archive" json:"archive"`
	Files      int          `yaml:"files" json:"files"`
	TotalBytes uint64       `yaml:"totalBytes" json:"totalBytes"`
	Records    []RecordInfo `yaml:"records" json:"records"`
}

// Inspect decodes the archive at archivePath and returns a manifest of
// its records: name, size, and a SHA-256 content digest per record.
//
// Digests are for reporting and external tooling only; the equivalence
// check used by [Archive] compares content directly and never hashes.
func Inspect(archivePath string) (*Manifest, error) {
	f, err := os.Open(archivePath)
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	defer f.Close()

	dec := NewDecoder(f)
	m := &Manifest{Archive: archivePath, Records: []RecordInfo{}}
	for {
		rec, err := dec.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		dgst, err := digest.FromReader(dec)
		if err != nil {
			return nil, fmt.Errorf("digest %s: %w", rec.Name, err)
		}
		m.Records = append(m.Records, RecordInfo{Name: rec.Name, Size: rec.Size, Digest: dgst})
		m.Files++
		m.TotalBytes += rec.Size
	}
	return m, nil
}
