package archivator

import "strings"

// Record describes one file in an archive.
//
// Records produced by [Scan] carry the source Path for a later content
// read; records returned by [Decoder.Next] leave Path empty, since their
// content is read from the archive stream itself. Content is never held
// on the Record: it flows through the encoder or decoder exactly once.
type Record struct {
	// Name is the base filename, with no directory component.
	Name string

	// Path locates the source file for records produced by a directory
	// scan. Empty for records decoded from an archive.
	Path string

	// Size is the exact content length in bytes.
	Size uint64
}

// ValidName reports whether name can be stored as a record name.
//
// An empty name is the wire-level end-of-stream sentinel, a NUL byte
// collides with the name terminator, and path separators have no meaning
// in a flat archive. "." and ".." are rejected because they can never be
// regular-file names.
func ValidName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, "\x00/\\")
}
