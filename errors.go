package archivator

import "errors"

// Sentinel errors for archive operations.
var (
	// ErrNotDirectory is returned when a scan source does not exist or is
	// not a directory.
	ErrNotDirectory = errors.New("archivator: source is not a directory")

	// ErrTruncated is returned when an archive ends before a record's
	// declared content (or its header) has been fully read.
	ErrTruncated = errors.New("archivator: truncated archive")

	// ErrInvalidName is returned for record names the format cannot
	// represent: empty names, names containing a NUL byte, and names
	// containing path separators.
	ErrInvalidName = errors.New("archivator: invalid record name")

	// ErrSizeOverflow is returned when a decoded record size exceeds the
	// range supported on this platform.
	ErrSizeOverflow = errors.New("archivator: record size overflow")
)
