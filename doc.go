// Package archivator implements a flat single-file archive container.
//
// An archive is a concatenation of records with no container header,
// footer, or magic number. Each record frames one file as:
//
//	[name bytes][1 NUL byte][8-byte little-endian uint64 size][size content bytes]
//
// Only base filenames are stored: archiving flattens any directory
// hierarchy, and extraction writes every record directly into the output
// directory. End of archive is implicit; a reader stops at end of stream
// (or on an empty name, which can never belong to a real record).
//
// # Quick start
//
// Archive a directory, skipping the write when an existing archive
// already matches it byte-for-byte:
//
//	res, err := archivator.Archive("./data", "data.arc")
//	if err != nil {
//	    return err
//	}
//	if res.Skipped {
//	    // data.arc already matched ./data
//	}
//
// Extract:
//
//	_, err = archivator.Unarchive("data.arc", "./restored")
//
// The [Encoder] and [Decoder] types expose the record framing directly,
// with an API shaped like archive/tar: WriteHeader then content writes,
// Next then content reads.
//
// # Format limitations
//
// Record names cannot contain NUL bytes (the byte is the name terminator)
// or path separators (the format is flat). Files whose names violate this
// cannot be archived; [Encoder.WriteHeader] rejects them.
package archivator
