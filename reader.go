package archivator

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

// Decoder reads records from an archive stream.
//
// Usage mirrors archive/tar's reader: Next advances to the following
// record header (discarding any unread content of the current one), and
// Read returns the current record's content, ending in io.EOF once the
// declared size has been consumed.
type Decoder struct {
	r      *bufio.Reader
	remain uint64
	err    error
}

// NewDecoder returns a Decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: bufio.NewReader(r)}
}

// Next advances to the next record and returns its header.
//
// It returns io.EOF at a clean end of the archive: either the stream is
// exhausted at a record boundary, or an empty name is read (empty names
// never belong to real records). A stream ending inside a name, size
// field, or declared content returns an error wrapping [ErrTruncated].
func (d *Decoder) Next() (*Record, error) {
	if d.err != nil {
		return nil, d.err
	}
	if d.remain > 0 {
		if _, err := io.CopyN(io.Discard, d.r, int64(d.remain)); err != nil {
			d.err = fmt.Errorf("skip record content: %w", ErrTruncated)
			return nil, d.err
		}
		d.remain = 0
	}

	name, err := d.readName()
	if err != nil {
		d.err = err
		return nil, d.err
	}
	if name == "" {
		d.err = io.EOF
		return nil, io.EOF
	}

	var buf [8]byte
	if _, err := io.ReadFull(d.r, buf[:]); err != nil {
		d.err = fmt.Errorf("record %q size: %w", name, ErrTruncated)
		return nil, d.err
	}
	size := binary.LittleEndian.Uint64(buf[:])
	if size > math.MaxInt64 {
		d.err = fmt.Errorf("record %q: %w", name, ErrSizeOverflow)
		return nil, d.err
	}
	d.remain = size
	return &Record{Name: name, Size: size}, nil
}

// readName reads bytes up to the NUL terminator. Immediate end of stream
// yields an empty name (a clean end); end of stream mid-name is a
// truncated archive.
func (d *Decoder) readName() (string, error) {
	raw, err := d.r.ReadBytes(0)
	switch {
	case err == nil:
		return string(raw[:len(raw)-1]), nil
	case errors.Is(err, io.EOF):
		if len(raw) == 0 {
			return "", nil
		}
		return "", fmt.Errorf("record name %q: %w", raw, ErrTruncated)
	default:
		return "", fmt.Errorf("read record name: %w", err)
	}
}

// Read reads content bytes of the current record. It returns io.EOF once
// the record's declared size has been consumed, and an error wrapping
// [ErrTruncated] if the stream ends early.
func (d *Decoder) Read(p []byte) (int, error) {
	if d.err != nil && !errors.Is(d.err, io.EOF) {
		return 0, d.err
	}
	if d.remain == 0 {
		return 0, io.EOF
	}
	if uint64(len(p)) > d.remain {
		p = p[:d.remain]
	}
	n, err := d.r.Read(p)
	d.remain -= uint64(n)
	if err != nil && errors.Is(err, io.EOF) && d.remain > 0 {
		d.err = fmt.Errorf("record content: %w", ErrTruncated)
		return n, d.err
	}
	if err != nil && errors.Is(err, io.EOF) {
		// Declared size fully read exactly at end of stream.
		return n, nil
	}
	return n, err
}
