package archivator

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
)

// Encoder serializes records to an archive stream.
//
// Usage mirrors archive/tar's writer: call WriteHeader for a record, then
// write exactly its declared size in content bytes before the next
// WriteHeader. Call Flush after the last record to drain buffered output.
type Encoder struct {
	w      *bufio.Writer
	remain uint64
	err    error
}

// NewEncoder returns an Encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: bufio.NewWriter(w)}
}

// WriteHeader begins a new record with the given name and content size.
//
// The previous record must be fully written first. Names are validated
// with [ValidName]; invalid names return [ErrInvalidName].
func (e *Encoder) WriteHeader(name string, size uint64) error {
	if e.err != nil {
		return e.err
	}
	if e.remain != 0 {
		return fmt.Errorf("archivator: record short by %d content bytes", e.remain)
	}
	if !ValidName(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if _, err := e.w.WriteString(name); err != nil {
		return e.setErr(err)
	}
	if err := e.w.WriteByte(0); err != nil {
		return e.setErr(err)
	}
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], size)
	if _, err := e.w.Write(buf[:]); err != nil {
		return e.setErr(err)
	}
	e.remain = size
	return nil
}

// Write writes content bytes for the current record. Writing more than
// the size declared in WriteHeader is an error.
func (e *Encoder) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	if uint64(len(p)) > e.remain {
		return 0, fmt.Errorf("archivator: write exceeds declared record size by %d bytes", uint64(len(p))-e.remain)
	}
	n, err := e.w.Write(p)
	e.remain -= uint64(n)
	if err != nil {
		return n, e.setErr(err)
	}
	return n, nil
}

// Flush writes any buffered data to the underlying writer. The current
// record must be complete.
func (e *Encoder) Flush() error {
	if e.err != nil {
		return e.err
	}
	if e.remain != 0 {
		return fmt.Errorf("archivator: record short by %d content bytes", e.remain)
	}
	if err := e.w.Flush(); err != nil {
		return e.setErr(err)
	}
	return nil
}

func (e *Encoder) setErr(err error) error {
	e.err = fmt.Errorf("write archive: %w", err)
	return e.err
}
