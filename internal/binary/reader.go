// Package binary provides low-level binary I/O operations for SER file parsing.
package binary

import (
	"encoding/binary"
	"io"
	"strings"
)

// Reader provides methods for reading SER binary data. All multi-byte
// integer fields in a SER header are little-endian, so the reader is
// fixed to that order; pixel sample endianness is a separate concern
// handled by the geometry layer.
type Reader struct {
	r   io.ReaderAt
	pos int64
}

// NewReader creates a binary reader positioned at offset 0.
func NewReader(r io.ReaderAt) *Reader {
	return &Reader{r: r, pos: 0}
}

// At returns a new reader positioned at the given offset.
// The new reader shares the underlying io.ReaderAt but has independent position.
func (r *Reader) At(offset int64) *Reader {
	return &Reader{r: r.r, pos: offset}
}

// Pos returns the current read position.
func (r *Reader) Pos() int64 {
	return r.pos
}

// Skip advances the position by n bytes.
func (r *Reader) Skip(n int64) {
	r.pos += n
}

// ReadBytes reads exactly n bytes from the current position.
// A short source yields io.EOF or io.ErrUnexpectedEOF.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n <= 0 {
		return nil, nil
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(io.NewSectionReader(r.r, r.pos, int64(n)), buf); err != nil {
		return nil, err
	}
	r.pos += int64(n)
	return buf, nil
}

// ReadUint32 reads an unsigned 32-bit little-endian integer.
func (r *Reader) ReadUint32() (uint32, error) {
	buf, err := r.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf), nil
}

// ReadInt32 reads a signed 32-bit little-endian integer.
func (r *Reader) ReadInt32() (int32, error) {
	v, err := r.ReadUint32()
	return int32(v), err
}

// ReadInt64 reads a signed 64-bit little-endian integer.
func (r *Reader) ReadInt64() (int64, error) {
	buf, err := r.ReadBytes(8)
	if err != nil {
		return 0, err
	}
	return int64(binary.LittleEndian.Uint64(buf)), nil
}

// ReadString reads a fixed-width text field of n bytes and strips the
// trailing NUL or space padding SER writers use to fill the field.
func (r *Reader) ReadString(n int) (string, error) {
	buf, err := r.ReadBytes(n)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(buf), "\x00 "), nil
}
