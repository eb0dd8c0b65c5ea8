// Package wire implements the primitive codec shared by every section:
// fixed-width little-endian integers, length-prefixed strings, fixed-size
// null-padded buffers, and the raw-deflate payload framing.
package wire

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"

	"github.com/scxtools/scx/pkg/scen"
)

// Reader decodes primitive values from a byte stream, tracking the
// absolute offset and the current section name for error context.
type Reader struct {
	r       io.Reader
	off     int64
	section string
}

// NewReader wraps r. The section name is attached to decode errors and
// can be changed with SetSection as decoding moves through the file.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// SetSection names the section being decoded, for error context.
func (r *Reader) SetSection(name string) { r.section = name }

// Offset returns the number of bytes consumed so far.
func (r *Reader) Offset() int64 { return r.off }

// Bytes reads exactly n bytes for the named field.
func (r *Reader) Bytes(field string, n int) ([]byte, error) {
	buf := make([]byte, n)
	got, err := io.ReadFull(r.r, buf)
	r.off += int64(got)
	if err != nil {
		return nil, &scen.TruncatedInputError{
			Section: r.section,
			Field:   field,
			Offset:  r.off,
			Want:    n,
			Got:     got,
		}
	}
	return buf, nil
}

// Uint8 reads one unsigned byte.
func (r *Reader) Uint8(field string) (uint8, error) {
	b, err := r.Bytes(field, 1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// Uint16 reads a little-endian uint16.
func (r *Reader) Uint16(field string) (uint16, error) {
	b, err := r.Bytes(field, 2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// Uint32 reads a little-endian uint32.
func (r *Reader) Uint32(field string) (uint32, error) {
	b, err := r.Bytes(field, 4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// Int8 reads one signed byte.
func (r *Reader) Int8(field string) (int8, error) {
	v, err := r.Uint8(field)
	return int8(v), err
}

// Int16 reads a little-endian int16.
func (r *Reader) Int16(field string) (int16, error) {
	v, err := r.Uint16(field)
	return int16(v), err
}

// Int32 reads a little-endian int32.
func (r *Reader) Int32(field string) (int32, error) {
	v, err := r.Uint32(field)
	return int32(v), err
}

// Float32 reads a little-endian IEEE 754 single-precision float.
func (r *Reader) Float32(field string) (float32, error) {
	v, err := r.Uint32(field)
	return math.Float32frombits(v), err
}

// Bool32 reads a uint32 and reports whether it is nonzero.
func (r *Reader) Bool32(field string) (bool, error) {
	v, err := r.Uint32(field)
	return v != 0, err
}

// String reads a length-prefixed string. The prefix is a little-endian
// unsigned integer of prefixWidth bytes (2 or 4) counting the encoded
// bytes including a trailing NUL, which is stripped from the result.
func (r *Reader) String(field string, prefixWidth int) (string, error) {
	var n int
	switch prefixWidth {
	case 2:
		v, err := r.Uint16(field)
		if err != nil {
			return "", err
		}
		n = int(v)
	case 4:
		v, err := r.Uint32(field)
		if err != nil {
			return "", err
		}
		n = int(v)
	default:
		panic("wire: string prefix width must be 2 or 4")
	}
	if n == 0 {
		return "", nil
	}
	buf, err := r.Bytes(field, n)
	if err != nil {
		return "", err
	}
	return string(bytes.TrimRight(buf, "\x00")), nil
}

// FixedString reads an n-byte null-padded character buffer and returns
// the content up to the first NUL.
func (r *Reader) FixedString(field string, n int) (string, error) {
	buf, err := r.Bytes(field, n)
	if err != nil {
		return "", err
	}
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		buf = buf[:i]
	}
	return string(buf), nil
}
