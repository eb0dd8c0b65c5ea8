package wire

import (
	"bytes"
	"encoding/binary"
	"math"

	"github.com/scxtools/scx/pkg/scen"
)

// Writer encodes primitive values into an in-memory buffer. Building the
// full output before touching the destination keeps failed encodes from
// leaving half-written files.
type Writer struct {
	buf     bytes.Buffer
	section string
}

// NewWriter returns an empty writer.
func NewWriter() *Writer {
	return &Writer{}
}

// SetSection names the section being encoded, for error context.
func (w *Writer) SetSection(name string) { w.section = name }

// Bytes returns the encoded output.
func (w *Writer) Bytes() []byte { return w.buf.Bytes() }

// Raw appends bytes verbatim.
func (w *Writer) Raw(b []byte) {
	w.buf.Write(b)
}

// Uint8 writes one unsigned byte.
func (w *Writer) Uint8(v uint8) {
	w.buf.WriteByte(v)
}

// Uint16 writes a little-endian uint16.
func (w *Writer) Uint16(v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	w.buf.Write(b[:])
}

// Uint32 writes a little-endian uint32.
func (w *Writer) Uint32(v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	w.buf.Write(b[:])
}

// Int8 writes one signed byte.
func (w *Writer) Int8(v int8) { w.Uint8(uint8(v)) }

// Int16 writes a little-endian int16.
func (w *Writer) Int16(v int16) { w.Uint16(uint16(v)) }

// Int32 writes a little-endian int32.
func (w *Writer) Int32(v int32) { w.Uint32(uint32(v)) }

// Float32 writes a little-endian IEEE 754 single-precision float.
func (w *Writer) Float32(v float32) { w.Uint32(math.Float32bits(v)) }

// Bool32 writes 1 or 0 as a uint32.
func (w *Writer) Bool32(v bool) {
	if v {
		w.Uint32(1)
	} else {
		w.Uint32(0)
	}
}

// String writes a length-prefixed string with a prefix of prefixWidth
// bytes (2 or 4). The prefix counts the encoded bytes plus the trailing
// NUL. Fails when the prefix type cannot represent the length.
func (w *Writer) String(field string, prefixWidth int, s string) error {
	n := len(s) + 1
	switch prefixWidth {
	case 2:
		if n > math.MaxUint16 {
			return &scen.StringTooLongError{
				Section: w.section,
				Field:   field,
				Length:  len(s),
				Max:     math.MaxUint16 - 1,
			}
		}
		w.Uint16(uint16(n))
	case 4:
		if int64(n) > math.MaxUint32 {
			return &scen.StringTooLongError{
				Section: w.section,
				Field:   field,
				Length:  len(s),
				Max:     math.MaxUint32 - 1,
			}
		}
		w.Uint32(uint32(n))
	default:
		panic("wire: string prefix width must be 2 or 4")
	}
	w.buf.WriteString(s)
	w.buf.WriteByte(0)
	return nil
}

// FixedString writes s into an n-byte buffer padded with NULs. Fails when
// s does not fit with its terminator.
func (w *Writer) FixedString(field string, n int, s string) error {
	if len(s) >= n {
		return &scen.StringTooLongError{
			Section: w.section,
			Field:   field,
			Length:  len(s),
			Max:     n - 1,
		}
	}
	w.buf.WriteString(s)
	for i := len(s); i < n; i++ {
		w.buf.WriteByte(0)
	}
	return nil
}
