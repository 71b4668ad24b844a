package encoding

import (
	"fmt"
	"math"

	"github.com/arloliu/htscodec/endian"
	"github.com/arloliu/htscodec/errs"
)

// Cursor is a forward-only reader over a byte slice.
//
// A Cursor does not copy its input; slices returned by Next alias the
// original buffer and must not be modified.
type Cursor struct {
	buf    []byte
	off    int
	engine endian.EndianEngine
}

// NewCursor creates a cursor positioned at the start of buf.
//
// Parameters:
//   - buf: Input bytes (not copied)
//   - engine: Byte order used by ReadUint16 and ReadUint32
//
// Returns:
//   - *Cursor: A new cursor
func NewCursor(buf []byte, engine endian.EndianEngine) *Cursor {
	return &Cursor{buf: buf, engine: engine}
}

// Len returns the number of unread bytes.
func (c *Cursor) Len() int {
	return len(c.buf) - c.off
}

// Offset returns the number of bytes consumed so far.
func (c *Cursor) Offset() int {
	return c.off
}

// Remaining returns the unread bytes without consuming them.
func (c *Cursor) Remaining() []byte {
	return c.buf[c.off:]
}

// Next consumes n bytes and returns them as a sub-slice of the input.
func (c *Cursor) Next(n int) ([]byte, error) {
	if n < 0 || n > c.Len() {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d",
			errs.ErrUnexpectedEOF, n, c.off, c.Len())
	}
	b := c.buf[c.off : c.off+n]
	c.off += n

	return b, nil
}

// ReadUint8 consumes one byte.
func (c *Cursor) ReadUint8() (uint8, error) {
	if c.off >= len(c.buf) {
		return 0, fmt.Errorf("%w: need 1 byte at offset %d", errs.ErrUnexpectedEOF, c.off)
	}
	b := c.buf[c.off]
	c.off++

	return b, nil
}

// ReadUint16 consumes a 16-bit integer in the cursor's byte order.
func (c *Cursor) ReadUint16() (uint16, error) {
	b, err := c.Next(2)
	if err != nil {
		return 0, err
	}

	return c.engine.Uint16(b), nil
}

// ReadUint32 consumes a 32-bit integer in the cursor's byte order.
func (c *Cursor) ReadUint32() (uint32, error) {
	b, err := c.Next(4)
	if err != nil {
		return 0, err
	}

	return c.engine.Uint32(b), nil
}

// ReadUint32s fills dst with consecutive 32-bit integers.
//
// Nothing is consumed unless all of dst can be filled.
func (c *Cursor) ReadUint32s(dst []uint32) error {
	b, err := c.Next(4 * len(dst))
	if err != nil {
		return err
	}
	for i := range dst {
		dst[i] = c.engine.Uint32(b[4*i:])
	}

	return nil
}

// ReadUint7 consumes a uint7 variable-length integer.
//
// The encoding is big-endian groups of 7 bits with a continuation flag in the
// high bit of each byte. Values wider than 32 bits fail with
// errs.ErrInvalidLength; running out of input fails with
// errs.ErrUnexpectedEOF.
func (c *Cursor) ReadUint7() (uint32, error) {
	var v uint64
	for i := 0; i < MaxUint7Bytes; i++ {
		b, err := c.ReadUint8()
		if err != nil {
			return 0, err
		}
		v = v<<7 | uint64(b&0x7f)
		if v > math.MaxUint32 {
			return 0, fmt.Errorf("%w: uint7 value overflows 32 bits at offset %d", errs.ErrInvalidLength, c.off)
		}
		if b&0x80 == 0 {
			return uint32(v), nil
		}
	}

	return 0, fmt.Errorf("%w: uint7 longer than %d bytes at offset %d", errs.ErrInvalidLength, MaxUint7Bytes, c.off)
}

// ReadLength consumes a uint7 and checks it against limit.
//
// Use it for every length that sizes an allocation.
func (c *Cursor) ReadLength(limit int) (int, error) {
	v, err := c.ReadUint7()
	if err != nil {
		return 0, err
	}
	if uint64(v) > uint64(limit) { //nolint:gosec
		return 0, fmt.Errorf("%w: %d exceeds limit %d", errs.ErrInvalidLength, v, limit)
	}

	return int(v), nil
}
