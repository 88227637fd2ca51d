// Package codec implements the length prefixed byte string primitive
// shared by the protocol's wire encodings: a single byte count followed
// by that many raw bytes, read back through a sequential cursor.
package codec

import (
	"errors"
	"fmt"
)

var (
	ErrTooLong   = errors.New("byte sequence exceeds single byte length prefix")
	ErrShortRead = errors.New("insufficient bytes remain")
)

// AppendBytes appends b to buf as a one byte length field followed by
// the raw bytes, returning the extended buffer. The length field cannot
// represent more than 255 bytes; longer input is refused rather than
// wrapped.
func AppendBytes(buf, b []byte) ([]byte, error) {
	if len(b) > 0xFF {
		return nil, fmt.Errorf("%w: %d bytes", ErrTooLong, len(b))
	}
	buf = append(buf, byte(len(b)))
	return append(buf, b...), nil
}

// Cursor reads sequentially through a byte buffer. The zero value is an
// exhausted cursor.
type Cursor struct {
	buf []byte
	off int
}

func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Remaining returns the count of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.buf) - c.off
}

// Take consumes and returns the next n bytes. The returned slice aliases
// the cursor's buffer.
func (c *Cursor) Take(n int) ([]byte, error) {
	if n > c.Remaining() {
		return nil, fmt.Errorf("%w: want %d, have %d", ErrShortRead, n, c.Remaining())
	}
	b := c.buf[c.off : c.off+n]
	c.off += n
	return b, nil
}

// ReadBytes consumes a one byte length field and then exactly that many
// bytes, the inverse of AppendBytes.
func (c *Cursor) ReadBytes() ([]byte, error) {
	l, err := c.Take(1)
	if err != nil {
		return nil, err
	}
	return c.Take(int(l[0]))
}
