// menuex: MENUEX resource template codec
//
// To the extent possible under law, the person who associated CC0 with
// menuex has waived all copyright and related or neighboring rights
// to menuex.
//
// You should have received a copy of the CC0 legalcode along with this
// work.  If not, see <http://creativecommons.org/publicdomain/zero/1.0/>.

package menuex

import (
	"encoding/binary"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// Cursor is a read position over a resource blob. Offsets, including the
// alignment boundary, are relative to the start of buf.
type Cursor struct {
	buf []byte
	p   int
}

func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Offset returns the current read position.
func (c *Cursor) Offset() int {
	return c.p
}

// Remaining returns the number of unread bytes. It is zero when an
// alignment step moved past the end.
func (c *Cursor) Remaining() int {
	if c.p >= len(c.buf) {
		return 0
	}
	return len(c.buf) - c.p
}

func (c *Cursor) take(n int) ([]byte, error) {
	if c.Remaining() < n {
		return nil, errAt(c.p, ErrUnexpectedEOF)
	}
	b := c.buf[c.p : c.p+n]
	c.p += n
	return b, nil
}

func (c *Cursor) ReadU8() (uint8, error) {
	b, err := c.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (c *Cursor) ReadU16() (uint16, error) {
	b, err := c.take(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (c *Cursor) ReadU32() (uint32, error) {
	b, err := c.take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadWideString reads UTF-16LE code units up to and including a zero
// terminator. An unpaired surrogate is ErrInvalidEncoding at the offset of
// the offending unit.
func (c *Cursor) ReadWideString() (string, error) {
	var sb strings.Builder
	for {
		at := c.p
		u, err := c.ReadU16()
		if err != nil {
			return "", err
		}
		switch {
		case u == 0:
			return sb.String(), nil
		case utf16.IsSurrogate(rune(u)):
			if u >= 0xdc00 {
				return "", errAt(at, ErrInvalidEncoding)
			}
			lo, err := c.ReadU16()
			if err != nil {
				return "", err
			}
			r := utf16.DecodeRune(rune(u), rune(lo))
			if r == utf8.RuneError {
				return "", errAt(at, ErrInvalidEncoding)
			}
			sb.WriteRune(r)
		default:
			sb.WriteRune(rune(u))
		}
	}
}

// Align4 moves to the next multiple of four. It never fails; a position
// past the end only matters to the next read.
func (c *Cursor) Align4() {
	c.p = (c.p + 3) &^ 3
}
