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
	"bytes"
	"encoding/binary"

	"golang.org/x/text/encoding/unicode"
)

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// Writer accumulates a resource blob. Alignment is relative to the first
// byte written.
type Writer struct {
	buf bytes.Buffer
}

func (w *Writer) Len() int {
	return w.buf.Len()
}

func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// Pad4 writes zero bytes up to the next multiple of four.
func (w *Writer) Pad4() {
	var zero [3]byte
	w.buf.Write(zero[:(4-w.buf.Len()%4)%4])
}

// WriteStruct writes a fixed-layout structure with no padding between
// fields.
func (w *Writer) WriteStruct(v any) error {
	return binary.Write(&w.buf, binary.LittleEndian, v)
}

func (w *Writer) WriteU32(v uint32) {
	w.buf.Write(binary.LittleEndian.AppendUint32(nil, v))
}

// WriteWideString writes s as zero-terminated UTF-16LE. s must already be
// valid; see validText.
func (w *Writer) WriteWideString(s string) error {
	b, err := utf16le.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return err
	}
	w.buf.Write(b)
	w.buf.Write([]byte{0, 0})
	return nil
}
