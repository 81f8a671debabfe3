// menuex: MENUEX resource template codec
//
// To the extent possible under law, the person who associated CC0 with
// menuex has waived all copyright and related or neighboring rights
// to menuex.
//
// You should have received a copy of the CC0 legalcode along with this
// work.  If not, see <http://creativecommons.org/publicdomain/zero/1.0/>.

// Package menuex decodes and encodes Windows extended menu (MENUEX)
// resource templates.
//
// The item stream is a list of DWORD-aligned records with no length
// prefix. Each record is either a command or a popup that owns a nested
// list, and every list ends with the record whose bResInfo has FlagLast
// set. Parse checks every read against the buffer and caps nesting, so
// malformed input yields a *ParseError instead of a panic.
package menuex

import "strings"

// DefaultMaxDepth is the popup nesting limit used when Codec.MaxDepth is
// zero.
const DefaultMaxDepth = 64

// Codec holds decode/encode settings. The zero value is ready to use.
type Codec struct {
	// MaxDepth is the deepest popup nesting accepted by Parse and
	// Serialize.
	MaxDepth int
}

func (cd Codec) maxDepth() int {
	if cd.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return cd.MaxDepth
}

// Parse decodes an item stream that starts at buf[0]. Alignment is
// measured from buf[0]. Nothing is returned on error.
func (cd Codec) Parse(buf []byte) (Collection, error) {
	return cd.parseAt(NewCursor(buf))
}

func (cd Codec) parseAt(c *Cursor) (Collection, error) {
	d := decoder{maxDepth: cd.maxDepth()}
	items, err := d.readCollection(c, 0)
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Serialize encodes items as an item stream. It fails only if an item's
// text cannot be encoded or the tree is nested too deeply.
func (cd Codec) Serialize(items Collection) ([]byte, error) {
	var w Writer
	if err := cd.serializeTo(&w, items); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

func (cd Codec) serializeTo(w *Writer, items Collection) error {
	e := encoder{maxDepth: cd.maxDepth()}
	return e.writeCollection(w, items, true, 0)
}

// Parse decodes buf with the default settings.
func Parse(buf []byte) (Collection, error) {
	return Codec{}.Parse(buf)
}

// Serialize encodes items with the default settings.
func Serialize(items Collection) ([]byte, error) {
	return Codec{}.Serialize(items)
}

// ToText renders the top-level items one after another with no enclosing
// BEGIN/END. Popup children are wrapped as in Collection.Format.
func ToText(items Collection) string {
	var sb strings.Builder
	for _, item := range items {
		formatItem(&sb, item, 0, 0)
	}
	return sb.String()
}

// Validate checks every text field and the nesting depth of the tree.
func (cd Codec) Validate(items Collection) error {
	_, err := cd.Serialize(items)
	return err
}
