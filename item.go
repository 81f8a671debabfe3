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
	"fmt"
	"strings"
	"unicode/utf8"
)

// Item is a menu entry: either a *Command or a *Popup.
type Item interface {
	Label() string
	isItem()
}

// Command is a leaf entry that fires ID when selected.
type Command struct {
	Type  uint32
	State uint32
	ID    uint32
	Text  string
}

// Popup is a submenu. It owns its children; the same *Popup must not
// appear twice in a tree.
type Popup struct {
	Type     uint32
	State    uint32
	ID       uint32
	HelpID   uint32
	Text     string
	Children Collection
}

func (*Command) isItem() {}
func (*Popup) isItem()   {}

func (c *Command) Label() string { return c.Text }
func (p *Popup) Label() string   { return p.Text }

// NewCommand returns a plain string command.
func NewCommand(id uint32, text string) (*Command, error) {
	if err := validText(text); err != nil {
		return nil, err
	}
	return &Command{ID: id, Text: text}, nil
}

// NewSeparator returns a separator entry.
func NewSeparator() *Command {
	return &Command{Type: MFTSeparator}
}

// NewPopup returns a submenu holding children.
func NewPopup(text string, helpID uint32, children ...Item) (*Popup, error) {
	if err := validText(text); err != nil {
		return nil, err
	}
	return &Popup{Text: text, HelpID: helpID, Children: children}, nil
}

// validText rejects strings that cannot be stored as a zero-terminated
// UTF-16 field.
func validText(s string) error {
	if !utf8.ValidString(s) {
		return fmt.Errorf("%w: %q is not UTF-8", ErrInvalidEncoding, s)
	}
	if strings.IndexByte(s, 0) >= 0 {
		return fmt.Errorf("%w: %q contains NUL", ErrInvalidEncoding, s)
	}
	return nil
}

// readItem decodes one record. The returned bool is the record's FlagLast
// bit, which belongs to the enclosing list rather than the item.
func (d *decoder) readItem(c *Cursor, depth int) (Item, bool, error) {
	c.Align4()

	var hdr MenuExItemTemplate
	var err error
	if hdr.Type, err = c.ReadU32(); err != nil {
		return nil, false, err
	}
	if hdr.State, err = c.ReadU32(); err != nil {
		return nil, false, err
	}
	if hdr.MenuID, err = c.ReadU32(); err != nil {
		return nil, false, err
	}
	if hdr.ResInfo, err = c.ReadU16(); err != nil {
		return nil, false, err
	}
	text, err := c.ReadWideString()
	if err != nil {
		return nil, false, err
	}

	flags := Flags(hdr.ResInfo)
	last := flags&FlagLast != 0
	if flags&FlagPopup == 0 {
		return &Command{
			Type:  hdr.Type,
			State: hdr.State,
			ID:    hdr.MenuID,
			Text:  text,
		}, last, nil
	}

	p := &Popup{
		Type:  hdr.Type,
		State: hdr.State,
		ID:    hdr.MenuID,
		Text:  text,
	}
	c.Align4()
	if p.HelpID, err = c.ReadU32(); err != nil {
		return nil, false, err
	}
	if p.Children, err = d.readCollection(c, depth+1); err != nil {
		return nil, false, err
	}
	return p, last, nil
}

// writeItem encodes one record. final is set when nothing at all follows
// the record in the stream.
func (e *encoder) writeItem(w *Writer, item Item, last, final bool, depth int) error {
	w.Pad4()

	var flags Flags
	if last {
		flags |= FlagLast
	}

	switch it := item.(type) {
	case *Command:
		if it == nil {
			return fmt.Errorf("menuex: nil %T in item list", item)
		}
		if err := validText(it.Text); err != nil {
			return err
		}
		if err := w.WriteStruct(MenuExItemTemplate{
			Type:    it.Type,
			State:   it.State,
			MenuID:  it.ID,
			ResInfo: uint16(flags),
		}); err != nil {
			return err
		}
		return w.WriteWideString(it.Text)

	case *Popup:
		if it == nil {
			return fmt.Errorf("menuex: nil %T in item list", item)
		}
		if err := validText(it.Text); err != nil {
			return err
		}
		if len(it.Children) == 0 && !final {
			return fmt.Errorf("menuex: popup %q: %w", it.Text, ErrAmbiguousEmptyPopup)
		}
		flags |= FlagPopup
		if err := w.WriteStruct(MenuExItemTemplate{
			Type:    it.Type,
			State:   it.State,
			MenuID:  it.ID,
			ResInfo: uint16(flags),
		}); err != nil {
			return err
		}
		if err := w.WriteWideString(it.Text); err != nil {
			return err
		}
		w.Pad4()
		w.WriteU32(it.HelpID)
		return e.writeCollection(w, it.Children, final, depth+1)

	default:
		return fmt.Errorf("menuex: unsupported item type %T", item)
	}
}
