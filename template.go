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
)

// Template is a complete MENUEX resource: the template header followed by
// the top-level item list.
type Template struct {
	HelpID uint32
	Items  Collection
}

// ParseTemplate decodes a MENUEX resource blob.
func ParseTemplate(buf []byte) (*Template, error) {
	return Codec{}.ParseTemplate(buf)
}

func (cd Codec) ParseTemplate(buf []byte) (*Template, error) {
	c := NewCursor(buf)
	version, err := c.ReadU16()
	if err != nil {
		return nil, err
	}
	if version != MenuExTemplateVersion {
		return nil, errAt(0, fmt.Errorf("%w: version %d", ErrBadTemplateHeader, version))
	}
	offset, err := c.ReadU16()
	if err != nil {
		return nil, err
	}
	if offset < 4 {
		return nil, errAt(2, fmt.Errorf("%w: item offset %d", ErrBadTemplateHeader, offset))
	}
	helpID, err := c.ReadU32()
	if err != nil {
		return nil, err
	}
	// wOffset counts from the end of itself.
	c.p = 4 + int(offset)
	items, err := cd.parseAt(c)
	if err != nil {
		return nil, err
	}
	return &Template{HelpID: helpID, Items: items}, nil
}

// MarshalBinary encodes t with the default settings.
func (t *Template) MarshalBinary() ([]byte, error) {
	return Codec{}.SerializeTemplate(t)
}

// UnmarshalBinary decodes a MENUEX resource blob into t.
func (t *Template) UnmarshalBinary(data []byte) error {
	parsed, err := ParseTemplate(data)
	if err != nil {
		return err
	}
	*t = *parsed
	return nil
}

func (cd Codec) SerializeTemplate(t *Template) ([]byte, error) {
	var w Writer
	if err := w.WriteStruct(MenuExTemplateHeader{
		Version: MenuExTemplateVersion,
		Offset:  SizeOfMenuExTemplateHeader - 4,
		HelpID:  t.HelpID,
	}); err != nil {
		return nil, err
	}
	if err := cd.serializeTo(&w, t.Items); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// String renders t as a MENUEX block in resource script syntax.
func (t *Template) String() string {
	var sb strings.Builder
	sb.WriteString("MENUEX\n")
	t.Items.format(&sb, 0, 0)
	return sb.String()
}
