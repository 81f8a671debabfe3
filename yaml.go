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

	"gopkg.in/yaml.v3"
)

// yamlItem is the source form of a menu entry. An entry is a popup when
// popup is set or it has items.
type yamlItem struct {
	Text      string     `yaml:"text,omitempty"`
	ID        uint32     `yaml:"id,omitempty"`
	HelpID    uint32     `yaml:"help_id,omitempty"`
	Type      uint32     `yaml:"type,omitempty"`
	State     uint32     `yaml:"state,omitempty"`
	Separator bool       `yaml:"separator,omitempty"`
	Popup     bool       `yaml:"popup,omitempty"`
	Items     []yamlItem `yaml:"items,omitempty"`
}

type yamlTemplate struct {
	HelpID uint32     `yaml:"help_id,omitempty"`
	Items  []yamlItem `yaml:"items"`
}

// DecodeYAML reads a menu description such as
//
//	help_id: 0
//	items:
//	  - text: "&File"
//	    items:
//	      - {text: "&New", id: 1}
//	      - separator: true
//	      - {text: "E&xit", id: 2}
//
// The result is checked with Validate, so a popup with no items is only
// accepted as the final entry of the menu.
func (cd Codec) DecodeYAML(data []byte) (*Template, error) {
	var src yamlTemplate
	if err := yaml.Unmarshal(data, &src); err != nil {
		return nil, fmt.Errorf("parsing menu yaml: %w", err)
	}
	items, err := cd.fromYAML(src.Items, 0)
	if err != nil {
		return nil, err
	}
	if err := cd.Validate(items); err != nil {
		return nil, err
	}
	return &Template{HelpID: src.HelpID, Items: items}, nil
}

func (cd Codec) fromYAML(src []yamlItem, depth int) (Collection, error) {
	if depth > cd.maxDepth() {
		return nil, fmt.Errorf("menuex: %w (limit %d)", ErrDepthExceeded, cd.maxDepth())
	}
	// Empty lists decode as nil, the same as Parse returns them.
	if len(src) == 0 {
		return nil, nil
	}
	items := make(Collection, 0, len(src))
	for i, y := range src {
		if err := validText(y.Text); err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		typ := y.Type
		if y.Separator {
			typ |= MFTSeparator
		}
		if !y.Popup && len(y.Items) == 0 {
			items = append(items, &Command{Type: typ, State: y.State, ID: y.ID, Text: y.Text})
			continue
		}
		children, err := cd.fromYAML(y.Items, depth+1)
		if err != nil {
			return nil, fmt.Errorf("popup %q: %w", y.Text, err)
		}
		items = append(items, &Popup{
			Type:     typ,
			State:    y.State,
			ID:       y.ID,
			HelpID:   y.HelpID,
			Text:     y.Text,
			Children: children,
		})
	}
	return items, nil
}

// EncodeYAML writes t in the form DecodeYAML reads.
func (cd Codec) EncodeYAML(t *Template) ([]byte, error) {
	items, err := cd.toYAML(t.Items, 0)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(yamlTemplate{HelpID: t.HelpID, Items: items})
}

func (cd Codec) toYAML(items Collection, depth int) ([]yamlItem, error) {
	if depth > cd.maxDepth() {
		return nil, fmt.Errorf("menuex: %w (limit %d)", ErrDepthExceeded, cd.maxDepth())
	}
	out := make([]yamlItem, 0, len(items))
	for _, item := range items {
		switch it := item.(type) {
		case *Command:
			if it == nil {
				return nil, fmt.Errorf("menuex: nil %T in item list", item)
			}
			y := yamlItem{Type: it.Type, State: it.State, ID: it.ID, Text: it.Text}
			if it.Type&MFTSeparator != 0 {
				y.Separator = true
				y.Type &^= MFTSeparator
			}
			out = append(out, y)
		case *Popup:
			if it == nil {
				return nil, fmt.Errorf("menuex: nil %T in item list", item)
			}
			children, err := cd.toYAML(it.Children, depth+1)
			if err != nil {
				return nil, err
			}
			out = append(out, yamlItem{
				Type:   it.Type,
				State:  it.State,
				ID:     it.ID,
				HelpID: it.HelpID,
				Text:   it.Text,
				Popup:  true,
				Items:  children,
			})
		default:
			return nil, fmt.Errorf("menuex: unsupported item type %T", item)
		}
	}
	return out, nil
}
