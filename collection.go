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

// Collection is an ordered list of sibling menu items.
type Collection []Item

type decoder struct {
	maxDepth int
}

type encoder struct {
	maxDepth int
}

// readCollection reads records until one carries FlagLast. depth counts
// the popups enclosing this list.
func (d *decoder) readCollection(c *Cursor, depth int) (Collection, error) {
	if depth > d.maxDepth {
		return nil, errAt(c.Offset(), ErrDepthExceeded)
	}

	var items Collection
	for {
		c.Align4()
		if c.Remaining() == 0 {
			// A popup with no children ends its blob right after its help ID.
			if depth > 0 && len(items) == 0 {
				return items, nil
			}
			return nil, errAt(c.Offset(), ErrMissingTerminator)
		}

		item, last, err := d.readItem(c, depth)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		if last {
			return items, nil
		}
	}
}

// writeCollection encodes items in order. final reports whether the
// stream ends with this list.
func (e *encoder) writeCollection(w *Writer, items Collection, final bool, depth int) error {
	if depth > e.maxDepth {
		return fmt.Errorf("menuex: %w (limit %d)", ErrDepthExceeded, e.maxDepth)
	}
	for i, item := range items {
		last := i == len(items)-1
		if err := e.writeItem(w, item, last, last && final, depth); err != nil {
			return err
		}
	}
	return nil
}

// Format renders the list in resource script syntax: a BEGIN line, each
// item one level deeper, and an END line. An empty list renders nothing.
// Popups nested deeper than DefaultMaxDepth are printed without their
// children.
func (items Collection) Format(indent int) string {
	var sb strings.Builder
	items.format(&sb, indent, 0)
	return sb.String()
}

func (items Collection) format(sb *strings.Builder, indent, depth int) {
	if len(items) == 0 || depth > DefaultMaxDepth {
		return
	}
	pad := strings.Repeat(" ", indent)
	fmt.Fprintf(sb, "%sBEGIN\n", pad)
	for _, item := range items {
		formatItem(sb, item, indent+1, depth)
	}
	fmt.Fprintf(sb, "%sEND\n", pad)
}

func formatItem(sb *strings.Builder, item Item, indent, depth int) {
	pad := strings.Repeat(" ", indent)
	switch it := item.(type) {
	case *Command:
		if it == nil {
			return
		}
		if it.Type&MFTSeparator != 0 {
			fmt.Fprintf(sb, "%sMENUITEM SEPARATOR\n", pad)
			return
		}
		fmt.Fprintf(sb, "%sMENUITEM %s, %d\n", pad, quote(it.Text), it.ID)
	case *Popup:
		if it == nil {
			return
		}
		fmt.Fprintf(sb, "%sPOPUP %s\n", pad, quote(it.Text))
		it.Children.format(sb, indent, depth+1)
	}
}

// quote doubles embedded quotes the way resource scripts escape them.
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// String renders the list at indent zero, wrapped in BEGIN and END.
func (items Collection) String() string {
	return items.Format(0)
}
