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
	"errors"
	"fmt"
)

var (
	ErrUnexpectedEOF     = errors.New("unexpected end of buffer")
	ErrInvalidEncoding   = errors.New("invalid text encoding")
	ErrMissingTerminator = errors.New("item list ended without a last item")
	ErrDepthExceeded     = errors.New("menu nesting too deep")
	ErrBadTemplateHeader = errors.New("bad menu template header")

	// ErrAmbiguousEmptyPopup is returned for a popup with no children that
	// is followed by another record. The reader would take that record as
	// the popup's first child.
	ErrAmbiguousEmptyPopup = errors.New("empty popup must be the final record")
)

// ParseError reports where in the input a decode failed. Err is one of the
// sentinel errors above.
type ParseError struct {
	Offset int
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("menuex: offset %#x: %v", e.Offset, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func errAt(offset int, err error) error {
	return &ParseError{Offset: offset, Err: err}
}
