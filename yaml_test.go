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
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDecodeYAML(t *testing.T) {
	src := `
help_id: 5
items:
  - text: "&File"
    items:
      - {text: "&New", id: 1}
      - separator: true
      - {text: "E&xit", id: 2, state: 3}
  - {text: About, id: 3}
  - text: Recent
    popup: true
    help_id: 9
`
	tmpl, err := Codec{}.DecodeYAML([]byte(src))
	if err != nil {
		t.Fatalf("DecodeYAML() error: %v", err)
	}
	want := &Template{
		HelpID: 5,
		Items: Collection{
			&Popup{Text: "&File", Children: Collection{
				&Command{ID: 1, Text: "&New"},
				&Command{Type: MFTSeparator},
				&Command{ID: 2, State: MFSGrayed, Text: "E&xit"},
			}},
			&Command{ID: 3, Text: "About"},
			&Popup{Text: "Recent", HelpID: 9},
		},
	}
	if !reflect.DeepEqual(tmpl, want) {
		t.Fatalf("DecodeYAML() =\n%s\nwant\n%s", tmpl, want)
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	in := &Template{
		HelpID: 1,
		Items: Collection{
			&Popup{Type: MFTRightJustify, ID: 4, HelpID: 2, Text: "Help", Children: Collection{
				&Command{Type: MFTSeparator | MFTMenuBreak},
				&Command{ID: 7, State: MFSChecked, Text: "ünï 😀"},
			}},
			&Popup{Text: "Empty"},
		},
	}
	data, err := Codec{}.EncodeYAML(in)
	if err != nil {
		t.Fatalf("EncodeYAML() error: %v", err)
	}
	out, err := Codec{}.DecodeYAML(data)
	if err != nil {
		t.Fatalf("DecodeYAML() error: %v\n%s", err, data)
	}
	if !reflect.DeepEqual(out, in) {
		t.Errorf("round trip mismatch:\n%s\ngot\n%s\nwant\n%s", data, out, in)
	}
}

func TestDecodeYAMLEmptyPopup(t *testing.T) {
	tmpl, err := Codec{}.DecodeYAML([]byte("items:\n  - {text: Exit, id: 2}\n  - {text: Recent, popup: true}\n"))
	if err != nil {
		t.Fatalf("DecodeYAML() error: %v", err)
	}
	b, err := tmpl.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary() error: %v", err)
	}
	got, err := ParseTemplate(b)
	if err != nil {
		t.Fatalf("ParseTemplate() error: %v", err)
	}
	if !reflect.DeepEqual(got, tmpl) {
		t.Errorf("binary round trip mismatch:\n%s\nwant\n%s", got, tmpl)
	}

	tests := []struct {
		name string
		src  string
	}{
		{name: "followed by sibling", src: "items:\n  - {text: Recent, popup: true}\n  - {text: Exit, id: 2}\n"},
		{name: "followed by parent sibling", src: "items:\n  - text: File\n    items:\n      - {text: Recent, popup: true}\n  - {text: Exit, id: 2}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := (Codec{}).DecodeYAML([]byte(tt.src)); !errors.Is(err, ErrAmbiguousEmptyPopup) {
				t.Errorf("DecodeYAML() error = %v, want ErrAmbiguousEmptyPopup", err)
			}
		})
	}
}

func TestDecodeYAMLErrors(t *testing.T) {
	if _, err := (Codec{}).DecodeYAML([]byte("items:\n  - text: \"a\\0b\"\n")); !errors.Is(err, ErrInvalidEncoding) {
		t.Errorf("DecodeYAML() with NUL error = %v, want ErrInvalidEncoding", err)
	}
	if _, err := (Codec{}).DecodeYAML([]byte("items: [")); err == nil {
		t.Error("DecodeYAML() of malformed yaml succeeded")
	}
	deep := "items:\n  - text: a\n    items:\n      - text: b\n        items:\n          - {text: c, id: 1}\n"
	if _, err := (Codec{MaxDepth: 1}).DecodeYAML([]byte(deep)); !errors.Is(err, ErrDepthExceeded) {
		t.Errorf("DecodeYAML() past depth cap error = %v, want ErrDepthExceeded", err)
	}
}

func TestSampleMenus(t *testing.T) {
	matches, err := filepath.Glob(filepath.Join("testdata", "*.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) == 0 {
		t.Skip("no sample menus")
	}
	for _, name := range matches {
		t.Run(filepath.Base(name), func(t *testing.T) {
			src, err := os.ReadFile(name)
			if err != nil {
				t.Fatal(err)
			}
			tmpl, err := Codec{}.DecodeYAML(src)
			if err != nil {
				t.Fatalf("DecodeYAML() error: %v", err)
			}
			b, err := tmpl.MarshalBinary()
			if err != nil {
				t.Fatalf("MarshalBinary() error: %v", err)
			}
			got, err := ParseTemplate(b)
			if err != nil {
				t.Fatalf("ParseTemplate() error: %v", err)
			}
			if !reflect.DeepEqual(got, tmpl) {
				t.Errorf("binary round trip mismatch:\n%s\nwant\n%s", got, tmpl)
			}
		})
	}
}
