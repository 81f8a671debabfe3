// menuex: MENUEX resource template codec
//
// To the extent possible under law, the person who associated CC0 with
// menuex has waived all copyright and related or neighboring rights
// to menuex.
//
// You should have received a copy of the CC0 legalcode along with this
// work.  If not, see <http://creativecommons.org/publicdomain/zero/1.0/>.

package menuex

const (
	SizeOfMenuExTemplateHeader = 8
	SizeOfMenuExItemTemplate   = 14
)

// MenuExTemplateVersion is the only wVersion value defined for MENUEX
// resources.
const MenuExTemplateVersion = 1

// Flags are the bResInfo bits of a MenuExItemTemplate.
type Flags uint16

const (
	FlagPopup Flags = 0x01
	FlagLast  Flags = 0x80
)

// Menu item types (dwType). Only the ones the text form cares about are
// named here; the rest round trip untouched.
const (
	MFTString       = 0x00000000
	MFTBitmap       = 0x00000004
	MFTMenuBarBreak = 0x00000020
	MFTMenuBreak    = 0x00000040
	MFTOwnerDraw    = 0x00000100
	MFTRadioCheck   = 0x00000200
	MFTSeparator    = 0x00000800
	MFTRightOrder   = 0x00002000
	MFTRightJustify = 0x00004000
)

// Menu item states (dwState).
const (
	MFSGrayed  = 0x00000003
	MFSChecked = 0x00000008
	MFSHilite  = 0x00000080
	MFSDefault = 0x00001000
)

// MenuExTemplateHeader starts a MENUEX resource. The first item begins
// Offset bytes after the end of the Version and Offset fields.
type MenuExTemplateHeader struct {
	Version uint16
	Offset  uint16
	HelpID  uint32
}

// MenuExItemTemplate is the fixed part of every item record. It is
// followed by a zero-terminated UTF-16 string and, for popups, a
// DWORD-aligned help ID and the nested item list.
type MenuExItemTemplate struct {
	Type    uint32
	State   uint32
	MenuID  uint32
	ResInfo uint16
}
