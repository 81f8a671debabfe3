// menuex: MENUEX resource template codec
//
// To the extent possible under law, the person who associated CC0 with
// menuex has waived all copyright and related or neighboring rights
// to menuex.
//
// You should have received a copy of the CC0 legalcode along with this
// work.  If not, see <http://creativecommons.org/publicdomain/zero/1.0/>.

//go:build mage

package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

var Default = Build

// Build compiles the menuex command into bin/.
func Build() error {
	return sh.RunV("go", "build", "-o", filepath.Join("bin", "menuex"), "./cmd/menuex")
}

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Samples builds the sample menus under testdata/ into out/.
func Samples() error {
	mg.Deps(Build)
	if err := os.MkdirAll("out", 0o755); err != nil {
		return err
	}
	matches, err := filepath.Glob(filepath.Join("testdata", "*.yaml"))
	if err != nil {
		return err
	}
	for _, src := range matches {
		name := filepath.Base(src)
		dst := filepath.Join("out", name[:len(name)-len(filepath.Ext(name))]+".bin")
		if err := sh.RunV(filepath.Join("bin", "menuex"), "build", "-o", dst, src); err != nil {
			return err
		}
	}
	return nil
}

// Clean removes build output.
func Clean() error {
	if err := sh.Rm("bin"); err != nil {
		return err
	}
	return sh.Rm("out")
}
