// menuex: MENUEX resource template codec
//
// To the extent possible under law, the person who associated CC0 with
// menuex has waived all copyright and related or neighboring rights
// to menuex.
//
// You should have received a copy of the CC0 legalcode along with this
// work.  If not, see <http://creativecommons.org/publicdomain/zero/1.0/>.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"menuex"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "menuex.yaml")
	if err := os.WriteFile(name, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return name
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(writeTemp(t, "max_depth: 8\nraw: true\n"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.MaxDepth != 8 || !cfg.Raw {
		t.Errorf("LoadConfig = %+v, want max_depth 8 raw true", cfg)
	}
	if cfg.codec().MaxDepth != 8 {
		t.Errorf("codec().MaxDepth = %d, want 8", cfg.codec().MaxDepth)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeTemp(t, "raw: false\n"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.MaxDepth != menuex.DefaultMaxDepth {
		t.Errorf("MaxDepth = %d, want %d", cfg.MaxDepth, menuex.DefaultMaxDepth)
	}
}

func TestLoadConfigMissing(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })
	cfg, err := LoadConfig(defaultConfigFile)
	if err != nil {
		t.Fatalf("LoadConfig of absent default: %v", err)
	}
	if cfg.MaxDepth != menuex.DefaultMaxDepth || cfg.Raw {
		t.Errorf("LoadConfig = %+v, want defaults", cfg)
	}
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "other.yaml")); err == nil {
		t.Error("LoadConfig of absent explicit file succeeded")
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	if _, err := LoadConfig(writeTemp(t, "max_depth: [")); err == nil {
		t.Error("LoadConfig of malformed yaml succeeded")
	}
}
