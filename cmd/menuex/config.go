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
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"menuex"
)

const defaultConfigFile = "menuex.yaml"

// Config holds settings shared by all subcommands. Flags given on the
// command line take precedence.
type Config struct {
	// MaxDepth is the deepest popup nesting accepted (default 64).
	MaxDepth int `yaml:"max_depth"`

	// Raw treats binary files as a bare item list with no MENUEX
	// template header.
	Raw bool `yaml:"raw"`
}

func (c *Config) applyDefaults() {
	if c.MaxDepth <= 0 {
		c.MaxDepth = menuex.DefaultMaxDepth
	}
}

func (c *Config) codec() menuex.Codec {
	return menuex.Codec{MaxDepth: c.MaxDepth}
}

// LoadConfig reads a configuration file. A missing file is not an error
// when path is the default name.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && path == defaultConfigFile {
			cfg.applyDefaults()
			return cfg, nil
		}
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	cfg.applyDefaults()
	return cfg, nil
}
