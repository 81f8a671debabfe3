// menuex: MENUEX resource template codec
//
// To the extent possible under law, the person who associated CC0 with
// menuex has waived all copyright and related or neighboring rights
// to menuex.
//
// You should have received a copy of the CC0 legalcode along with this
// work.  If not, see <http://creativecommons.org/publicdomain/zero/1.0/>.

// Command menuex inspects and builds MENUEX resource blobs.
//
//	menuex dump [-raw] menu.bin
//	menuex yaml [-raw] menu.bin
//	menuex build [-raw] [-o menu.bin] menu.yaml
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/term"

	"menuex"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("menuex: ")

	if len(os.Args) < 2 {
		usage()
	}
	cmd, args := os.Args[1], os.Args[2:]

	fset := flag.NewFlagSet(cmd, flag.ExitOnError)
	configPath := fset.String("config", defaultConfigFile, "configuration file")
	raw := fset.Bool("raw", false, "input/output is a bare item list without template header")
	maxDepth := fset.Int("max-depth", 0, "maximum popup nesting (0 uses the config value)")
	out := fset.String("o", "", "output file (build only; default stdout)")
	must(fset.Parse(args), "parsing flags")
	if fset.NArg() != 1 {
		usage()
	}
	input := fset.Arg(0)

	cfg, err := LoadConfig(*configPath)
	must(err, "loading %q", *configPath)
	if *raw {
		cfg.Raw = true
	}
	if *maxDepth > 0 {
		cfg.MaxDepth = *maxDepth
	}

	switch cmd {
	case "dump":
		tmpl := readBinary(cfg, input)
		if cfg.Raw {
			fmt.Print(menuex.ToText(tmpl.Items))
		} else {
			fmt.Print(tmpl.String())
		}
	case "yaml":
		tmpl := readBinary(cfg, input)
		data, err := cfg.codec().EncodeYAML(tmpl)
		must(err, "encoding %q as yaml", input)
		_, err = os.Stdout.Write(data)
		must(err, "writing yaml")
	case "build":
		build(cfg, input, *out)
	default:
		usage()
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s dump|yaml|build [-config file] [-raw] [-max-depth n] [-o out] <file>\n", os.Args[0])
	os.Exit(2)
}

func readBinary(cfg Config, name string) *menuex.Template {
	data, err := os.ReadFile(name)
	must(err, "reading %q", name)
	codec := cfg.codec()
	if cfg.Raw {
		items, err := codec.Parse(data)
		must(err, "decoding %q", name)
		return &menuex.Template{Items: items}
	}
	tmpl, err := codec.ParseTemplate(data)
	must(err, "decoding %q", name)
	return tmpl
}

func build(cfg Config, input, output string) {
	src, err := os.ReadFile(input)
	must(err, "reading %q", input)
	codec := cfg.codec()
	tmpl, err := codec.DecodeYAML(src)
	must(err, "decoding %q", input)

	var data []byte
	if cfg.Raw {
		data, err = codec.Serialize(tmpl.Items)
	} else {
		data, err = codec.SerializeTemplate(tmpl)
	}
	must(err, "encoding %q", input)

	if output == "" {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			must(errors.New("refusing to write binary data to a terminal"), "writing output")
		}
		_, err = os.Stdout.Write(data)
		must(err, "writing output")
		return
	}
	f := create(output)
	_, err = f.Write(data)
	must(err, "writing %q", output)
	must(f.Close(), "closing %q", output)
}

func create(name string) *os.File {
	f, err := os.Create(name)
	must(err, "opening %q for write", name)
	return f
}

func must(err error, format string, args ...any) {
	if err != nil {
		log.Fatalf("%s: %v", fmt.Sprintf(format, args...), err)
	}
}
