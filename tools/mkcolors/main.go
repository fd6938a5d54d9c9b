package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"go/parser"
	"go/printer"
	"go/token"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"vgaos/device/video/console"
)

type writerConfig struct {
	Foreground string `toml:"foreground"`
	Background string `toml:"background"`
}

type config struct {
	Writer writerConfig `toml:"writer"`
}

func exit(err error) {
	fmt.Fprintf(os.Stderr, "[mkcolors] error: %s\n", err.Error())
	os.Exit(1)
}

// loadConfig decodes a vga.toml document. Missing keys fall back to the
// stock Yellow on Black scheme while unknown keys are rejected.
func loadConfig(r io.Reader) (console.Color, console.Color, error) {
	cfg := config{
		Writer: writerConfig{
			Foreground: console.Yellow.String(),
			Background: console.Black.String(),
		},
	}

	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return 0, 0, err
	}

	if undecoded := md.Undecoded(); len(undecoded) != 0 {
		return 0, 0, fmt.Errorf("unknown configuration key %q", undecoded[0].String())
	}

	fg, ok := console.ParseColor(cfg.Writer.Foreground)
	if !ok {
		return 0, 0, fmt.Errorf("unknown foreground color %q", cfg.Writer.Foreground)
	}

	bg, ok := console.ParseColor(cfg.Writer.Background)
	if !ok {
		return 0, 0, fmt.Errorf("unknown background color %q", cfg.Writer.Background)
	}

	return fg, bg, nil
}

// constName maps a color name such as "light-gray" to the exported console
// constant LightGray.
func constName(c console.Color) string {
	var b strings.Builder
	for _, part := range strings.Split(c.String(), "-") {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}

func genColorsFile(fg, bg console.Color) []byte {
	var buf bytes.Buffer

	fmt.Fprint(&buf, "// Code generated by mkcolors from vga.toml; DO NOT EDIT.\n\n")
	fmt.Fprint(&buf, "package hal\n\n")
	fmt.Fprint(&buf, "import \"vgaos/device/video/console\"\n\n")
	fmt.Fprint(&buf, "const (\n")
	fmt.Fprint(&buf, "// DefaultForeground is the terminal foreground color.\n")
	fmt.Fprintf(&buf, "DefaultForeground = console.%s\n\n", constName(fg))
	fmt.Fprint(&buf, "// DefaultBackground is the terminal background color.\n")
	fmt.Fprintf(&buf, "DefaultBackground = console.%s\n", constName(bg))
	fmt.Fprint(&buf, ")\n")

	return buf.Bytes()
}

// generate reads the configuration from r and writes the pretty-printed Go
// source to w.
func generate(r io.Reader, w io.Writer) error {
	fg, bg, err := loadConfig(r)
	if err != nil {
		return err
	}

	// Pretty-print generated file using go/printer
	fSet := token.NewFileSet()
	astFile, err := parser.ParseFile(fSet, "", genColorsFile(fg, bg), parser.ParseComments)
	if err != nil {
		return err
	}

	return (&printer.Config{Mode: printer.UseSpaces | printer.TabIndent, Tabwidth: 8}).Fprint(w, fSet, astFile)
}

func runTool() error {
	cfgPath := flag.String("config", "vga.toml", "the terminal configuration file")
	output := flag.String("out", "-", "a file to write the generated source or - to output to STDOUT")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, "mkcolors: generate the default terminal colors from a TOML config file\n\n")
		fmt.Fprint(os.Stderr, "Usage: mkcolors [options]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 0 {
		return errors.New("unexpected arguments")
	}

	f, err := os.Open(*cfgPath)
	if err != nil {
		return err
	}
	defer f.Close()

	var out bytes.Buffer
	if err = generate(f, &out); err != nil {
		return fmt.Errorf("%s: %w", *cfgPath, err)
	}

	switch *output {
	case "-":
		_, err = os.Stdout.Write(out.Bytes())
		return err
	default:
		return os.WriteFile(*output, out.Bytes(), 0644)
	}
}

func main() {
	if err := runTool(); err != nil {
		exit(err)
	}
}
