package main

import (
	"bytes"
	"go/ast"
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"vgaos/device/video/console"
)

func TestLoadConfig(t *testing.T) {
	specs := []struct {
		input  string
		expFg  console.Color
		expBg  console.Color
		expErr string
	}{
		{
			"[writer]\nforeground = \"yellow\"\nbackground = \"black\"\n",
			console.Yellow, console.Black, "",
		},
		{
			"[writer]\nforeground = \"light-green\"\nbackground = \"blue\"\n",
			console.LightGreen, console.Blue, "",
		},
		{
			"",
			console.Yellow, console.Black, "",
		},
		{
			"[writer]\nbackground = \"red\"\n",
			console.Yellow, console.Red, "",
		},
		{
			"[writer]\nforeground = \"mauve\"\n",
			0, 0, "unknown foreground color",
		},
		{
			"[writer]\nbackground = \"\"\n",
			0, 0, "unknown background color",
		},
		{
			"[writer]\nblink = true\n",
			0, 0, "unknown configuration key",
		},
		{
			"[writer\n",
			0, 0, "toml",
		},
	}

	for specIndex, spec := range specs {
		fg, bg, err := loadConfig(strings.NewReader(spec.input))
		if spec.expErr != "" {
			if err == nil || !strings.Contains(err.Error(), spec.expErr) {
				t.Errorf("[spec %d] expected error containing %q; got %v", specIndex, spec.expErr, err)
			}
			continue
		}

		if err != nil {
			t.Errorf("[spec %d] unexpected error: %v", specIndex, err)
			continue
		}

		if fg != spec.expFg || bg != spec.expBg {
			t.Errorf("[spec %d] expected colors %s/%s; got %s/%s", specIndex, spec.expFg, spec.expBg, fg, bg)
		}
	}
}

func TestConstName(t *testing.T) {
	specs := []struct {
		in  console.Color
		exp string
	}{
		{console.Black, "Black"},
		{console.LightGray, "LightGray"},
		{console.DarkGray, "DarkGray"},
		{console.LightCyan, "LightCyan"},
		{console.White, "White"},
	}

	for specIndex, spec := range specs {
		if got := constName(spec.in); got != spec.exp {
			t.Errorf("[spec %d] expected %q; got %q", specIndex, spec.exp, got)
		}
	}
}

func TestGenerate(t *testing.T) {
	var out bytes.Buffer
	input := "[writer]\nforeground = \"light-blue\"\nbackground = \"brown\"\n"
	if err := generate(strings.NewReader(input), &out); err != nil {
		t.Fatal(err)
	}

	if !bytes.HasPrefix(out.Bytes(), []byte("// Code generated by mkcolors from vga.toml; DO NOT EDIT.\n")) {
		t.Fatalf("expected generated-code header; got:\n%s", out.String())
	}

	f, err := parser.ParseFile(token.NewFileSet(), "colors_gen.go", out.Bytes(), 0)
	if err != nil {
		t.Fatalf("generated source does not parse: %v", err)
	}

	if f.Name.Name != "hal" {
		t.Fatalf("expected package hal; got %s", f.Name.Name)
	}

	got := make(map[string]string)
	for _, decl := range f.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.CONST {
			continue
		}
		for _, spec := range gd.Specs {
			vs := spec.(*ast.ValueSpec)
			sel := vs.Values[0].(*ast.SelectorExpr)
			got[vs.Names[0].Name] = sel.X.(*ast.Ident).Name + "." + sel.Sel.Name
		}
	}

	exp := map[string]string{
		"DefaultForeground": "console.LightBlue",
		"DefaultBackground": "console.Brown",
	}
	for name, value := range exp {
		if got[name] != value {
			t.Errorf("expected %s = %s; got %q", name, value, got[name])
		}
	}
}

func TestGenerateRejectsBadConfig(t *testing.T) {
	var out bytes.Buffer
	if err := generate(strings.NewReader("[writer]\nforeground = \"plaid\"\n"), &out); err == nil {
		t.Fatal("expected an error")
	}

	if out.Len() != 0 {
		t.Fatalf("expected no output on error; got %q", out.String())
	}
}
