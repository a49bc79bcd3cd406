package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dshills/daricfmt/internal/basic/dialect"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s != Default() {
		t.Errorf("settings = %+v, want defaults", s)
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "daricfmt.toml", `
indent_offset = 2
line_number_columns = 6
renumber_increment = 100
delete_trailing_whitespace = false
`)
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.IndentOffset != 2 {
		t.Errorf("IndentOffset = %d, want 2", s.IndentOffset)
	}
	if s.LineNumberColumns != 6 {
		t.Errorf("LineNumberColumns = %d, want 6", s.LineNumberColumns)
	}
	if s.RenumberIncrement != 100 {
		t.Errorf("RenumberIncrement = %d, want 100", s.RenumberIncrement)
	}
	if s.DeleteTrailingWhitespace {
		t.Error("DeleteTrailingWhitespace should be overridden to false")
	}
	if s.Dialect != "daric" {
		t.Errorf("unset fields should keep defaults, Dialect = %q", s.Dialect)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "daricfmt.yaml", `
indent_offset: 8
auto_number_increment: 10
`)
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.IndentOffset != 8 {
		t.Errorf("IndentOffset = %d, want 8", s.IndentOffset)
	}
	if s.AutoNumberIncrement != 10 {
		t.Errorf("AutoNumberIncrement = %d, want 10", s.AutoNumberIncrement)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := writeFile(t, "bad.toml", "indent_offset = =")
	s, err := Load(path)
	if err == nil {
		t.Fatal("expected parse error")
	}
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("error type = %T, want *ParseError", err)
	}
	if pe.Path != path {
		t.Errorf("Path = %q, want %q", pe.Path, path)
	}
	if s != Default() {
		t.Error("malformed file should fall back to defaults")
	}
}

func TestLoadDialectMissingFile(t *testing.T) {
	d, err := LoadDialect(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadDialect: %v", err)
	}
	if d.Name() != "daric" {
		t.Errorf("Name = %q, want the stock dialect", d.Name())
	}
}

func TestLoadDialectOverrides(t *testing.T) {
	path := writeFile(t, "dialect.toml", `
name = "tiny"
decrease_at_bol = ["FIN"]

[[jump]]
word = "JUMP"
family = "goto-like"
`)
	d, err := LoadDialect(path)
	if err != nil {
		t.Fatalf("LoadDialect: %v", err)
	}
	if d.Name() != "tiny" {
		t.Errorf("Name = %q, want tiny", d.Name())
	}
	if !d.DecreasesAtBOL("FIN") {
		t.Error("override set not applied")
	}
	if d.DecreasesAtBOL("NEXT") {
		t.Error("override should replace the stock set")
	}
	if !d.IncreasesAtBOL("FOR") {
		t.Error("untouched keyword sets should fall back to stock")
	}
	fam, ok := d.JumpFamily("JUMP")
	if !ok || fam != dialect.FamilyGotoLike {
		t.Errorf("JumpFamily(JUMP) = %v, %v", fam, ok)
	}
	if _, ok := d.JumpFamily("GOTO"); ok {
		t.Error("a declared jump table should replace the stock table")
	}
}

func TestLoadDialectBadFamily(t *testing.T) {
	path := writeFile(t, "dialect.toml", `
[[jump]]
word = "JUMP"
family = "bogus"
`)
	if _, err := LoadDialect(path); err == nil {
		t.Fatal("expected error for unknown jump family")
	}
}
