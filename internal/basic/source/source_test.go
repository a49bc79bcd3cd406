package source

import (
	"testing"

	"github.com/dshills/daricfmt/internal/basic/dialect"
)

func TestClassify(t *testing.T) {
	d := dialect.Default()

	tests := []struct {
		text string
		want Kind
	}{
		{"", KindBlank},
		{"   \t ", KindBlank},
		{"retry:", KindLabel},
		{"  loop_1: PRINT", KindLabel},
		{"' a remark", KindComment},
		{"REM a remark", KindComment},
		{"rem lowercase too", KindComment},
		{"10 REM numbered remark", KindComment},
		{"REMARK = 1", KindCode},
		{"10 PRINT \"HI\"", KindCode},
		{"PRINT 5:GOTO 10", KindCode},
		{"10 GOTO 20", KindCode},
	}

	for _, tt := range tests {
		if got := Classify(tt.text, d); got != tt.want {
			t.Errorf("Classify(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestHasNumber(t *testing.T) {
	if !HasNumber("10 PRINT") {
		t.Error("expected number on '10 PRINT'")
	}
	if !HasNumber("   42") {
		t.Error("expected number after leading whitespace")
	}
	if HasNumber("PRINT 10") {
		t.Error("no leading number on 'PRINT 10'")
	}
	if HasNumber("") {
		t.Error("empty line has no number")
	}
}

func TestStripNumber(t *testing.T) {
	rest, num, ok := StripNumber("  120   PRINT X")
	if !ok {
		t.Fatal("expected a number")
	}
	if num.Value != 120 || num.Width != 3 {
		t.Errorf("got value %d width %d", num.Value, num.Width)
	}
	if rest != "PRINT X" {
		t.Errorf("remainder %q", rest)
	}

	rest, _, ok = StripNumber("   PRINT X")
	if ok {
		t.Error("no number expected")
	}
	if rest != "PRINT X" {
		t.Errorf("remainder %q", rest)
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		n, cols int
		want    string
	}{
		{42, 0, "42"},
		{42, 6, "   42 "},
		{7, 4, "  7 "},
		{123456, 4, "123456 "}, // digits never truncate
	}
	for _, tt := range tests {
		if got := Format(tt.n, tt.cols); got != tt.want {
			t.Errorf("Format(%d, %d) = %q, want %q", tt.n, tt.cols, got, tt.want)
		}
	}
}

func TestFormatRoundTrip(t *testing.T) {
	rendered := Format(42, 6)
	if len(rendered) != 6 {
		t.Fatalf("rendered width %d, want 6", len(rendered))
	}
	_, num, ok := StripNumber(rendered + "PRINT")
	if !ok || num.Value != 42 {
		t.Errorf("round trip recovered %v (ok=%v)", num.Value, ok)
	}
}

func TestParseAndIndentAt(t *testing.T) {
	d := dialect.Default()

	l := Parse("10 PRINT A", d)
	if !l.HasNumber || l.Number.Value != 10 {
		t.Fatalf("number not parsed: %+v", l)
	}
	if l.Body() != "PRINT A" {
		t.Errorf("body %q", l.Body())
	}
	if got := l.IndentAt(0); got != 0 {
		t.Errorf("indent %d, want 0", got)
	}

	l = Parse("20     PRINT A", d)
	if got := l.IndentAt(0); got != 4 {
		t.Errorf("indent %d, want 4", got)
	}

	// An unaligned narrow prefix under a wide policy clamps to 0.
	l = Parse("30 PRINT A", d)
	if got := l.IndentAt(8); got != 0 {
		t.Errorf("indent %d, want 0", got)
	}

	l = Parse("    PRINT A", d)
	if l.HasNumber {
		t.Error("unexpected number")
	}
	if got := l.IndentAt(0); got != 4 {
		t.Errorf("unnumbered indent %d, want 4", got)
	}
}

func TestRender(t *testing.T) {
	d := dialect.Default()

	l := Parse("10 PRINT A", d)
	if got := l.Render(4, 0); got != "10     PRINT A" {
		t.Errorf("Render = %q", got)
	}
	if got := l.Render(0, 6); got != "   10 PRINT A" {
		t.Errorf("Render with columns = %q", got)
	}

	l = Parse("PRINT A", d)
	if got := l.Render(2, 0); got != "  PRINT A" {
		t.Errorf("unnumbered Render = %q", got)
	}
}

func TestTokenHelpers(t *testing.T) {
	if got := FirstWord("FOR I = 1 TO 3"); got != "FOR" {
		t.Errorf("FirstWord = %q", got)
	}
	if got := FirstWord("  100 GOTO 10"); got != "GOTO" {
		t.Errorf("FirstWord should skip numbers, got %q", got)
	}
	if got := LastWord("IF A = 1 THEN"); got != "THEN" {
		t.Errorf("LastWord = %q", got)
	}
	if got := LastWord("PRINT \"NOT THEN\""); got != "PRINT" {
		t.Errorf("LastWord must skip strings, got %q", got)
	}
	words := WordsAfterSeparator("PRINT I : NEXT", ':')
	if len(words) != 1 || words[0] != "NEXT" {
		t.Errorf("WordsAfterSeparator = %v", words)
	}
	words = WordsAfterSeparator("PRINT \": NEXT\"", ':')
	if len(words) != 0 {
		t.Errorf("separator inside string indexed: %v", words)
	}
}
