package source

import (
	"strings"

	"github.com/dshills/daricfmt/internal/basic/dialect"
)

// LineSource is a read-only, line-indexed view of text. Both the buffer
// and its snapshots satisfy it.
type LineSource interface {
	LineCount() int
	LineText(i int) string
}

// Kind classifies a physical source line.
type Kind uint8

const (
	// KindBlank is a line containing only whitespace.
	KindBlank Kind = iota
	// KindLabel is a named jump target: identifier ":" at line start.
	KindLabel
	// KindComment is a line whose body starts with a comment lead.
	KindComment
	// KindCode is everything else.
	KindCode
)

// String returns a string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindBlank:
		return "blank"
	case KindLabel:
		return "label"
	case KindComment:
		return "comment"
	case KindCode:
		return "code"
	default:
		return "unknown"
	}
}

// Line is an owned view of one physical line. It is created on each access
// to the buffer and never cached beyond the command that produced it; the
// buffer stays the source of truth.
type Line struct {
	// Text is the raw line text without line ending.
	Text string
	// Kind is the classification of the line.
	Kind Kind
	// Number is the parsed line-number prefix, if HasNumber.
	Number Number
	// HasNumber reports whether a line-number prefix is present.
	HasNumber bool
	// BodyStart is the byte offset where the code body begins: past the
	// number prefix and the indentation whitespace.
	BodyStart int
}

// Body returns the code body of the line.
func (l Line) Body() string {
	if l.BodyStart >= len(l.Text) {
		return ""
	}
	return l.Text[l.BodyStart:]
}

// IndentAt returns the line's current indent column under the given
// column policy: the offset of the body from the end of the number field,
// or from line start when no number is present. Negative results (an
// unaligned prefix narrower than the policy) clamp to 0.
func (l Line) IndentAt(cols int) int {
	ind := l.BodyStart
	if l.HasNumber {
		ind -= l.Number.FieldWidth(cols)
	}
	if ind < 0 {
		return 0
	}
	return ind
}

// Render reassembles the line from its parts: the number field under the
// column policy, indent spaces, and the body.
func (l Line) Render(indent, cols int) string {
	var b strings.Builder
	if l.HasNumber {
		b.WriteString(FormatField(l.Number.Value, cols))
	}
	for i := 0; i < indent; i++ {
		b.WriteByte(' ')
	}
	b.WriteString(l.Body())
	return b.String()
}

// Parse builds a Line view of text using the dialect's comment leads and
// label rules.
func Parse(text string, d *dialect.Config) Line {
	l := Line{Text: text}

	rest, num, ok := StripNumber(text)
	if ok {
		l.Number = num
		l.HasNumber = true
	}
	l.BodyStart = len(text) - len(rest)

	l.Kind = classifyBody(text, rest, ok, d)
	return l
}

// Classify labels text as blank, label, comment or code.
func Classify(text string, d *dialect.Config) Kind {
	rest, _, ok := StripNumber(text)
	return classifyBody(text, rest, ok, d)
}

func classifyBody(text, body string, numbered bool, d *dialect.Config) Kind {
	if strings.TrimSpace(text) == "" {
		return KindBlank
	}
	if !numbered && isLabel(text, d) {
		return KindLabel
	}
	if d.IsCommentLead(body) {
		return KindComment
	}
	return KindCode
}

// isLabel reports whether text is "identifier:" after leading whitespace,
// with the colon directly following the identifier.
func isLabel(text string, d *dialect.Config) bool {
	s := strings.TrimLeft(text, " \t")
	i := 0
	for i < len(s) && isWordByte(s[i]) {
		i++
	}
	if i == 0 || s[0] >= '0' && s[0] <= '9' {
		return false
	}
	return i < len(s) && s[i] == d.Separator()
}

func isWordByte(b byte) bool {
	return b >= 'A' && b <= 'Z' || b >= 'a' && b <= 'z' || b >= '0' && b <= '9' || b == '_'
}
