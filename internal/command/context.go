package command

import (
	"errors"

	"github.com/dshills/daricfmt/internal/basic/dialect"
	"github.com/dshills/daricfmt/internal/basic/indent"
	"github.com/dshills/daricfmt/internal/config"
	"github.com/dshills/daricfmt/internal/engine/buffer"
)

// Errors reported at the command boundary. Caller misuse is rejected here
// before any engine code runs; the core itself never throws for malformed
// input.
var (
	ErrNoBuffer     = errors.New("command: no buffer")
	ErrBadIncrement = errors.New("command: increment must be at least 1")
	ErrBadRange     = errors.New("command: invalid line range")
)

// Context carries everything a command needs: the buffer, the cursor, the
// settings and the dialect. Commands run synchronously and assume
// exclusive access to the buffer for their duration.
type Context struct {
	Buf  *buffer.Buffer
	Line int
	Col  int

	Settings config.Settings
	Dialect  *dialect.Config

	// InStyledText optionally reports whether a position carries
	// comment/string styling per an external highlighter. Commands that
	// must not fire inside strings consult it when present.
	InStyledText func(line, col int) bool
}

// NewContext builds a context over buf with default settings and the
// stock dialect.
func NewContext(buf *buffer.Buffer) *Context {
	return &Context{
		Buf:      buf,
		Settings: config.Default(),
		Dialect:  dialect.Default(),
	}
}

func (c *Context) validate() error {
	if c.Buf == nil {
		return ErrNoBuffer
	}
	if c.Dialect == nil {
		c.Dialect = dialect.Default()
	}
	return nil
}

func (c *Context) calc() *indent.Calculator {
	return indent.New(c.Dialect, c.Settings.IndentOffset, c.Settings.LineNumberColumns)
}

// styled reports whether the external highlighter marks the position as
// comment or string text.
func (c *Context) styled(line, col int) bool {
	return c.InStyledText != nil && c.InStyledText(line, col)
}

// clampCol bounds col to the text of the cursor line.
func (c *Context) clampCol() (int, string) {
	text := c.Buf.LineText(c.Line)
	col := c.Col
	if col < 0 {
		col = 0
	}
	if col > len(text) {
		col = len(text)
	}
	return col, text
}

// Region selects physical lines [Start, End).
type Region struct {
	Start, End int
}

// WholeBuffer returns the region covering every line of buf.
func WholeBuffer(buf *buffer.Buffer) Region {
	return Region{Start: 0, End: buf.LineCount()}
}

// RegionFromSelection converts a cursor selection to a line region. A
// selection whose end sits exactly at the start of a line excludes that
// trailing line.
func RegionFromSelection(startLine, startCol, endLine, endCol int) Region {
	end := endLine + 1
	if endCol == 0 && endLine > startLine {
		end = endLine
	}
	return Region{Start: startLine, End: end}
}

// clamp bounds the region to buf and reports whether anything remains.
func (r Region) clamp(buf *buffer.Buffer) (Region, bool) {
	if r.Start < 0 {
		r.Start = 0
	}
	if n := buf.LineCount(); r.End > n {
		r.End = n
	}
	return r, r.Start < r.End
}
