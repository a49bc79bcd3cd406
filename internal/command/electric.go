package command

import (
	"strings"

	"github.com/dshills/daricfmt/internal/basic/source"
)

// ElectricColon inserts the statement separator at the cursor and then
// re-indents the line. Inside a comment or a string literal the separator
// is inserted verbatim with no re-indent.
func ElectricColon(ctx *Context) Result {
	if err := ctx.validate(); err != nil {
		return Error(err)
	}
	if ctx.Line < 0 || ctx.Line >= ctx.Buf.LineCount() {
		return Error(ErrBadRange)
	}

	col, text := ctx.clampCol()
	sep := string(ctx.Dialect.Separator())
	inserted := text[:col] + sep + text[col:]
	if err := ctx.Buf.SetLine(ctx.Line, inserted); err != nil {
		return Error(err)
	}

	if ctx.styled(ctx.Line, col) || insideCommentOrString(text, col, ctx) {
		return OK().WithChangedLines(ctx.Line).WithCursor(ctx.Line, col+1)
	}

	ctx.Col = col + 1
	res := IndentLine(ctx)
	if res.IsError() {
		return res
	}
	return OK().WithChangedLines(ctx.Line).WithCursor(res.CursorLine, res.CursorCol)
}

// insideCommentOrString reports whether the position sits in comment text
// or between unbalanced double quotes.
func insideCommentOrString(text string, col int, ctx *Context) bool {
	line := source.Parse(text, ctx.Dialect)
	if line.Kind == source.KindComment && col > line.BodyStart {
		return true
	}
	return strings.Count(text[:col], "\"")%2 == 1
}
