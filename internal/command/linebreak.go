package command

import (
	"strings"

	"github.com/dshills/daricfmt/internal/basic/autonum"
	"github.com/dshills/daricfmt/internal/basic/source"
)

// DataNewNumber is the Result data key holding the number assigned to an
// inserted line.
const DataNewNumber = "newNumber"

// InsertLineBreak splits the cursor line. When auto-numbering is enabled
// and the current line carries a number, the new line receives one:
// current number plus the configured step, or the integer midpoint when a
// following numbered line leaves no room for the step. A break inside the
// number itself inserts no new number and restores the cursor column. A
// comment lead active at the break point is carried onto the new line so
// a multi-line comment block is not silently broken.
func InsertLineBreak(ctx *Context) Result {
	if err := ctx.validate(); err != nil {
		return Error(err)
	}
	if ctx.Line < 0 || ctx.Line >= ctx.Buf.LineCount() {
		return Error(ErrBadRange)
	}

	col, text := ctx.clampCol()
	line := source.Parse(text, ctx.Dialect)

	// A break before or inside the number splits the number itself: the
	// new line is left unnumbered and the cursor keeps its column.
	if line.HasNumber {
		numEnd := len(text) - len(strings.TrimLeft(text, " \t")) + line.Number.Width
		if col < numEnd {
			if err := ctx.Buf.SplitLine(ctx.Line, col); err != nil {
				return Error(err)
			}
			restored := col
			if l := len(ctx.Buf.LineText(ctx.Line + 1)); restored > l {
				restored = l
			}
			return OK().WithChangedLines(ctx.Line, ctx.Line+1).WithCursor(ctx.Line+1, restored)
		}
	}

	// Resolve the new number against the pre-split neighbors.
	newNumber := 0
	hasNumber := false
	if ctx.Settings.AutoNumberIncrement > 0 {
		svc := autonum.New(ctx.Dialect, ctx.Settings.AutoNumberIncrement)
		newNumber, hasNumber = svc.NumberAfter(ctx.Buf, ctx.Line)
	}

	body := strings.TrimLeft(text[col:], " \t")
	if lead := activeCommentLead(line, col); lead != "" && !ctx.Dialect.IsCommentLead(body) {
		if body == "" {
			body = lead
		} else {
			body = lead + " " + body
		}
	}

	if err := ctx.Buf.SetLine(ctx.Line, text[:col]); err != nil {
		return Error(err)
	}

	newLine := ctx.Line + 1
	cols := ctx.Settings.LineNumberColumns
	assembled := body
	if hasNumber {
		assembled = source.FormatField(newNumber, cols) + body
	}
	if err := ctx.Buf.InsertLine(newLine, assembled); err != nil {
		return Error(err)
	}

	// Re-render at the computed indent now that the line is in place.
	inserted := source.Parse(assembled, ctx.Dialect)
	formatted := inserted.Render(ctx.calc().Calculate(ctx.Buf, newLine), cols)
	if err := ctx.Buf.SetLine(newLine, formatted); err != nil {
		return Error(err)
	}

	res := OK().WithChangedLines(ctx.Line, newLine)
	bodyStart := source.Parse(formatted, ctx.Dialect).BodyStart
	res = res.WithCursor(newLine, bodyStart)
	if hasNumber {
		res = res.WithData(DataNewNumber, newNumber)
	}
	return res
}

// activeCommentLead returns the comment lead token governing the break
// point, or "" when the break is not inside a comment.
func activeCommentLead(line source.Line, col int) string {
	if line.Kind != source.KindComment || col <= line.BodyStart {
		return ""
	}
	body := line.Body()
	if strings.HasPrefix(body, "'") {
		return "'"
	}
	// Word leads (REM) preserve their original casing.
	i := 0
	for i < len(body) && body[i] != ' ' && body[i] != '\t' {
		i++
	}
	return body[:i]
}
