package command

import (
	"strings"

	"github.com/dshills/daricfmt/internal/basic/source"
)

// Format re-indents every line of region, or of the whole buffer when
// region is nil. Trailing whitespace is stripped per settings, and a
// whole-buffer run can drop trailing blank lines. Running Format twice
// produces the same text as running it once.
func Format(ctx *Context, region *Region) Result {
	if err := ctx.validate(); err != nil {
		return Error(err)
	}

	wholeBuffer := region == nil
	r := WholeBuffer(ctx.Buf)
	if region != nil {
		r = *region
	}
	r, ok := r.clamp(ctx.Buf)
	if !ok {
		return NoOp()
	}

	calc := ctx.calc()
	cols := ctx.Settings.LineNumberColumns
	var changed []int

	for i := r.Start; i < r.End; i++ {
		text := ctx.Buf.LineText(i)
		raw := text
		if ctx.Settings.DeleteTrailingWhitespace {
			raw = strings.TrimRight(raw, " \t")
		}

		line := source.Parse(raw, ctx.Dialect)
		formatted := raw
		if line.Kind != source.KindBlank {
			formatted = line.Render(calc.Calculate(ctx.Buf, i), cols)
		}

		if formatted == text {
			continue
		}
		if err := ctx.Buf.SetLine(i, formatted); err != nil {
			return Error(err)
		}
		changed = append(changed, i)
	}

	if wholeBuffer && ctx.Settings.DeleteTrailingBlankLines {
		for ctx.Buf.LineCount() > 1 {
			last := ctx.Buf.LineCount() - 1
			if strings.TrimSpace(ctx.Buf.LineText(last)) != "" {
				break
			}
			if err := ctx.Buf.DeleteLine(last); err != nil {
				return Error(err)
			}
			changed = append(changed, last)
		}
	}

	if len(changed) == 0 {
		return NoOp()
	}
	return OK().WithChangedLines(changed...)
}

// IndentLine applies the indent calculator to the cursor line, keeping
// the cursor at the same offset from the code body.
func IndentLine(ctx *Context) Result {
	if err := ctx.validate(); err != nil {
		return Error(err)
	}
	if ctx.Line < 0 || ctx.Line >= ctx.Buf.LineCount() {
		return Error(ErrBadRange)
	}

	col, text := ctx.clampCol()
	line := source.Parse(text, ctx.Dialect)
	cols := ctx.Settings.LineNumberColumns

	formatted := line.Render(ctx.calc().Calculate(ctx.Buf, ctx.Line), cols)

	bodyDelta := col - line.BodyStart
	if bodyDelta < 0 {
		bodyDelta = 0
	}
	newBodyStart := len(formatted) - len(line.Body())
	newCol := newBodyStart + bodyDelta
	if newCol > len(formatted) {
		newCol = len(formatted)
	}

	if formatted == text {
		return NoOp().WithCursor(ctx.Line, newCol)
	}
	if err := ctx.Buf.SetLine(ctx.Line, formatted); err != nil {
		return Error(err)
	}
	return OK().WithChangedLines(ctx.Line).WithCursor(ctx.Line, newCol)
}
