package command

import (
	"github.com/dshills/daricfmt/internal/basic/renumber"
	"github.com/dshills/daricfmt/internal/basic/source"
)

// Renumber reassigns line numbers over region (whole buffer when nil) and
// rewrites every indexed jump reference, including references into the
// range from outside it. start and increment of 0 select the defaults:
// the first numbered line's existing number (or the configured increment
// when none exists) and the configured renumber increment. A negative
// start or a non-positive explicit increment is caller misuse, rejected
// here before the engine runs.
func Renumber(ctx *Context, start, increment int, region *Region) Result {
	if err := ctx.validate(); err != nil {
		return Error(err)
	}
	if increment < 0 || start < 0 {
		return Error(ErrBadIncrement)
	}
	if increment == 0 {
		increment = ctx.Settings.RenumberIncrement
	}
	if increment < 1 {
		return Error(ErrBadIncrement)
	}

	r := WholeBuffer(ctx.Buf)
	if region != nil {
		r = *region
	}
	r, ok := r.clamp(ctx.Buf)
	if !ok {
		return NoOp()
	}

	if start == 0 {
		start = firstNumber(ctx, r)
		if start == 0 {
			start = increment
		}
	}

	eng := renumber.New(ctx.Dialect, ctx.Settings.IndentOffset, ctx.Settings.LineNumberColumns)
	plan := renumber.Plan{
		Start:             start,
		Increment:         increment,
		RangeStart:        r.Start,
		RangeEnd:          r.End,
		IncludeUnnumbered: ctx.Settings.RenumberIncludeUnnumbered,
	}
	if err := eng.Run(ctx.Buf, plan); err != nil {
		return Error(err)
	}
	return OK().WithMessage("renumbered from %d step %d", start, increment)
}

// firstNumber returns the first existing line number in region, or 0.
func firstNumber(ctx *Context, r Region) int {
	for i := r.Start; i < r.End; i++ {
		line := source.Parse(ctx.Buf.LineText(i), ctx.Dialect)
		if line.HasNumber {
			return line.Number.Value
		}
	}
	return 0
}
