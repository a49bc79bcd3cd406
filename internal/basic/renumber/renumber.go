// Package renumber assigns fresh line numbers to a range of lines and
// rewrites every indexed reference to match.
//
// The run is two-phase. Phase one walks an immutable snapshot: it builds
// the full jump index, assigns new numbers and collects every text
// rewrite as a plain (line, column, length) action. Phase two applies the
// actions to the buffer, descending by column within each line, so no
// rewrite ever invalidates the recorded offsets of a later one. No
// live-updating position handles are needed.
//
// Only consistency inside the knowledge of the index is maintained:
// references from outside the range into it are rewritten, but global
// uniqueness of numbers outside the processed range is not enforced. A
// partial-region renumber can legally leave duplicates behind.
package renumber

import (
	"sort"
	"strconv"

	"github.com/dshills/daricfmt/internal/basic/dialect"
	"github.com/dshills/daricfmt/internal/basic/indent"
	"github.com/dshills/daricfmt/internal/basic/jumps"
	"github.com/dshills/daricfmt/internal/basic/source"
	"github.com/dshills/daricfmt/internal/engine/buffer"
)

// Plan describes one renumbering run. It is a value consumed once; the
// old-to-new mapping exists only as a side effect of the run.
type Plan struct {
	// Start is the first new number to assign.
	Start int
	// Increment is the step between assigned numbers. Callers must
	// validate Increment >= 1 before running the engine.
	Increment int
	// RangeStart and RangeEnd bound the physical lines to process,
	// end-exclusive.
	RangeStart, RangeEnd int
	// IncludeUnnumbered assigns numbers to lines that have none. When
	// false such lines are skipped entirely.
	IncludeUnnumbered bool
}

// Engine renumbers lines of a buffer.
type Engine struct {
	dialect *dialect.Config
	calc    *indent.Calculator
	cols    int
}

// New creates an engine with the given indent unit and line-number column
// policy.
func New(d *dialect.Config, offset, cols int) *Engine {
	return &Engine{
		dialect: d,
		calc:    indent.New(d, offset, cols),
		cols:    cols,
	}
}

// rewrite is one pending text replacement, recorded against snapshot
// offsets.
type rewrite struct {
	col, length int
	text        string
}

// Run renumbers the lines selected by plan and rewrites all indexed
// references, including those pointing into the range from outside it.
func (e *Engine) Run(buf *buffer.Buffer, plan Plan) error {
	snap := buf.Snapshot()
	idx := jumps.Build(snap, e.dialect)

	start, end := plan.RangeStart, plan.RangeEnd
	if start < 0 {
		start = 0
	}
	if end > snap.LineCount() {
		end = snap.LineCount()
	}

	byLine := make(map[int][]rewrite)
	newNumbers := make(map[int]int)

	num := plan.Start
	for i := start; i < end; i++ {
		line := source.Parse(snap.LineText(i), e.dialect)
		if line.Kind == source.KindBlank {
			continue
		}
		if !line.HasNumber && !plan.IncludeUnnumbered {
			continue
		}
		oldVal := 0
		if line.HasNumber {
			oldVal = line.Number.Value
		}

		// A reference list is consumed exactly once; after this its
		// recorded offsets may no longer be dereferenced.
		for _, ref := range idx[oldVal] {
			byLine[ref.Line] = append(byLine[ref.Line], rewrite{
				col:    ref.Col,
				length: ref.Len,
				text:   strconv.Itoa(num),
			})
		}
		delete(idx, oldVal)

		newNumbers[i] = num
		num += plan.Increment
	}

	affected := make([]int, 0, len(byLine)+len(newNumbers))
	seen := make(map[int]bool)
	for i := range byLine {
		affected = append(affected, i)
		seen[i] = true
	}
	for i := range newNumbers {
		if !seen[i] {
			affected = append(affected, i)
		}
	}
	sort.Ints(affected)

	for _, i := range affected {
		text := buf.LineText(i)

		rws := byLine[i]
		sort.Slice(rws, func(a, b int) bool { return rws[a].col > rws[b].col })
		for _, rw := range rws {
			text = text[:rw.col] + rw.text + text[rw.col+rw.length:]
		}

		if err := buf.SetLine(i, text); err != nil {
			return err
		}

		if n, renumbered := newNumbers[i]; renumbered {
			// Strip the old prefix, render the new one and recompute the
			// indent so the body lands back on its proper column after
			// any width change in the number field.
			ind := e.calc.Calculate(buf, i)
			line := source.Parse(text, e.dialect)
			line.HasNumber = true
			line.Number = source.Number{Value: n, Width: len(strconv.Itoa(n))}
			if err := buf.SetLine(i, line.Render(ind, e.cols)); err != nil {
				return err
			}
		}
	}
	return nil
}
