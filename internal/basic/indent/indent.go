// Package indent infers the indent column of a line from lightweight
// keyword heuristics. The model is deliberately not a block-nesting
// stack: it looks back exactly one code line and applies at most one
// increase and one decrease step, because the dialect keyword sets are
// tuned against this single-lookback behavior.
package indent

import (
	"github.com/dshills/daricfmt/internal/basic/dialect"
	"github.com/dshills/daricfmt/internal/basic/source"
)

// Calculator computes indent columns for lines of a LineSource.
type Calculator struct {
	dialect *dialect.Config
	offset  int
	cols    int
}

// New creates a calculator with the given indent unit and line-number
// column policy.
func New(d *dialect.Config, offset, cols int) *Calculator {
	return &Calculator{dialect: d, offset: offset, cols: cols}
}

// Calculate returns the indent column for line i. The column is relative
// to the code body: the line-number field is excluded. Labels always
// indent to 0; they are never nested.
func (c *Calculator) Calculate(src source.LineSource, i int) int {
	cur := source.Parse(src.LineText(i), c.dialect)
	if cur.Kind == source.KindLabel {
		return 0
	}

	prev, hasPrev := c.prevCodeLine(src, i)
	if !hasPrev {
		return 0
	}
	col := prev.IndentAt(c.cols)

	if c.increases(prev) {
		col += c.offset
	}
	if c.decreases(cur, prev) {
		col -= c.offset
	}
	if col < 0 {
		col = 0
	}
	return col
}

// IsCorrect reports whether line i already sits at its computed indent
// column. Formatting passes use it as an idempotence guard.
func (c *Calculator) IsCorrect(src source.LineSource, i int) bool {
	cur := source.Parse(src.LineText(i), c.dialect)
	return cur.IndentAt(c.cols) == c.Calculate(src, i)
}

// prevCodeLine returns the nearest preceding code line, skipping blank,
// comment and label lines.
func (c *Calculator) prevCodeLine(src source.LineSource, i int) (source.Line, bool) {
	for j := i - 1; j >= 0; j-- {
		l := source.Parse(src.LineText(j), c.dialect)
		if l.Kind == source.KindCode {
			return l, true
		}
	}
	return source.Line{}, false
}

// increases reports whether prev opens a block for the line below it:
// either its last token is an increase-at-end keyword (THEN, ELSE) or its
// first token is an increase-at-start keyword (FOR, WHILE, ...).
func (c *Calculator) increases(prev source.Line) bool {
	body := prev.Body()
	if c.dialect.IncreasesAtEOL(source.LastWord(body)) {
		return true
	}
	return c.dialect.IncreasesAtBOL(source.FirstWord(body))
}

// decreases reports whether the current line steps back out of a block:
// its first token is a decrease keyword, or the previous code line closed
// a block in a trailing statement segment ("PRINT I : NEXT").
func (c *Calculator) decreases(cur, prev source.Line) bool {
	if c.dialect.DecreasesAtBOL(source.FirstWord(cur.Body())) {
		return true
	}
	for _, w := range source.WordsAfterSeparator(prev.Body(), c.dialect.Separator()) {
		if c.dialect.DecreasesAtBOL(w) {
			return true
		}
	}
	return false
}
