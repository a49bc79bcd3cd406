// Package autonum computes the line number for a freshly inserted line,
// including midpoint allocation between existing neighbors. New lines are
// never targets of existing jumps, so the jump index is not consulted.
package autonum

import (
	"github.com/dshills/daricfmt/internal/basic/dialect"
	"github.com/dshills/daricfmt/internal/basic/source"
)

// Next returns the number for a line inserted between cur and next. A
// next of 0 or less means there is no following numbered line and the
// plain step applies. When the stepped candidate would reach or pass
// next, the integer midpoint is used instead; when no midpoint remains
// the result is cur+1 even if that collides with an existing number.
// The collision is the documented degenerate outcome, not an error.
func Next(cur, next, step int) int {
	candidate := cur + step
	if next <= 0 || candidate < next {
		return candidate
	}
	mid := cur + (next-cur)/2
	if mid == cur {
		return cur + 1
	}
	return mid
}

// Service resolves insertion numbers against a line source.
type Service struct {
	dialect *dialect.Config
	step    int
}

// New creates a service with the configured auto-number increment.
func New(d *dialect.Config, step int) *Service {
	return &Service{dialect: d, step: step}
}

// Step returns the configured increment.
func (s *Service) Step() int { return s.step }

// NumberAfter computes the number for a line inserted after line i. It
// reports false when line i carries no number: unnumbered lines never
// trigger auto-numbering.
func (s *Service) NumberAfter(src source.LineSource, i int) (int, bool) {
	cur := source.Parse(src.LineText(i), s.dialect)
	if !cur.HasNumber {
		return 0, false
	}
	next := 0
	n := src.LineCount()
	for j := i + 1; j < n; j++ {
		l := source.Parse(src.LineText(j), s.dialect)
		if l.Kind != source.KindCode {
			continue
		}
		if l.HasNumber {
			next = l.Number.Value
		}
		break
	}
	return Next(cur.Number.Value, next, s.step), true
}
