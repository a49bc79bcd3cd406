// Package jumps builds the whole-buffer index of line-number references.
// One generic scanner walks every line once, driven by the dialect's
// tagged jump keyword table, and records where each numeric target
// literal sits. The index is always built over an immutable snapshot
// before any rewrite runs; a reference must not be dereferenced after the
// renumbering pass that consumed it, because rewrites shift later text.
package jumps

import (
	"strconv"

	"github.com/dshills/daricfmt/internal/basic/dialect"
	"github.com/dshills/daricfmt/internal/basic/source"
)

// Ref identifies one textual occurrence of a line-number literal.
type Ref struct {
	// Line is the physical line index the literal sits on.
	Line int
	// Col is the byte offset where the literal begins.
	Col int
	// Len is the length of the numeric text.
	Len int
	// Family is the keyword family that produced the reference.
	Family dialect.Family
}

// Index maps a target line number to every reference to it, in discovery
// order of the forward scan.
type Index map[int][]Ref

// Build scans src once and indexes every line-number reference recognized
// by the dialect's jump keyword table. Malformed or non-numeric arguments
// are skipped, never an error.
func Build(src source.LineSource, d *dialect.Config) Index {
	idx := make(Index)
	n := src.LineCount()
	for i := 0; i < n; i++ {
		line := source.Parse(src.LineText(i), d)
		if line.Kind == source.KindBlank || line.Kind == source.KindComment {
			continue
		}
		scanLine(idx, line.Text, i, line.BodyStart, d)
	}
	return idx
}

// scanLine walks one line from the code-body start, recognizing jump
// keywords and their numeric-argument grammar. String literals and
// trailing comments are skipped.
func scanLine(idx Index, text string, lineIdx, start int, d *dialect.Config) {
	i := start
	for i < len(text) {
		c := text[i]
		switch {
		case c == '"':
			i = skipString(text, i)
		case isWordStart(c):
			j := i
			for j < len(text) && isWordByte(text[j]) {
				j++
			}
			word := text[i:j]
			if d.IsCommentLead(text[i:]) {
				return
			}
			if fam, ok := d.JumpFamily(word); ok {
				j = scanArgs(idx, text, lineIdx, j, fam)
			}
			i = j
		case c >= '0' && c <= '9':
			for i < len(text) && text[i] >= '0' && text[i] <= '9' {
				i++
			}
		default:
			if d.IsCommentLead(text[i:]) {
				return
			}
			i++
		}
	}
}

// scanArgs consumes the numeric arguments of one keyword occurrence per
// its family grammar, starting at pos (just past the keyword). It returns
// the position scanning should resume from.
func scanArgs(idx Index, text string, lineIdx, pos int, fam dialect.Family) int {
	switch fam {
	case dialect.FamilyGotoLike:
		return scanNumberList(idx, text, lineIdx, pos, fam)
	case dialect.FamilyErlCompare:
		return scanComparison(idx, text, lineIdx, pos, fam)
	case dialect.FamilyDeleteListRange:
		return scanRange(idx, text, lineIdx, pos, fam)
	case dialect.FamilyRenum:
		p := skipBlanks(text, pos)
		if v, start, length, ok := scanNumber(text, p); ok {
			record(idx, lineIdx, v, start, length, fam)
			return start + length
		}
		return pos
	default:
		return pos
	}
}

// scanNumberList handles "GOTO 100" and computed forms "ON X GOTO 10,20,30".
// Dashes are accepted as list separators alongside commas.
func scanNumberList(idx Index, text string, lineIdx, pos int, fam dialect.Family) int {
	p := skipBlanks(text, pos)
	v, start, length, ok := scanNumber(text, p)
	if !ok {
		return pos
	}
	record(idx, lineIdx, v, start, length, fam)
	p = start + length
	for {
		q := skipBlanks(text, p)
		if q >= len(text) || (text[q] != ',' && text[q] != '-') {
			return p
		}
		q = skipBlanks(text, q+1)
		v, start, length, ok = scanNumber(text, q)
		if !ok {
			return p
		}
		record(idx, lineIdx, v, start, length, fam)
		p = start + length
	}
}

// scanComparison handles "ERL = 100", "ERL <> 100" and the ordered forms.
func scanComparison(idx Index, text string, lineIdx, pos int, fam dialect.Family) int {
	p := skipBlanks(text, pos)
	opLen := 0
	for p+opLen < len(text) && opLen < 2 && isCompareByte(text[p+opLen]) {
		opLen++
	}
	if opLen == 0 {
		return pos
	}
	p = skipBlanks(text, p+opLen)
	if v, start, length, ok := scanNumber(text, p); ok {
		record(idx, lineIdx, v, start, length, fam)
		return start + length
	}
	return pos
}

// scanRange handles "LIST", "LIST 10", "LIST 10-50" and "LIST -50".
func scanRange(idx Index, text string, lineIdx, pos int, fam dialect.Family) int {
	p := skipBlanks(text, pos)
	if v, start, length, ok := scanNumber(text, p); ok {
		record(idx, lineIdx, v, start, length, fam)
		p = start + length
	}
	q := skipBlanks(text, p)
	if q >= len(text) || text[q] != '-' {
		return p
	}
	q = skipBlanks(text, q+1)
	if v, start, length, ok := scanNumber(text, q); ok {
		record(idx, lineIdx, v, start, length, fam)
		return start + length
	}
	return p
}

func record(idx Index, line, value, col, length int, fam dialect.Family) {
	idx[value] = append(idx[value], Ref{Line: line, Col: col, Len: length, Family: fam})
}

// scanNumber reads a digit run at pos. A run directly followed by a word
// byte (FOO123BAR) or too large to represent is not a number.
func scanNumber(text string, pos int) (value, start, length int, ok bool) {
	i := pos
	for i < len(text) && text[i] >= '0' && text[i] <= '9' {
		i++
	}
	if i == pos {
		return 0, 0, 0, false
	}
	if i < len(text) && isWordByte(text[i]) {
		return 0, 0, 0, false
	}
	v, err := strconv.Atoi(text[pos:i])
	if err != nil {
		return 0, 0, 0, false
	}
	return v, pos, i - pos, true
}

func skipBlanks(text string, pos int) int {
	for pos < len(text) && (text[pos] == ' ' || text[pos] == '\t') {
		pos++
	}
	return pos
}

// skipString advances past a double-quoted literal starting at pos.
func skipString(text string, pos int) int {
	i := pos + 1
	for i < len(text) && text[i] != '"' {
		i++
	}
	if i < len(text) {
		i++
	}
	return i
}

func isCompareByte(b byte) bool {
	return b == '=' || b == '<' || b == '>'
}

func isWordStart(b byte) bool {
	return b >= 'A' && b <= 'Z' || b >= 'a' && b <= 'z' || b == '_'
}

func isWordByte(b byte) bool {
	return isWordStart(b) || b >= '0' && b <= '9'
}
