package buffer

import (
	"errors"
	"strings"
	"sync"
)

// Errors returned by buffer operations.
var (
	ErrLineOutOfRange = errors.New("line index out of range")
	ErrColOutOfRange  = errors.New("column offset out of range")
)

// LineEnding specifies the line ending style.
type LineEnding uint8

const (
	LineEndingLF   LineEnding = iota // Unix: \n
	LineEndingCRLF                   // Windows: \r\n
	LineEndingCR                     // Old Mac: \r
)

// Sequence returns the actual line ending characters.
func (le LineEnding) Sequence() string {
	switch le {
	case LineEndingCRLF:
		return "\r\n"
	case LineEndingCR:
		return "\r"
	default:
		return "\n"
	}
}

// Buffer is a line-oriented mutable text store. It is the single shared
// resource of the engine: every command reads and rewrites it directly and
// assumes exclusive access for the duration of one top-level command. All
// methods are still guarded by a mutex so concurrent misuse stays safe.
type Buffer struct {
	mu         sync.RWMutex
	lines      []string
	lineEnding LineEnding
	finalEOL   bool
	revision   uint64
}

// New creates an empty buffer.
func New(opts ...Option) *Buffer {
	b := &Buffer{
		lines:      []string{""},
		lineEnding: LineEndingLF,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// NewFromString creates a buffer holding text. The line ending style is
// detected from the content unless overridden by an option.
func NewFromString(text string, opts ...Option) *Buffer {
	b := &Buffer{
		lineEnding: DetectLineEnding(text),
	}
	b.lines, b.finalEOL = splitLines(text)
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// LineCount returns the number of physical lines. An empty buffer has one
// empty line.
func (b *Buffer) LineCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.lines)
}

// LineText returns the text of line i without its ending, or "" when i is
// out of range.
func (b *Buffer) LineText(i int) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if i < 0 || i >= len(b.lines) {
		return ""
	}
	return b.lines[i]
}

// Line returns the text of line i, reporting out-of-range access.
func (b *Buffer) Line(i int) (string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if i < 0 || i >= len(b.lines) {
		return "", ErrLineOutOfRange
	}
	return b.lines[i], nil
}

// SetLine replaces the text of line i.
func (b *Buffer) SetLine(i int, text string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if i < 0 || i >= len(b.lines) {
		return ErrLineOutOfRange
	}
	if b.lines[i] == text {
		return nil
	}
	b.lines[i] = text
	b.revision++
	return nil
}

// InsertLine inserts text as a new line before index i. Inserting at
// LineCount appends.
func (b *Buffer) InsertLine(i int, text string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if i < 0 || i > len(b.lines) {
		return ErrLineOutOfRange
	}
	b.lines = append(b.lines, "")
	copy(b.lines[i+1:], b.lines[i:])
	b.lines[i] = text
	b.revision++
	return nil
}

// DeleteLine removes line i. Deleting the only line leaves one empty line.
func (b *Buffer) DeleteLine(i int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if i < 0 || i >= len(b.lines) {
		return ErrLineOutOfRange
	}
	if len(b.lines) == 1 {
		b.lines[0] = ""
	} else {
		b.lines = append(b.lines[:i], b.lines[i+1:]...)
	}
	b.revision++
	return nil
}

// SplitLine breaks line i at byte offset col into two lines.
func (b *Buffer) SplitLine(i, col int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if i < 0 || i >= len(b.lines) {
		return ErrLineOutOfRange
	}
	line := b.lines[i]
	if col < 0 || col > len(line) {
		return ErrColOutOfRange
	}
	b.lines = append(b.lines, "")
	copy(b.lines[i+2:], b.lines[i+1:])
	b.lines[i] = line[:col]
	b.lines[i+1] = line[col:]
	b.revision++
	return nil
}

// Text renders the whole buffer using the configured line ending.
func (b *Buffer) Text() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return renderLines(b.lines, b.lineEnding, b.finalEOL)
}

// Len returns the rendered length of the buffer in bytes.
func (b *Buffer) Len() int64 {
	return int64(len(b.Text()))
}

// IsEmpty reports whether the buffer contains no text.
func (b *Buffer) IsEmpty() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.lines) == 1 && b.lines[0] == "" && !b.finalEOL
}

// Revision returns the mutation counter. It is bumped on every change and
// lets callers detect that an index built earlier is stale.
func (b *Buffer) Revision() uint64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.revision
}

// LineEnding returns the buffer's line ending style.
func (b *Buffer) LineEnding() LineEnding {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.lineEnding
}

// splitLines breaks text into physical lines, accepting any of the three
// ending styles. It reports whether the text ended with a line ending.
func splitLines(text string) ([]string, bool) {
	if text == "" {
		return []string{""}, false
	}
	var lines []string
	start := 0
	finalEOL := false
	for i := 0; i < len(text); {
		switch text[i] {
		case '\n':
			lines = append(lines, text[start:i])
			i++
			start = i
		case '\r':
			lines = append(lines, text[start:i])
			i++
			if i < len(text) && text[i] == '\n' {
				i++
			}
			start = i
		default:
			i++
		}
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	} else {
		finalEOL = true
		if len(lines) == 0 {
			lines = []string{""}
		}
	}
	return lines, finalEOL
}

func renderLines(lines []string, le LineEnding, finalEOL bool) string {
	sep := le.Sequence()
	var sb strings.Builder
	for i, line := range lines {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(line)
	}
	if finalEOL {
		sb.WriteString(sep)
	}
	return sb.String()
}
