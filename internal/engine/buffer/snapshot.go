package buffer

import "github.com/google/uuid"

// Snapshot is an immutable view of the buffer taken at a point in time.
// The jump scanner indexes a snapshot so that reference offsets are always
// measured against text that cannot shift under it.
type Snapshot struct {
	id         string
	lines      []string
	lineEnding LineEnding
	finalEOL   bool
	revision   uint64
}

// Snapshot returns an immutable copy of the buffer's current content.
func (b *Buffer) Snapshot() *Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()
	lines := make([]string, len(b.lines))
	copy(lines, b.lines)
	return &Snapshot{
		id:         uuid.New().String(),
		lines:      lines,
		lineEnding: b.lineEnding,
		finalEOL:   b.finalEOL,
		revision:   b.revision,
	}
}

// ID returns the snapshot's unique identity.
func (s *Snapshot) ID() string { return s.id }

// Revision returns the buffer revision the snapshot was taken at.
func (s *Snapshot) Revision() uint64 { return s.revision }

// LineCount returns the number of physical lines.
func (s *Snapshot) LineCount() int { return len(s.lines) }

// LineText returns the text of line i, or "" when i is out of range.
func (s *Snapshot) LineText(i int) string {
	if i < 0 || i >= len(s.lines) {
		return ""
	}
	return s.lines[i]
}

// Text renders the snapshot using its line ending style.
func (s *Snapshot) Text() string {
	return renderLines(s.lines, s.lineEnding, s.finalEOL)
}
