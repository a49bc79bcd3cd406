// Package source provides the two primitives every other component builds
// on: classification of physical lines (blank, label, comment, code) and
// the line-number codec that parses, strips and re-renders the numeric
// prefix under a column-alignment policy.
//
// A Line value is an owned view created per access; the buffer remains
// the source of truth and Line values are never cached across commands.
package source
