// Package buffer provides the line-oriented text buffer the maintenance
// engine operates on. The buffer is the source of truth for all commands:
// classification, indexing and rewriting all read it directly and views of
// its lines are never cached across commands.
//
// The model is single-threaded and synchronous. A mutex still guards every
// method so accidental concurrent use is safe rather than undefined, but
// no component relies on interleaved access; the one ordering rule in the
// engine is that the jump index is built from a Snapshot before any
// rewrite touches the buffer.
//
// Basic usage:
//
//	buf := buffer.NewFromString("10 PRINT \"HI\"\n20 GOTO 10\n")
//	buf.SetLine(0, "10 PRINT \"HELLO\"")
//	out := buf.Text()
//
// Line endings are detected on load and preserved on render.
package buffer
