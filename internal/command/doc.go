// Package command implements the user-level editing commands: format,
// indent current line, insert line break, renumber and the electric
// colon. Each command is a discrete synchronous edit against one buffer,
// invoked with a cursor/selection Context and returning a Result value.
//
// Commands validate caller input at this boundary; the core packages
// below never reject malformed text, they degrade to defaults. Every
// command is safe to re-run: a repeated invocation never corrupts the
// buffer beyond what a single correct run produces.
package command
