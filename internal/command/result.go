package command

import "fmt"

// Status indicates the outcome of a command.
type Status uint8

const (
	// StatusOK indicates successful execution.
	StatusOK Status = iota
	// StatusNoOp indicates the command had no effect.
	StatusNoOp
	// StatusError indicates an error occurred.
	StatusError
)

// String returns a string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNoOp:
		return "no-op"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Result is the outcome of one command run.
type Result struct {
	// Status indicates the result status.
	Status Status

	// Err contains any error that occurred.
	Err error

	// Message is an optional status message for display.
	Message string

	// ChangedLines lists the physical lines the command rewrote.
	ChangedLines []int

	// CursorLine and CursorCol give the cursor position after the
	// command when CursorMoved is set.
	CursorLine  int
	CursorCol   int
	CursorMoved bool

	// Data holds command-specific return values, such as the number
	// assigned to an inserted line.
	Data map[string]any
}

// OK returns a successful result.
func OK() Result {
	return Result{Status: StatusOK}
}

// NoOp returns a result indicating nothing changed.
func NoOp() Result {
	return Result{Status: StatusNoOp}
}

// Error returns an error result.
func Error(err error) Result {
	return Result{Status: StatusError, Err: err}
}

// Errorf returns an error result with a formatted message.
func Errorf(format string, args ...any) Result {
	return Error(fmt.Errorf(format, args...))
}

// IsOK reports whether the command succeeded.
func (r Result) IsOK() bool { return r.Status == StatusOK }

// IsError reports whether the command failed.
func (r Result) IsError() bool { return r.Status == StatusError }

// WithChangedLines appends rewritten line indexes to the result.
func (r Result) WithChangedLines(lines ...int) Result {
	r.ChangedLines = append(r.ChangedLines, lines...)
	return r
}

// WithCursor records the cursor position after the command.
func (r Result) WithCursor(line, col int) Result {
	r.CursorLine = line
	r.CursorCol = col
	r.CursorMoved = true
	return r
}

// WithMessage attaches a display message.
func (r Result) WithMessage(format string, args ...any) Result {
	r.Message = fmt.Sprintf(format, args...)
	return r
}

// WithData attaches a command-specific return value.
func (r Result) WithData(key string, value any) Result {
	if r.Data == nil {
		r.Data = make(map[string]any)
	}
	r.Data[key] = value
	return r
}
