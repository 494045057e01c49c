package neotags

import (
	"errors"
	"fmt"
)

// ErrorKind classifies fatal conditions. Each kind maps to a fixed exit code
// so the invoking editor can tell failure classes apart.
type ErrorKind uint8

const (
	// KindIO covers tag-source and stdin failures.
	KindIO ErrorKind = iota + 1
	// KindUsage means too few positional arguments.
	KindUsage
	// KindInvalidInt means a numeric argument could not be parsed.
	KindInvalidInt
	// KindPattern means the extraction pattern failed to compile.
	KindPattern
	// KindAlloc means a requested allocation exceeds the configured limit.
	KindAlloc
	// KindTerminal means stdin is an interactive terminal.
	KindTerminal
)

// Exit codes returned by the CLI for each ErrorKind.
const (
	ExitOK         = 0
	ExitTerminal   = 1
	ExitUsage      = 2
	ExitInvalidInt = 30
	ExitPattern    = 40
	ExitIO         = 50
	ExitAlloc      = 100
)

// String returns a stable textual representation for ErrorKind.
func (k ErrorKind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindUsage:
		return "usage"
	case KindInvalidInt:
		return "invalid integer"
	case KindPattern:
		return "pattern"
	case KindAlloc:
		return "alloc"
	case KindTerminal:
		return "terminal"
	default:
		return "unknown"
	}
}

// ExitCode maps the kind to the process exit status.
func (k ErrorKind) ExitCode() int {
	switch k {
	case KindTerminal:
		return ExitTerminal
	case KindUsage:
		return ExitUsage
	case KindInvalidInt:
		return ExitInvalidInt
	case KindPattern:
		return ExitPattern
	case KindIO:
		return ExitIO
	case KindAlloc:
		return ExitAlloc
	default:
		return ExitIO
	}
}

// Error is a fatal condition with its class and the failing operation.
type Error struct {
	Err  error
	Op   string
	Kind ErrorKind
}

func newError(kind ErrorKind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Op == "" {
		return e.Err.Error()
	}

	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Err
}

// ExitCode returns the process exit status for err.
// nil maps to ExitOK; errors that are not *Error map to ExitIO.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var e *Error
	if errors.As(err, &e) {
		return e.Kind.ExitCode()
	}

	return ExitIO
}
