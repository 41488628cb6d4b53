// internal/cmdutil/exit.go
package cmdutil

import (
	"context"
	"errors"
	"fmt"

	"vvforecast-core/bioprocess"
	"vvforecast-core/poisson"
	"vvforecast/internal/writers"
)

// Process exit codes.
const (
	ExitOK        = 0
	ExitUsage     = 2
	ExitIO        = 3
	ExitCancelled = 130
)

// UsageError marks bad flags or arguments.
type UsageError struct{ Err error }

func (e *UsageError) Error() string { return e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }

// Usagef builds a UsageError from a format string.
func Usagef(format string, a ...any) error {
	return &UsageError{Err: fmt.Errorf(format, a...)}
}

// ExitCode maps an error from a command to the process exit code.
// Broken pipes count as success; downstream readers like `head` close early.
func ExitCode(err error) int {
	var (
		ue *UsageError
		fe *bioprocess.FieldError
		ae *poisson.ArgError
	)
	switch {
	case err == nil, writers.IsBrokenPipe(err):
		return ExitOK
	case errors.Is(err, context.Canceled):
		return ExitCancelled
	case errors.As(err, &ue), errors.As(err, &fe), errors.As(err, &ae):
		return ExitUsage
	default:
		return ExitIO
	}
}
