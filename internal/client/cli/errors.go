package cli

import "fmt"

// Process exit codes.
const (
	ExitOK          = 0
	ExitInterrupted = 1
	ExitFatal       = 1
	ExitUsage       = 2
	ExitFailure     = 5
)

// UsageError is a problem with the command line. It is reported together with
// the usage line and exits with ExitUsage.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

func usageErrorf(format string, args ...any) error {
	return &UsageError{Message: fmt.Sprintf(format, args...)}
}

// ExitError ends the invocation with a specific exit code. Message, when not
// empty, is written to stderr.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}
