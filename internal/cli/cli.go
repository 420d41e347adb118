package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/specialistvlad/minigrep/internal/app"
)

// Usage is printed after every argument error.
const Usage = "Usage:\nminigrep [-i] <QUERY> <FILE>"

// ignoreCaseFlag is the only option minigrep understands.
const ignoreCaseFlag = "-i"

// Reasons an argument list is rejected. Use errors.Is against an ExitError.
var (
	ErrNotEnoughArguments = errors.New("not enough arguments")
	ErrTooManyArguments   = errors.New("too many arguments")
	ErrInvalidOption      = errors.New("invalid option")
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Unwrap returns the reason the arguments were rejected.
func (e *ExitError) Unwrap() error {
	return e.Err
}

func usageError(reason error, message string) *ExitError {
	return &ExitError{Code: 2, Message: message + "\n" + Usage, Err: reason}
}

// Parse turns the full argument list, program name included, into a Config.
// It accepts "prog QUERY FILE" and "prog -i QUERY FILE".
func Parse(args []string) (*app.Config, error) {
	slog.Debug("CLI parser started.", "args", len(args))

	var config *app.Config
	switch {
	case len(args) < 3:
		return nil, usageError(ErrNotEnoughArguments, "Not enough arguments")
	case len(args) > 4:
		return nil, usageError(ErrTooManyArguments, "Too many arguments")
	case len(args) == 3:
		config = app.NewConfig(args[1], args[2], true)
	case args[1] == ignoreCaseFlag:
		config = app.NewConfig(args[2], args[3], false)
	default:
		return nil, usageError(ErrInvalidOption, fmt.Sprintf("First argument '%s' is not a valid option", args[1]))
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, nil
}
