package cli

import (
	stderrors "errors"
	"fmt"

	"github.com/ariel-frischer/chglog-uae/internal/errors"
)

// Exit codes for the chglog-uae CLI
const (
	// ExitSuccess indicates successful command execution
	ExitSuccess = 0

	// ExitFailure indicates a runtime failure (reading history, writing output)
	ExitFailure = 1

	// ExitInvalidConfig indicates an invalid config file or environment override
	ExitInvalidConfig = 2

	// ExitInvalidArguments indicates invalid command arguments
	ExitInvalidArguments = 3

	// ExitMissingPrerequisite indicates a missing repository or unreadable templates
	ExitMissingPrerequisite = 4
)

// ExitError carries an exit code without a message of its own. It is
// returned after the command has already reported the problem.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// NewExitError returns an error that makes the process exit with code.
func NewExitError(code int) error {
	return &ExitError{Code: code}
}

// ExitCode maps an error returned by Execute to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if stderrors.As(err, &exitErr) {
		return exitErr.Code
	}

	if cliErr := errors.AsCLIError(err); cliErr != nil {
		switch cliErr.Category {
		case errors.Argument:
			return ExitInvalidArguments
		case errors.Configuration:
			return ExitInvalidConfig
		case errors.Prerequisite:
			return ExitMissingPrerequisite
		}
	}

	return ExitFailure
}
