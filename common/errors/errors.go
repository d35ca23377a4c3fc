package errors

import (
	"github.com/pkg/errors"
)

type ExitCodeError struct {
	code ExitCode
	error
}

func NewError(err error, exitCode ExitCode) *ExitCodeError {
	if err == nil {
		return nil
	}
	return &ExitCodeError{exitCode, err}
}

func (e *ExitCodeError) GetExitCode() ExitCode {
	if e == nil {
		return 0
	}
	return e.code
}

func (e *ExitCodeError) Cause() error  { return e.error }
func (e *ExitCodeError) Unwrap() error { return e.error }

// ExitCodeOf returns the exit code carried by err or anything it wraps.
// Errors without one map to CollaboratorFailureExitCode, nil maps to 0.
func ExitCodeOf(err error) ExitCode {
	if err == nil {
		return 0
	}
	var ece *ExitCodeError
	if errors.As(err, &ece) {
		return ece.GetExitCode()
	}
	return CollaboratorFailureExitCode
}
