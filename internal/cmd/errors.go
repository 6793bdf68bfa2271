// Package cmd builds the cobra commands behind the factorial and
// insertsort binaries.
package cmd

import "errors"

// ErrInvalidInput is returned when a driver cannot parse its input.
var ErrInvalidInput = errors.New("cmd: invalid input")

// invalidInputMessage is the exact line written to stderr on bad input.
const invalidInputMessage = "Invalid input."

// reportedError marks an error whose user-facing message has already been
// written to stderr by the command.
type reportedError struct {
	err error
}

func (e reportedError) Error() string { return e.err.Error() }

func (e reportedError) Unwrap() error { return e.err }

func reported(err error) error {
	return reportedError{err: err}
}

// IsReported reports whether the command already printed a message for err,
// so the caller only needs to set the exit status.
func IsReported(err error) bool {
	var r reportedError
	return errors.As(err, &r)
}
