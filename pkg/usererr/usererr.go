// Package usererr separates expected user mistakes from system failures.
// Expected errors (an invalid volume selector, nothing in the trash to
// empty) are reported gently and exit zero; everything else exits non-zero.
package usererr

import (
	"errors"

	cerr "github.com/cockroachdb/errors"
)

// UserError marks an error as expected and recoverable by the user.
type UserError struct {
	cause error
}

func (e *UserError) Error() string { return e.cause.Error() }

func (e *UserError) Unwrap() error { return e.cause }

// New creates an expected user error from a plain message.
func New(msg string) error {
	return &UserError{cause: cerr.New(msg)}
}

// Newf creates an expected user error from a format string.
func Newf(format string, args ...interface{}) error {
	return &UserError{cause: cerr.Newf(format, args...)}
}

// Wrap marks an existing error as expected. Returns nil for nil.
func Wrap(err error) error {
	if err == nil {
		return nil
	}
	return &UserError{cause: err}
}

// IsExpected reports whether err (or anything it wraps) is a UserError.
func IsExpected(err error) bool {
	var ue *UserError
	return errors.As(err, &ue)
}
