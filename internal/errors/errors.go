// Package errors combines stdlib error inspection with pkg/errors stack traces,
// and marks failures that a message redelivery may fix.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

var (
	New    = stderrors.New
	Is     = stderrors.Is
	As     = stderrors.As
	Unwrap = stderrors.Unwrap

	Wrap        = pkgerrors.Wrap
	Wrapf       = pkgerrors.Wrapf
	WithStack   = pkgerrors.WithStack
	WithMessage = pkgerrors.WithMessage
	Errorf      = pkgerrors.Errorf
	Cause       = pkgerrors.Cause
)

// Join discards nil errors and returns nil when none remain. The result carries a stack trace.
func Join(errs ...error) error {
	joined := stderrors.Join(errs...)
	if joined == nil {
		return nil
	}

	return pkgerrors.WithStack(joined)
}

type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return "retryable: " + e.err.Error()
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// Retryable marks err as transient. A nil err stays nil.
func Retryable(err error) error {
	if err == nil {
		return nil
	}

	return &retryableError{err: err}
}

// IsRetryable reports whether any error in err's chain was marked by Retryable.
func IsRetryable(err error) bool {
	var re *retryableError

	return stderrors.As(err, &re)
}
