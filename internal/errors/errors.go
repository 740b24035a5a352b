// Package errors is the single import for error handling in this module.
// Sentinel checks go through the standard library; wrapping goes through
// pkg/errors so that every wrapped error carries a stack trace.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

func New(text string) error {
	return stderrors.New(text)
}

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func As(err error, target any) bool {
	return stderrors.As(err, target)
}

func Join(errs ...error) error {
	return stderrors.Join(errs...)
}

// IsAny reports whether err matches at least one of targets.
func IsAny(err error, targets ...error) bool {
	for _, target := range targets {
		if stderrors.Is(err, target) {
			return true
		}
	}

	return false
}

// Wrap annotates err with a stack trace and message. It returns nil when err is nil.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}

func WithMessage(err error, message string) error {
	return pkgerrors.WithMessage(err, message)
}

func Errorf(format string, args ...any) error {
	return pkgerrors.Errorf(format, args...)
}

// Cause unwraps pkg/errors annotations down to the original error.
func Cause(err error) error {
	return pkgerrors.Cause(err)
}
