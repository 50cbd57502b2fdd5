// Package errs is the project's thin layer over cockroachdb/errors. Marks
// survive wrapping, which is how usecase sentinels reach the handlers.
package errs

import (
	cr "github.com/cockroachdb/errors"
)

func New(msg string) error {
	return cr.New(msg)
}

func Newf(format string, args ...any) error {
	return cr.Newf(format, args...)
}

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return cr.Wrapf(err, format, args...)
}

// Mark tags err so that Is(err, reference) holds. A nil err yields the
// reference itself.
func Mark(err error, reference error) error {
	if err == nil {
		return reference
	}
	return cr.Mark(err, reference)
}

func Is(err, reference error) bool {
	return cr.Is(err, reference)
}

// IsAny reports whether err matches one of references.
func IsAny(err error, references ...error) bool {
	return cr.IsAny(err, references...)
}
