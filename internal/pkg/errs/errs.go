package errs

import (
	cr "github.com/cockroachdb/errors"
)

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

func New(msg string) error {
	return cr.New(msg)
}

func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// Is reports whether err carries ref in its chain or as a mark.
// Marks attached with Mark are not part of the Unwrap chain, so the
// stdlib errors.Is cannot see them; matching marked errors must go
// through this.
func Is(err error, ref error) bool {
	return cr.Is(err, ref)
}

func As(err error, target any) bool {
	return cr.As(err, target)
}
