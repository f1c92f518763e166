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

func New(msg string) error {
	return cr.New(msg)
}

func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// Is matches both wrapped causes and references attached with Mark.
// Stdlib errors.Is only walks the Unwrap chain and misses marks.
func Is(err, reference error) bool {
	return cr.Is(err, reference)
}
