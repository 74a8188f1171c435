package cryptg

import (
	"github.com/pkg/errors"
)

var (
	// ErrMalformedInput is returned when a buffer, key or IV does not have the required length.
	ErrMalformedInput = errors.New("malformed input")
	// ErrInvalidInput is returned when a number is outside the domain of the factorizer.
	ErrInvalidInput = errors.New("invalid input")
	// ErrFactorizationFailed is returned when the factorizer exhausts its search budget.
	ErrFactorizationFailed = errors.New("factorization failed")
)

func IsErrMalformedInput(err error) bool {
	return errors.Is(err, ErrMalformedInput)
}

func IsErrInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

func IsErrFactorizationFailed(err error) bool {
	return errors.Is(err, ErrFactorizationFailed)
}
