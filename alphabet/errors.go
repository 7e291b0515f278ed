package alphabet

import (
	"errors"
	"fmt"
)

// Common errors returned by alphabet operations.
var (
	ErrDuplicateChar = errors.New("duplicate character")
	ErrNotSubset     = errors.New("character not in restricting alphabet")
	ErrInvalidChar   = errors.New("invalid unicode scalar value")
	ErrUnknownChar   = errors.New("character not in alphabet")
	ErrEmpty         = errors.New("alphabet is empty")
	ErrEmptyString   = errors.New("empty string")
	ErrNegativeIndex = errors.New("negative index")
	ErrIndexOverflow = errors.New("index overflows int64")
)

// CharError reports the character that failed a check. Err is one of
// ErrDuplicateChar, ErrNotSubset, ErrInvalidChar or ErrUnknownChar.
type CharError struct {
	Err  error
	Char rune
}

func (e *CharError) Error() string {
	return fmt.Sprintf("%v: %q", e.Err, e.Char)
}

func (e *CharError) Unwrap() error { return e.Err }

func charError(err error, c rune) error {
	return &CharError{Err: err, Char: c}
}
