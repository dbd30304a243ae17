package inventory

import (
	"errors"
	"fmt"
)

// Sentinel errors for inventory operations.
var (
	// ErrInvalidCharacter indicates a rune outside A-Z and a-z.
	ErrInvalidCharacter = errors.New("invalid character")

	// ErrInvalidArgument indicates a negative count passed to Set.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnderflow indicates a slot would drop below zero.
	ErrUnderflow = errors.New("count underflow")

	// ErrOverflow indicates a slot would exceed MaxCount.
	ErrOverflow = errors.New("count overflow")

	// ErrMalformed indicates text that is not a bracketed inventory.
	ErrMalformed = errors.New("malformed inventory")
)

// Error wraps inventory errors with the operation and the offending input.
type Error struct {
	Op    string // Operation that failed ("add", "set", "parse", ...)
	Char  rune   // Offending character, meaningful for invalid characters and slot errors
	Count int    // Offending count, only meaningful for set
	Err   error  // Underlying sentinel
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case errors.Is(e.Err, ErrInvalidArgument):
		return fmt.Sprintf("%s %q to %d: %v", e.Op, e.Char, e.Count, e.Err)
	case e.Char != 0 || errors.Is(e.Err, ErrInvalidCharacter):
		return fmt.Sprintf("%s %q: %v", e.Op, e.Char, e.Err)
	default:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
}

// Unwrap returns the underlying sentinel for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Err
}

func newError(op string, c rune, err error) *Error {
	return &Error{Op: op, Char: c, Err: err}
}

// OffendingChar extracts the character carried by an inventory error. An
// invalid character is always reported, NUL included.
func OffendingChar(err error) (rune, bool) {
	var invErr *Error
	if !errors.As(err, &invErr) {
		return 0, false
	}
	if invErr.Char != 0 || errors.Is(invErr.Err, ErrInvalidCharacter) {
		return invErr.Char, true
	}
	return 0, false
}
