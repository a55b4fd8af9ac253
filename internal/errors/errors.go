// Package errors defines the two failure kinds of the chess engine:
// invalid arguments, reported to the caller with the offending field name,
// and logic errors, raised when a property of a null object is requested.
// Both support inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the two failure kinds.
var (
	// ErrInvalidArgument indicates a caller-supplied value that the engine
	// rejects. The wrapping InvalidArgumentError names the offending field.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrLogic indicates a request for a property of an object that has
	// none, such as the colour of the null piece.
	ErrLogic = errors.New("logic error")
)

// InvalidArgumentError reports a rejected caller-supplied value.
// The field name is one of the engine's argument identifiers
// (symbol, color, turn, ep_file, fen, uci, san, move, index, rank,
// file, x88_index, half_moves, ply, piece, promotion, target, ...).
type InvalidArgumentError struct {
	Field string
}

// Error returns the message in the engine's canonical form.
func (e *InvalidArgumentError) Error() string {
	return "invalid argument: " + e.Field
}

// Unwrap returns ErrInvalidArgument so that
// errors.Is(err, ErrInvalidArgument) holds for every invalid argument.
func (e *InvalidArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

// Invalid returns an error rejecting the named field.
func Invalid(field string) error {
	return &InvalidArgumentError{Field: field}
}

// LogicError reports a caller bug that cannot be expressed as a bad
// argument, such as reading the rank of the null square.
type LogicError struct {
	Msg string
}

// Error returns the message describing the misuse.
func (e *LogicError) Error() string {
	return e.Msg
}

// Unwrap returns ErrLogic.
func (e *LogicError) Unwrap() error {
	return ErrLogic
}

// Logic returns a LogicError with the given message. Engine accessors
// panic with the returned value; hosts translate it to their generic
// runtime error.
func Logic(msg string) *LogicError {
	return &LogicError{Msg: msg}
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
