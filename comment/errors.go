package comment

import "fmt"

// TypeMismatchError is returned when something that is not a comment is
// offered where a comment is required, or a decoded field has the wrong
// type.
type TypeMismatchError struct {
	What string
}

func NewTypeMismatchError(what string) TypeMismatchError {
	return TypeMismatchError{What: what}
}

func (e TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch: %s", e.What)
}

// MalformedInputError is returned when a decoded thread is missing a
// required field or is nested too deeply.
type MalformedInputError struct {
	Path   string
	Reason string
}

func NewMalformedInputError(path, reason string) MalformedInputError {
	return MalformedInputError{Path: path, Reason: reason}
}

func (e MalformedInputError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("malformed input: %s", e.Reason)
	}
	return fmt.Sprintf("malformed input at %s: %s", e.Path, e.Reason)
}

type InvalidConfigError struct {
	Reason string
}

func NewInvalidConfigError(reason string) InvalidConfigError {
	return InvalidConfigError{Reason: reason}
}

func (e InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %s", e.Reason)
}
