package store

import "fmt"

// Error is a storage failure: the operation, what went wrong and its cause.
type Error struct {
	Op      string
	Message string
	Err     error
}

func NewError(op, message string, err error) *Error {
	return &Error{Op: op, Message: message, Err: err}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
