package mark

import "errors"

var (
	ErrMarkNotFound      = errors.New("mark not found")
	ErrMarkAlreadyClosed = errors.New("mark already closed")
	ErrInvalidBreakType  = errors.New("invalid break type")
)
