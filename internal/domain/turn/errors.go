package turn

import "errors"

var (
	ErrTurnNotFound = errors.New("turn not found")
	ErrTurnFixed    = errors.New("fixed turns cannot be modified or deleted")
)
