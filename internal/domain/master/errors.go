package master

import "errors"

var (
	ErrPositionNotFound = errors.New("position not found")
)
