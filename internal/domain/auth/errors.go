package auth

import "errors"

var (
	ErrInvalidPasscode = errors.New("invalid terminal passcode")
)
