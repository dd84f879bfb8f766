package session

import "errors"

var (
	ErrNotFound        = errors.New("session not found")
	ErrIndexOutOfRange = errors.New("photo index out of range")
)
