package errors

import (
	"errors"
)

var (
	ErrBadDatabase    = errors.New("malformed mime database")
	ErrEmptyType      = errors.New("mime database contains an empty type")
	ErrEmptyExtension = errors.New("mime database contains an empty extension")
)
