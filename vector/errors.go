package vector

import "errors"

var (
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrLengthMismatch  = errors.New("length mismatch")
	ErrInvalidArgument = errors.New("invalid argument")
)
