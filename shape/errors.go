package shape

import "errors"

var (
	ErrInvalidArgument = errors.New("invalid argument")
)
