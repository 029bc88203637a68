package activity

import "errors"

var (
	ErrBadHeader = errors.New("bad header")
	ErrBadRecord = errors.New("bad record")
)
