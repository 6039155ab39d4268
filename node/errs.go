package node

import "errors"

var (
	ErrBadDereference = errors.New("bad dereference")
	ErrConversion     = errors.New("bad conversion")
)
