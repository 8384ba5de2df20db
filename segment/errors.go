package segment

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrEmptyPalette = errors.New("empty palette")
	ErrBadColor     = errors.New("bad color")
)
