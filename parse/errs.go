package parse

import (
	"errors"
	"fmt"

	"github.com/huzife/cyaml/token"
)

var ErrParse = errors.New("parse error")

// ParseErr is a parser error carrying the position it occurred at.
type ParseErr struct {
	Err  error
	Mark token.Mark
}

func (e *ParseErr) Error() string {
	return fmt.Sprintf("%s: %s", e.Mark, e.Err)
}

func (e *ParseErr) Unwrap() error {
	return e.Err
}

func unexpected(tok token.Token) error {
	return &ParseErr{
		Err:  fmt.Errorf("%w: unexpected token %s", ErrParse, tok.Type),
		Mark: tok.Mark,
	}
}

func expected(want token.Type, got token.Token) error {
	return &ParseErr{
		Err:  fmt.Errorf("%w: expected %s, got %s", ErrParse, want, got.Type),
		Mark: got.Mark,
	}
}
