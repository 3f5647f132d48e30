package fixture

import (
	"errors"
	"fmt"
)

var (
	ErrOverflow         = errors.New("value out of range")
	ErrInvalidCodePoint = errors.New("invalid code point")
	ErrUnsupportedMode  = errors.New("unsupported mode")
)

// ParseError reports an input that could not be parsed. Index is the 0-based
// position of the hex token, or -1 when the whole input is a single literal.
type ParseError struct {
	Input string
	Index int
	Err   error
}

func (e *ParseError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("invalid literal %q: %v", e.Input, e.Err)
	}
	return fmt.Sprintf("invalid hex token %q (token=%d, 0-based): %v", e.Input, e.Index, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
