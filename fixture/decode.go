package fixture

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// DecodeString parses a space separated hex sequence and joins the values,
// read as Unicode code points, into a string.
func DecodeString(s string) (string, error) {
	values, err := ParseTokens(s)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for i, v := range values {
		r := rune(v)
		if v > utf8.MaxRune || !utf8.ValidRune(r) {
			return "", fmt.Errorf("token %d (%#x): %w", i, v, ErrInvalidCodePoint)
		}
		b.WriteRune(r)
	}
	return b.String(), nil
}
