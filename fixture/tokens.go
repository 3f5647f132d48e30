package fixture

import (
	"strconv"
	"strings"
)

const separator = " "

// FormatTokens renders every value as lowercase hex without zero padding,
// separated by single spaces.
func FormatTokens(values []uint32) string {
	var b strings.Builder
	for i, v := range values {
		if i > 0 {
			b.WriteString(separator)
		}
		b.WriteString(strconv.FormatUint(uint64(v), 16))
	}
	return b.String()
}

// FormatBytes is FormatTokens for a byte sequence.
func FormatBytes(data []byte) string {
	values := make([]uint32, 0, len(data))
	for _, c := range data {
		values = append(values, uint32(c))
	}
	return FormatTokens(values)
}

// ParseTokens parses a sequence produced by FormatTokens. Tokens are separated
// by exactly one space, so an empty token (e.g. from a doubled space) is an
// error. A token may carry a 0x prefix and surrounding whitespace.
func ParseTokens(s string) ([]uint32, error) {
	fields := strings.Split(s, separator)
	values := make([]uint32, 0, len(fields))

	for i, field := range fields {
		digits := strings.TrimSpace(field)
		if len(digits) > 1 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
			digits = digits[2:]
		}

		v, err := strconv.ParseUint(digits, 16, 32)
		if err != nil {
			return nil, &ParseError{Input: field, Index: i, Err: err}
		}
		values = append(values, uint32(v))
	}

	return values, nil
}
