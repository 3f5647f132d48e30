package fixture

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// quietNaN is the NaN bit pattern written for a "nan" literal. math.NaN has
// a payload bit set that fixtures must not carry.
const (
	quietNaN = 0x7ff8000000000000
	signBit  = 0x8000000000000000
)

// EncodeString returns the character count of s and one value per character.
// Values are code points, not UTF-8 bytes, and are not masked to a byte. A
// byte that is not valid UTF-8 is kept as its own value.
func EncodeString(s string) (int, []uint32) {
	values := make([]uint32, 0, len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			values = append(values, uint32(s[i]))
		} else {
			values = append(values, uint32(r))
		}
		i += size
	}
	return len(values), values
}

// EncodeFloat encodes literal as a big-endian IEEE-754 single.
func EncodeFloat(literal string) ([]byte, error) {
	v, err := parseFloat(literal)
	if err != nil {
		return nil, err
	}

	f := float32(v)
	if math.IsInf(float64(f), 0) && !math.IsInf(v, 0) {
		return nil, fmt.Errorf("%q does not fit a float: %w", literal, ErrOverflow)
	}

	out := make([]byte, ModeFloat.width())
	binary.BigEndian.PutUint32(out, math.Float32bits(f))
	return out, nil
}

// EncodeDouble encodes literal as a big-endian IEEE-754 double. Literals
// beyond the double range encode as infinity.
func EncodeDouble(literal string) ([]byte, error) {
	v, err := parseFloat(literal)
	if err != nil {
		return nil, err
	}

	out := make([]byte, ModeDouble.width())
	binary.BigEndian.PutUint64(out, math.Float64bits(v))
	return out, nil
}

// parseFloat accepts decimal literals, inf/infinity and a signed nan. Hex
// float literals are rejected.
func parseFloat(literal string) (float64, error) {
	text := strings.TrimSpace(literal)

	sign, unsigned := "", text
	if len(text) > 0 && (text[0] == '+' || text[0] == '-') {
		sign, unsigned = text[:1], text[1:]
	}

	if strings.EqualFold(unsigned, "nan") {
		bits := uint64(quietNaN)
		if sign == "-" {
			bits |= signBit
		}
		return math.Float64frombits(bits), nil
	}

	if len(unsigned) > 1 && unsigned[0] == '0' && (unsigned[1] == 'x' || unsigned[1] == 'X') {
		err := &strconv.NumError{Func: "ParseFloat", Num: text, Err: strconv.ErrSyntax}
		return 0, &ParseError{Input: literal, Index: -1, Err: err}
	}

	v, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, &ParseError{Input: literal, Index: -1, Err: err}
	}
	return v, nil
}

// EncodeInteger encodes literal as a big-endian two's-complement integer of
// the width selected by mode (byte, short, int or long). The literal is
// decimal unless it carries a 0x, 0o or 0b prefix.
func EncodeInteger(mode Mode, literal string) ([]byte, error) {
	width := mode.width()
	if width == 0 || mode == ModeFloat || mode == ModeDouble {
		return nil, fmt.Errorf("%s: %w", mode, ErrUnsupportedMode)
	}

	text := strings.TrimSpace(literal)
	v, err := strconv.ParseInt(text, integerBase(text), width*8)
	if errors.Is(err, strconv.ErrRange) {
		return nil, fmt.Errorf("%q does not fit a %s: %w", literal, mode, ErrOverflow)
	}
	if err != nil {
		return nil, &ParseError{Input: literal, Index: -1, Err: err}
	}

	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(v))
	return buf[8-width:], nil
}

// integerBase keeps a leading zero decimal, so "010" is ten and not octal.
func integerBase(text string) int {
	digits := strings.TrimLeft(text, "+-")
	if len(digits) > 1 && digits[0] == '0' && strings.ContainsRune("xXoObB", rune(digits[1])) {
		return 0
	}
	return 10
}

// Encode writes the output of one encoder invocation to w. String mode writes
// the character count on its own line before the tokens. ModeNone writes
// nothing.
func Encode(w io.Writer, mode Mode, value string) error {
	var (
		data []byte
		err  error
	)

	switch mode {
	case ModeNone:
		return nil
	case ModeString:
		count, values := EncodeString(value)
		_, err = fmt.Fprintf(w, "%d\n%s\n", count, FormatTokens(values))
		return err
	case ModeFloat:
		data, err = EncodeFloat(value)
	case ModeDouble:
		data, err = EncodeDouble(value)
	case ModeByte, ModeShort, ModeInt, ModeLong:
		data, err = EncodeInteger(mode, value)
	default:
		return fmt.Errorf("%s: %w", mode, ErrUnsupportedMode)
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, FormatBytes(data))
	return err
}
