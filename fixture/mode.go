package fixture

// Mode selects how a command line value is turned into bytes.
type Mode int

const (
	ModeNone = Mode(iota)
	ModeString
	ModeFloat
	ModeDouble
	ModeByte
	ModeShort
	ModeInt
	ModeLong
)

func (m Mode) String() string {
	switch m {
	case ModeNone:
		return "none"
	case ModeString:
		return "string"
	case ModeFloat:
		return "float"
	case ModeDouble:
		return "double"
	case ModeByte:
		return "byte"
	case ModeShort:
		return "short"
	case ModeInt:
		return "int"
	case ModeLong:
		return "long"
	default:
		return "<unknown>"
	}
}

// width is the encoded size in bytes of the numeric modes, 0 otherwise.
func (m Mode) width() int {
	switch m {
	case ModeByte:
		return 1
	case ModeShort:
		return 2
	case ModeInt, ModeFloat:
		return 4
	case ModeLong, ModeDouble:
		return 8
	default:
		return 0
	}
}
