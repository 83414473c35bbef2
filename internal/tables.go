package internal

// ============================================================================
// LOOKUP TABLES FOR LEXICAL CLASSIFICATION
// ============================================================================

// NeedsEscape is a pre-computed lookup table for bytes that cannot appear
// verbatim inside a JSON string. Index is the byte value, value is true if
// the byte must be written as an escape sequence.
var NeedsEscape = [256]bool{
	// Control characters (0x00-0x1F) need escaping
	0x00: true, 0x01: true, 0x02: true, 0x03: true, 0x04: true, 0x05: true, 0x06: true, 0x07: true,
	0x08: true, 0x09: true, 0x0A: true, 0x0B: true, 0x0C: true, 0x0D: true, 0x0E: true, 0x0F: true,
	0x10: true, 0x11: true, 0x12: true, 0x13: true, 0x14: true, 0x15: true, 0x16: true, 0x17: true,
	0x18: true, 0x19: true, 0x1A: true, 0x1B: true, 0x1C: true, 0x1D: true, 0x1E: true, 0x1F: true,
	// Quote and backslash need escaping
	'"':  true,
	'\\': true,
	// All other bytes (0x20-0xFF except " and \) pass through, including
	// UTF-8 continuation and start bytes
}

// Whitespace marks the RFC 8259 whitespace set: space, tab, line feed,
// carriage return. Nothing else counts as whitespace between tokens.
var Whitespace = [256]bool{
	' ':  true,
	'\t': true,
	'\n': true,
	'\r': true,
}

// HexUpper contains upper-case hex digits for \u00XY escape sequences
var HexUpper = [16]byte{
	'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'A', 'B', 'C', 'D', 'E', 'F',
}

// HexValue maps a byte to its value as a hex digit, or -1 if the byte is
// not a hex digit. Both cases are accepted.
var HexValue = [256]int8{}

func init() {
	for i := range HexValue {
		HexValue[i] = -1
	}
	for c := '0'; c <= '9'; c++ {
		HexValue[c] = int8(c - '0')
	}
	for c := 'a'; c <= 'f'; c++ {
		HexValue[c] = int8(c - 'a' + 10)
	}
	for c := 'A'; c <= 'F'; c++ {
		HexValue[c] = int8(c - 'A' + 10)
	}
}

// IsDigit reports whether c is an ASCII decimal digit.
func IsDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
