package json

import (
	"github.com/embedware/json/internal"
)

// writeEscaped appends v with RFC 8259 string escaping: the two mandatory
// escapes (backslash, quote), the five shortcuts (\b \f \n \r \t), and
// \u00XY with upper-case hex for the remaining control bytes. Bytes
// >= 0x20 pass through untouched, UTF-8 sequences included.
func (s *Serializer) writeEscaped(v string) {
	start := 0
	for i := 0; i < len(v); i++ {
		c := v[i]
		if !internal.NeedsEscape[c] {
			continue
		}
		if i > start {
			s.putLiteral(v[start:i])
		}
		s.putEscape(c)
		start = i + 1
	}
	if start < len(v) {
		s.putLiteral(v[start:])
	}
}

// writeEscapedBytes is writeEscaped for byte slices.
func (s *Serializer) writeEscapedBytes(v []byte) {
	start := 0
	for i := 0; i < len(v); i++ {
		c := v[i]
		if !internal.NeedsEscape[c] {
			continue
		}
		if i > start {
			s.putBytes(v[start:i])
		}
		s.putEscape(c)
		start = i + 1
	}
	if start < len(v) {
		s.putBytes(v[start:])
	}
}

// putEscape emits the escape sequence for one byte from the NeedsEscape
// set.
func (s *Serializer) putEscape(c byte) {
	switch c {
	case '\\':
		s.put('\\')
		s.put('\\')
	case '"':
		s.put('\\')
		s.put('"')
	case '\b':
		s.put('\\')
		s.put('b')
	case '\f':
		s.put('\\')
		s.put('f')
	case '\n':
		s.put('\\')
		s.put('n')
	case '\r':
		s.put('\\')
		s.put('r')
	case '\t':
		s.put('\\')
		s.put('t')
	default:
		s.put('\\')
		s.put('u')
		s.put('0')
		s.put('0')
		s.put(internal.HexUpper[c>>4])
		s.put(internal.HexUpper[c&0x0F])
	}
}

// putBytes is putLiteral for byte slices.
func (s *Serializer) putBytes(p []byte) {
	s.required += len(p)
	if len(p) <= len(s.buf)-s.head {
		copy(s.buf[s.head:], p)
		s.head += len(p)
	}
}
