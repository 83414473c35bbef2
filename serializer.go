package json

import (
	"math"
	"strconv"
)

// Serializer appends strict RFC 8259 JSON to a caller-supplied fixed-size
// byte buffer. Truncation is silent but counted: every write operation
// advances the required-byte counter whether or not the bytes fit, so a
// run against a nil buffer measures the exact size a real buffer needs.
//
// A Serializer is owned by a single goroutine for the duration of a
// session and must not be copied.
type Serializer struct {
	buf              []byte
	head             int
	required         int
	inEmptyContainer bool
}

// NewSerializer returns a serializer writing into buf. A nil or empty
// buffer turns the session into a pure measuring run: nothing is stored,
// but End still reports the exact byte count a real run would produce.
func NewSerializer(buf []byte) *Serializer {
	return &Serializer{buf: buf, inEmptyContainer: true}
}

// Required returns the bytes requested so far, including any that were
// dropped by truncation. Before End this excludes the terminating NUL;
// End counts one more byte for it.
func (s *Serializer) Required() int {
	return s.required
}

// Truncated reports whether the buffer was too small for the payload plus
// its terminating NUL. Meaningful after End.
func (s *Serializer) Truncated() bool {
	return s.required > len(s.buf)
}

// End terminates the payload with a NUL byte, clamped into the buffer on
// overflow, and returns the byte count of the payload excluding that NUL.
// Call exactly once per session.
func (s *Serializer) End() int {
	result := s.required
	s.put(0)
	if len(s.buf) > 0 && result >= len(s.buf) {
		s.buf[len(s.buf)-1] = 0
	}
	return result
}

// WriteNull appends the null literal.
func (s *Serializer) WriteNull() {
	s.separate()
	s.putLiteral("null")
}

// WriteBool appends true or false.
func (s *Serializer) WriteBool(b bool) {
	s.separate()
	if b {
		s.putLiteral("true")
	} else {
		s.putLiteral("false")
	}
}

// WriteUint64 appends an unsigned integer in decimal.
func (s *Serializer) WriteUint64(u uint64) {
	s.separate()
	var tmp [24]byte
	s.putFormatted(strconv.AppendUint(tmp[:0], u, 10))
}

// WriteUint64String appends an unsigned integer in decimal, surrounded by
// double quotes. String-encoded 64-bit numbers survive JSON readers that
// funnel every number through IEEE-754 doubles.
func (s *Serializer) WriteUint64String(u uint64) {
	s.separate()
	s.put('"')
	var tmp [24]byte
	s.putFormatted(strconv.AppendUint(tmp[:0], u, 10))
	s.put('"')
}

// WriteInt64 appends a signed integer in decimal.
func (s *Serializer) WriteInt64(i int64) {
	s.separate()
	var tmp [24]byte
	s.putFormatted(strconv.AppendInt(tmp[:0], i, 10))
}

// WriteInt appends a signed integer in decimal.
func (s *Serializer) WriteInt(i int) { s.WriteInt64(int64(i)) }

// WriteInt32 appends a signed integer in decimal.
func (s *Serializer) WriteInt32(i int32) { s.WriteInt64(int64(i)) }

// WriteUint appends an unsigned integer in decimal.
func (s *Serializer) WriteUint(u uint) { s.WriteUint64(uint64(u)) }

// WriteUint32 appends an unsigned integer in decimal.
func (s *Serializer) WriteUint32(u uint32) { s.WriteUint64(uint64(u)) }

// WriteFloat64 appends a floating-point number. JSON has no
// representation for NaN or infinities; those emit the null literal.
func (s *Serializer) WriteFloat64(f float64) {
	s.separate()
	if math.IsNaN(f) || math.IsInf(f, 0) {
		s.putLiteral("null")
		return
	}
	var tmp [32]byte
	s.putFormatted(appendFloat(tmp[:0], f))
}

// WriteString appends v as a quoted JSON string, escaping as needed.
// Bytes >= 0x20 pass through unvalidated; the caller is trusted to
// supply well-formed UTF-8.
func (s *Serializer) WriteString(v string) {
	s.separate()
	s.put('"')
	s.writeEscaped(v)
	s.put('"')
}

// WriteStringBytes appends v as a quoted JSON string, escaping as needed.
func (s *Serializer) WriteStringBytes(v []byte) {
	s.separate()
	s.put('"')
	s.writeEscapedBytes(v)
	s.put('"')
}

// WriteRawString appends v escaped but without surrounding quotes. The
// caller supplies its own quoting; the usual separator rule still
// applies.
func (s *Serializer) WriteRawString(v string) {
	s.separate()
	s.writeEscaped(v)
}

// WriteObjectStart opens an object.
func (s *Serializer) WriteObjectStart() {
	if !s.inEmptyContainer {
		s.put(',')
	}
	s.inEmptyContainer = true
	s.put('{')
}

// WriteObjectEnd closes the current object.
func (s *Serializer) WriteObjectEnd() {
	s.inEmptyContainer = false
	s.put('}')
}

// WriteArrayStart opens an array.
func (s *Serializer) WriteArrayStart() {
	if !s.inEmptyContainer {
		s.put(',')
	}
	s.inEmptyContainer = true
	s.put('[')
}

// WriteArrayEnd closes the current array.
func (s *Serializer) WriteArrayEnd() {
	s.inEmptyContainer = false
	s.put(']')
}

// WriteObjectField appends the quoted, escaped member key and its colon.
// The next value operation supplies the member's value and emits no
// separator of its own.
func (s *Serializer) WriteObjectField(key string) {
	if !s.inEmptyContainer {
		s.put(',')
	}
	s.inEmptyContainer = true
	s.put('"')
	s.writeEscaped(key)
	s.putLiteral(`":`)
}

// WriteObjectFieldString appends a string-valued member.
func (s *Serializer) WriteObjectFieldString(key, v string) {
	s.WriteObjectField(key)
	s.WriteString(v)
}

// WriteObjectFieldInt64 appends a signed-integer member.
func (s *Serializer) WriteObjectFieldInt64(key string, i int64) {
	s.WriteObjectField(key)
	s.WriteInt64(i)
}

// WriteObjectFieldUint64 appends an unsigned-integer member.
func (s *Serializer) WriteObjectFieldUint64(key string, u uint64) {
	s.WriteObjectField(key)
	s.WriteUint64(u)
}

// WriteObjectFieldFloat64 appends a floating-point member.
func (s *Serializer) WriteObjectFieldFloat64(key string, f float64) {
	s.WriteObjectField(key)
	s.WriteFloat64(f)
}

// WriteObjectFieldBool appends a boolean member.
func (s *Serializer) WriteObjectFieldBool(key string, b bool) {
	s.WriteObjectField(key)
	s.WriteBool(b)
}

// WriteObjectFieldNull appends a null member.
func (s *Serializer) WriteObjectFieldNull(key string) {
	s.WriteObjectField(key)
	s.WriteNull()
}

// WriteObjectFieldObjectStart appends the key and opens its object value.
func (s *Serializer) WriteObjectFieldObjectStart(key string) {
	s.WriteObjectField(key)
	s.WriteObjectStart()
}

// WriteObjectFieldArrayStart appends the key and opens its array value.
func (s *Serializer) WriteObjectFieldArrayStart(key string) {
	s.WriteObjectField(key)
	s.WriteArrayStart()
}

// separate emits the comma demanded by a non-empty container and marks
// the container non-empty.
func (s *Serializer) separate() {
	if !s.inEmptyContainer {
		s.put(',')
	}
	s.inEmptyContainer = false
}

// put appends one byte if there is room. The required count advances
// either way.
func (s *Serializer) put(c byte) {
	s.required++
	if s.head < len(s.buf) {
		s.buf[s.head] = c
		s.head++
	}
}

// putLiteral appends lit whole if it fits, nothing otherwise. The
// required count advances either way.
func (s *Serializer) putLiteral(lit string) {
	s.required += len(lit)
	if len(lit) <= len(s.buf)-s.head {
		copy(s.buf[s.head:], lit)
		s.head += len(lit)
	}
}

// putFormatted appends a formatted token. On overflow the fitting prefix
// is written, head jumps to the buffer end and the last byte becomes NUL,
// mirroring a truncating formatted writer.
func (s *Serializer) putFormatted(p []byte) {
	s.required += len(p)
	if len(s.buf) == 0 {
		return
	}
	left := len(s.buf) - s.head
	copy(s.buf[s.head:], p)
	if len(p) >= left {
		s.head = len(s.buf)
		s.buf[len(s.buf)-1] = 0
		return
	}
	s.head += len(p)
}

// appendFloat formats f the way encoding/json does: fixed notation in
// the human range, exponent notation outside it, with the exponent's
// leading zero trimmed.
func appendFloat(dst []byte, f float64) []byte {
	abs := math.Abs(f)
	format := byte('f')
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}
	dst = strconv.AppendFloat(dst, f, format, -1, 64)
	if format == 'e' {
		// clean up e-09 to e-9
		n := len(dst)
		if n >= 4 && dst[n-4] == 'e' && dst[n-3] == '-' && dst[n-2] == '0' {
			dst[n-2] = dst[n-1]
			dst = dst[:n-1]
		}
	}
	return dst
}
