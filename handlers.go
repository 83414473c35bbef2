package json

// Handlers is the set of callbacks a Deserializer reports through. Every
// field is optional; an unset handler silently discards its event.
//
// Value handlers return true to continue parsing. Returning false aborts
// the session with ErrorAborted. Handlers must not re-enter the
// Deserializer they were invoked from.
//
// Byte slices passed to Member, String and Number alias the parse buffer
// and are valid only until the handler returns. Copy them to retain.
type Handlers struct {
	// Begin fires before any other event. End fires after the last one,
	// only when the whole document parsed successfully.
	Begin func() bool
	End   func() bool

	// Container boundaries, in document order.
	ObjectBegin func() bool
	ObjectEnd   func() bool
	ArrayBegin  func() bool
	ArrayEnd    func() bool

	// Member receives an object member name, decoded in place. It always
	// precedes the events of the member's value.
	Member func(name []byte) bool

	// String receives a string value, decoded in place: escape sequences
	// are already rewritten to raw UTF-8.
	String func(s []byte) bool

	// Number receives the raw token of a number that either overflowed
	// its refined type or has no type-specific handler set.
	Number func(raw []byte) bool

	// Refined number handlers. Tokens with a fraction or exponent go to
	// Float64, negative integers to Int64, everything else to Uint64.
	Float64 func(f float64) bool
	Int64   func(i int64) bool
	Uint64  func(u uint64) bool

	Bool func(b bool) bool
	Null func() bool

	// Error observes the failure before Parse returns it. Tail points at
	// the unparsed remainder of the buffer.
	Error func(kind ErrorKind, tail []byte)

	// Refill pulls more input into dst, the unused tail of the parse
	// buffer, and returns the byte count written. Zero means end of
	// input, a negative count fails the session with ErrorRefillFailure.
	// Refill is the only blocking boundary of a session and may perform
	// I/O of arbitrary duration.
	Refill func(dst []byte) int
}

// noHandlers backs sessions started with a nil handler set.
var noHandlers Handlers

func (d *Deserializer) call0(h func() bool) bool {
	if h == nil {
		return true
	}
	if !h() {
		d.reportError(ErrorAborted)
		return false
	}
	return true
}

func (d *Deserializer) callBytes(h func([]byte) bool, b []byte) bool {
	if h == nil {
		return true
	}
	if !h(b) {
		d.reportError(ErrorAborted)
		return false
	}
	return true
}

func (d *Deserializer) callBool(h func(bool) bool, v bool) bool {
	if h == nil {
		return true
	}
	if !h(v) {
		d.reportError(ErrorAborted)
		return false
	}
	return true
}
