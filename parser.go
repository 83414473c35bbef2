package json

// Deserializer is a streaming recursive-descent JSON parser operating
// directly on a caller-supplied byte buffer. It reports structural events
// through the optional callbacks of a Handlers set, decodes strings and
// numbers in place, and can consume input larger than the buffer through
// the Refill callback.
//
// A Deserializer may be reused for consecutive sessions but is owned by a
// single goroutine and must not be copied: a copy would carry divergent
// cursors over the same buffer.
type Deserializer struct {
	cfg Config

	// buf is the caller's buffer, extended to its full capacity. idxNul
	// is the exclusive end of valid input, idxCur the current character,
	// idxOkay the last byte through which parsing has succeeded, idxDone
	// the last byte that may be recycled by the next shift. The session
	// maintains -1 <= idxDone <= idxOkay <= idxCur <= idxNul <= len(buf).
	buf     []byte
	cur     byte
	idxNul  int
	idxCur  int
	idxOkay int
	idxDone int

	nestingDepth int
	utf8Count    int

	eof       bool
	refillEOF bool

	h   *Handlers
	err *ParseError
}

// NewDeserializer returns a parser with the given configuration. A nil
// cfg selects DefaultConfig. The configuration is copied; later changes
// to cfg do not affect the parser.
func NewDeserializer(cfg *Config) *Deserializer {
	c := DefaultConfig()
	if cfg != nil {
		cc := *cfg
		_ = ValidateConfig(&cc)
		c = &cc
	}
	return &Deserializer{cfg: *c}
}

// Parse consumes one JSON element from buf and reports its events through
// h (which may be nil to validate only). len(buf) is the filled prefix;
// the remaining capacity up to cap(buf) is used by the Refill handler for
// streaming input. The buffer is both read and rewritten during the
// session and belongs to the parser until Parse returns.
//
// The returned error is nil or a *ParseError.
func (d *Deserializer) Parse(buf []byte, h *Handlers) error {
	return d.parse(buf, h, 0)
}

// ParseObject is Parse restricted to documents whose root is an object.
// Any other root fails with ErrorExpectingOpeningCurlyBracket.
func (d *Deserializer) ParseObject(buf []byte, h *Handlers) error {
	return d.parse(buf, h, '{')
}

// ParseArray is Parse restricted to documents whose root is an array.
// Any other root fails with ErrorExpectingOpeningSquareBracket.
func (d *Deserializer) ParseArray(buf []byte, h *Handlers) error {
	return d.parse(buf, h, '[')
}

func (d *Deserializer) parse(buf []byte, h *Handlers, want byte) error {
	d.reset(buf, h)
	if cap(buf) == 0 {
		d.reportError(ErrorBufferTooShort)
		return d.err
	}
	if !d.call0(d.h.Begin) {
		return d.err
	}
	if !d.advance() {
		return d.err
	}
	if !d.skipWhitespace() {
		return d.err
	}
	if want != 0 && (d.eof || d.cur != want) {
		if want == '{' {
			d.reportError(ErrorExpectingOpeningCurlyBracket)
		} else {
			d.reportError(ErrorExpectingOpeningSquareBracket)
		}
		return d.err
	}
	if !d.parseValue() {
		return d.err
	}
	if !d.skipWhitespace() {
		return d.err
	}
	if !d.eof {
		d.reportError(ErrorExpectingEndOfInput)
		return d.err
	}
	if !d.call0(d.h.End) {
		return d.err
	}
	return nil
}

func (d *Deserializer) reset(buf []byte, h *Handlers) {
	d.buf = buf[:cap(buf)]
	d.cur = 0
	d.idxNul = len(buf)
	d.idxCur = -1
	d.idxOkay = -1
	d.idxDone = -1
	d.nestingDepth = 0
	d.utf8Count = 0
	d.eof = false
	d.refillEOF = false
	d.err = nil
	if h == nil {
		h = &noHandlers
	}
	d.h = h
}

// reportError records the failure and notifies the Error handler. The
// tail spans from the first unconfirmed byte to the end of valid input.
func (d *Deserializer) reportError(kind ErrorKind) {
	start := d.idxOkay + 1
	if start > d.idxNul {
		start = d.idxNul
	}
	tail := d.buf[start:d.idxNul]
	d.err = &ParseError{Kind: kind, Tail: tail}
	if d.h.Error != nil {
		d.h.Error(kind, tail)
	}
}
