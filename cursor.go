package json

import "math/bits"

// The cursor walks the parse buffer one byte at a time. When it hits the
// end of valid input and a Refill handler is configured, the bytes still
// needed are first shifted to the front of the buffer and the freed tail
// is handed to Refill. Token positions are indices into the buffer, so a
// shift invalidates them by a known amount: next returns that amount and
// token holders subtract it.

// next advances the cursor by one byte. The returned int is the shift
// offset applied to the buffer contents (zero in the common case); false
// means the session failed and d.err is set. At the end of input next
// sets d.eof and parks the cursor at idxNul with a zero current byte.
func (d *Deserializer) next() (int, bool) {
	if d.eof {
		return 0, true
	}
	shift := 0
	if d.idxCur+1 >= d.idxNul {
		var ok bool
		shift, ok = d.fill()
		if !ok || d.eof {
			return shift, ok
		}
	}
	d.idxCur++
	d.cur = d.buf[d.idxCur]
	return shift, d.classify(d.cur)
}

// advance is next for call sites that hold no token indices.
func (d *Deserializer) advance() bool {
	_, ok := d.next()
	return ok
}

// fill makes at least one more byte available, shifting done bytes out of
// the buffer and invoking the Refill handler on the freed tail.
func (d *Deserializer) fill() (int, bool) {
	if d.h.Refill == nil || d.refillEOF {
		d.markEOF()
		return 0, true
	}

	shift := d.idxDone + 1
	if shift > 0 {
		copy(d.buf, d.buf[shift:d.idxNul])
		d.idxNul -= shift
		d.idxCur -= shift
		d.idxOkay -= shift
		d.idxDone = -1
	}

	free := d.buf[d.idxNul:]
	n := d.h.Refill(free)
	switch {
	case n < 0:
		d.reportError(ErrorRefillFailure)
		return shift, false
	case n == 0:
		d.refillEOF = true
		d.markEOF()
		return shift, true
	case len(free) == 0:
		// The element under the cursor spans the whole buffer and the
		// input has more of it.
		d.reportError(ErrorElementTooLong)
		return shift, false
	case n > len(free):
		d.reportError(ErrorRefillFailure)
		return shift, false
	}
	d.idxNul += n
	return shift, true
}

func (d *Deserializer) markEOF() {
	d.eof = true
	d.cur = 0
	d.idxCur = d.idxNul
}

// classify validates one input byte: literal NUL is fatal anywhere, and
// UTF-8 framing is checked by the leading-ones count of each byte. Only
// counts 0, 2, 3 and 4 may start a code point; continuation bytes carry
// the 10xxxxxx prefix and must appear exactly where the preceding start
// byte demands them.
func (d *Deserializer) classify(c byte) bool {
	if c == 0 {
		d.reportError(ErrorInlineNullByte)
		return false
	}
	ones := bits.LeadingZeros8(^c)
	switch {
	case ones == 0:
		if d.utf8Count > 0 {
			d.reportError(ErrorInvalidUTF8ContinuationByte)
			return false
		}
	case ones == 1:
		if d.utf8Count == 0 {
			d.reportError(ErrorInvalidUTF8StartByte)
			return false
		}
		d.utf8Count--
	case ones <= 4:
		if d.utf8Count > 0 {
			d.reportError(ErrorInvalidUTF8ContinuationByte)
			return false
		}
		d.utf8Count = ones - 1
	default:
		d.reportError(ErrorInvalidUTF8StartByte)
		return false
	}
	return true
}

// okay records that parsing succeeded through idxCur+offset.
func (d *Deserializer) okay(offset int) {
	d.idxOkay = d.idxCur + offset
}

// done releases every byte up to the okay mark for reuse by the next
// shift. Never call it while a token's bytes are still live.
func (d *Deserializer) done() {
	d.idxDone = d.idxOkay
}
