package json

import (
	"strconv"

	"github.com/embedware/json/internal"
)

// parseNumber scans one number token and refines it: fraction or exponent
// selects float64, a leading minus int64, anything else uint64. A token
// that overflows its refined type, or whose refined handler is unset,
// falls back to the raw Number handler. The token start index is rebased
// across every shift the scan triggers.
func (d *Deserializer) parseNumber() bool {
	start := d.idxCur
	isFloat := false
	neg := d.cur == '-'

	if neg {
		sh, ok := d.next()
		if !ok {
			return false
		}
		start -= sh
	}

	// integer part: 0 | [1-9][0-9]*
	switch {
	case d.eof || !internal.IsDigit(d.cur):
		d.reportError(ErrorExpectingNumber)
		return false
	case d.cur == '0':
		sh, ok := d.next()
		if !ok {
			return false
		}
		start -= sh
	default:
		for !d.eof && internal.IsDigit(d.cur) {
			sh, ok := d.next()
			if !ok {
				return false
			}
			start -= sh
		}
	}

	// fraction: . [0-9]+
	if !d.eof && d.cur == '.' {
		isFloat = true
		sh, ok := d.next()
		if !ok {
			return false
		}
		start -= sh
		if d.eof || !internal.IsDigit(d.cur) {
			d.reportError(ErrorExpectingFractionDigits)
			return false
		}
		for !d.eof && internal.IsDigit(d.cur) {
			sh, ok := d.next()
			if !ok {
				return false
			}
			start -= sh
		}
	}

	// exponent: [eE] [+-]? [0-9]+
	if !d.eof && (d.cur == 'e' || d.cur == 'E') {
		isFloat = true
		sh, ok := d.next()
		if !ok {
			return false
		}
		start -= sh
		if !d.eof && (d.cur == '+' || d.cur == '-') {
			sh, ok := d.next()
			if !ok {
				return false
			}
			start -= sh
		}
		if d.eof || !internal.IsDigit(d.cur) {
			d.reportError(ErrorExpectingExponentDigits)
			return false
		}
		for !d.eof && internal.IsDigit(d.cur) {
			sh, ok := d.next()
			if !ok {
				return false
			}
			start -= sh
		}
	}

	token := d.buf[start:d.idxCur]
	if len(token) > d.cfg.MaxScratchSize {
		d.reportError(ErrorOutOfMemory)
		return false
	}
	d.okay(-1)
	if !d.deliverNumber(token, isFloat, neg) {
		return false
	}
	d.done()
	return true
}

func (d *Deserializer) deliverNumber(token []byte, isFloat, neg bool) bool {
	s := internal.BytesToString(token)
	switch {
	case isFloat:
		if d.h.Float64 != nil {
			if v, err := strconv.ParseFloat(s, 64); err == nil {
				return d.callFloat64(d.h.Float64, v)
			}
		}
	case neg:
		if d.h.Int64 != nil {
			if v, err := strconv.ParseInt(s, 10, 64); err == nil {
				return d.callInt64(d.h.Int64, v)
			}
		}
	default:
		if d.h.Uint64 != nil {
			if v, err := strconv.ParseUint(s, 10, 64); err == nil {
				return d.callUint64(d.h.Uint64, v)
			}
		}
	}
	return d.callBytes(d.h.Number, token)
}

func (d *Deserializer) callFloat64(h func(float64) bool, v float64) bool {
	if !h(v) {
		d.reportError(ErrorAborted)
		return false
	}
	return true
}

func (d *Deserializer) callInt64(h func(int64) bool, v int64) bool {
	if !h(v) {
		d.reportError(ErrorAborted)
		return false
	}
	return true
}

func (d *Deserializer) callUint64(h func(uint64) bool, v uint64) bool {
	if !h(v) {
		d.reportError(ErrorAborted)
		return false
	}
	return true
}
