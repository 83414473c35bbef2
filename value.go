package json

import (
	"github.com/embedware/json/internal"
)

// Recursive descent over the RFC 8259 grammar:
//
//	element  = ws value ws
//	value    = object | array | string | number | "null" | "true" | "false"
//	object   = "{" ws "}" | "{" members "}"
//	members  = member ("," member)*
//	member   = ws string ws ":" element
//	array    = "[" ws "]" | "[" elements "]"
//	elements = element ("," element)*

func (d *Deserializer) skipWhitespace() bool {
	for !d.eof && internal.Whitespace[d.cur] {
		d.okay(0)
		d.done()
		if !d.advance() {
			return false
		}
	}
	return true
}

func (d *Deserializer) parseElement() bool {
	if !d.skipWhitespace() {
		return false
	}
	if !d.parseValue() {
		return false
	}
	return d.skipWhitespace()
}

func (d *Deserializer) parseValue() bool {
	if d.eof {
		d.reportError(ErrorExpectingValue)
		return false
	}
	switch d.cur {
	case '{':
		return d.parseObject()
	case '[':
		return d.parseArray()
	case '"':
		return d.parseString(false)
	case 'n':
		return d.parseKeyword("null", ErrorExpectingNull, func() bool {
			return d.call0(d.h.Null)
		})
	case 't':
		return d.parseKeyword("true", ErrorExpectingTrue, func() bool {
			return d.callBool(d.h.Bool, true)
		})
	case 'f':
		return d.parseKeyword("false", ErrorExpectingFalse, func() bool {
			return d.callBool(d.h.Bool, false)
		})
	}
	if d.cur == '-' || internal.IsDigit(d.cur) {
		return d.parseNumber()
	}
	d.reportError(ErrorExpectingValue)
	return false
}

func (d *Deserializer) parseObject() bool {
	if d.eof || d.cur != '{' {
		d.reportError(ErrorExpectingOpeningCurlyBracket)
		return false
	}
	if !d.enterContainer() {
		return false
	}
	if !d.call0(d.h.ObjectBegin) {
		return false
	}
	d.okay(0)
	d.done()
	if !d.advance() {
		return false
	}
	if !d.skipWhitespace() {
		return false
	}
	// empty objects are recognized here, not parsed as zero members
	if !d.eof && d.cur == '}' {
		return d.closeObject()
	}
	for {
		if !d.parseMember() {
			return false
		}
		if d.eof || (d.cur != ',' && d.cur != '}') {
			d.reportError(ErrorExpectingClosingCurlyBracket)
			return false
		}
		if d.cur == '}' {
			return d.closeObject()
		}
		d.okay(0)
		d.done()
		if !d.advance() {
			return false
		}
	}
}

func (d *Deserializer) parseMember() bool {
	if !d.skipWhitespace() {
		return false
	}
	if d.eof || d.cur != '"' {
		d.reportError(ErrorExpectingOpeningQuote)
		return false
	}
	if !d.parseString(true) {
		return false
	}
	if !d.skipWhitespace() {
		return false
	}
	if d.eof || d.cur != ':' {
		d.reportError(ErrorExpectingColon)
		return false
	}
	d.okay(0)
	d.done()
	if !d.advance() {
		return false
	}
	return d.parseElement()
}

func (d *Deserializer) closeObject() bool {
	d.nestingDepth--
	if !d.call0(d.h.ObjectEnd) {
		return false
	}
	d.okay(0)
	d.done()
	return d.advance()
}

func (d *Deserializer) parseArray() bool {
	if d.eof || d.cur != '[' {
		d.reportError(ErrorExpectingOpeningSquareBracket)
		return false
	}
	if !d.enterContainer() {
		return false
	}
	if !d.call0(d.h.ArrayBegin) {
		return false
	}
	d.okay(0)
	d.done()
	if !d.advance() {
		return false
	}
	if !d.skipWhitespace() {
		return false
	}
	// empty arrays are recognized here, not parsed as zero elements
	if !d.eof && d.cur == ']' {
		return d.closeArray()
	}
	for {
		if !d.parseElement() {
			return false
		}
		if d.eof || (d.cur != ',' && d.cur != ']') {
			d.reportError(ErrorExpectingClosingSquareBracket)
			return false
		}
		if d.cur == ']' {
			return d.closeArray()
		}
		d.okay(0)
		d.done()
		if !d.advance() {
			return false
		}
	}
}

func (d *Deserializer) closeArray() bool {
	d.nestingDepth--
	if !d.call0(d.h.ArrayEnd) {
		return false
	}
	d.okay(0)
	d.done()
	return d.advance()
}

func (d *Deserializer) enterContainer() bool {
	d.nestingDepth++
	if d.nestingDepth > d.cfg.MaxNestingDepth {
		d.reportError(ErrorNestingTooDeep)
		return false
	}
	return true
}

// parseKeyword consumes lit character by character, failing with kind at
// the first mismatch, then delivers the keyword's event.
func (d *Deserializer) parseKeyword(lit string, kind ErrorKind, deliver func() bool) bool {
	for i := 0; i < len(lit); i++ {
		if d.eof || d.cur != lit[i] {
			d.reportError(kind)
			return false
		}
		if !d.advance() {
			return false
		}
	}
	d.okay(-1)
	if !deliver() {
		return false
	}
	d.done()
	return true
}
