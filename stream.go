package json

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// =============================================================================
// DECODER IMPLEMENTATION
// =============================================================================

// Decoder reads one JSON document from an io.Reader through a fixed-size
// internal buffer, reporting events through a Handlers set. It is the
// production fit of the Deserializer's refill protocol: however large
// the document, memory stays bounded by the buffer size, and any single
// token larger than the buffer fails with ErrorElementTooLong.
type Decoder struct {
	r       io.Reader
	d       *Deserializer
	buf     []byte
	readErr error
	logger  *slog.Logger
}

// NewDecoder returns a decoder reading from r with the default buffer
// size and configuration.
func NewDecoder(r io.Reader) *Decoder {
	return NewDecoderSize(r, DefaultStreamBufferSize, nil)
}

// NewDecoderSize returns a decoder with an explicit buffer size and
// configuration. A size <= 0 selects DefaultStreamBufferSize; a nil cfg
// selects DefaultConfig.
func NewDecoderSize(r io.Reader, size int, cfg *Config) *Decoder {
	if size <= 0 {
		size = DefaultStreamBufferSize
	}
	return &Decoder{
		r:   r,
		d:   NewDeserializer(cfg),
		buf: make([]byte, size),
	}
}

// SetLogger attaches a structured logger for decode failures. A nil
// logger disables logging.
func (dec *Decoder) SetLogger(logger *slog.Logger) {
	dec.logger = logger
}

// Decode parses one document from the reader, which must supply nothing
// but that document up to end of input: bytes after the value fail with
// ErrorExpectingEndOfInput. The Refill field of h is owned by the
// decoder; any caller-supplied value is ignored.
func (dec *Decoder) Decode(h *Handlers) error {
	dec.readErr = nil
	hh := Handlers{}
	if h != nil {
		hh = *h
	}
	hh.Refill = dec.refill

	err := dec.d.Parse(dec.buf[:0], &hh)
	if err != nil {
		var perr *ParseError
		if errors.As(err, &perr) && perr.Kind == ErrorRefillFailure && dec.readErr != nil {
			err = fmt.Errorf("json: stream read: %w", dec.readErr)
		}
		if dec.logger != nil {
			dec.logger.Error("decode failed", "error", err)
		}
	}
	return err
}

// refill adapts io.Reader to the Deserializer's refill contract: bytes
// written, zero at end of input, negative on read failure. When called
// with no room it probes the reader for one byte so the parser can tell
// an exhausted input from an oversized element; the probed byte is
// unrecoverable, which is fine because the session fails either way.
func (dec *Decoder) refill(dst []byte) int {
	if len(dst) == 0 {
		var probe [1]byte
		n, err := dec.r.Read(probe[:])
		if n > 0 {
			return 1
		}
		if err != nil && err != io.EOF {
			dec.readErr = err
			return -1
		}
		return 0
	}
	for {
		n, err := dec.r.Read(dst)
		if n > 0 {
			return n
		}
		if err == io.EOF {
			return 0
		}
		if err != nil {
			dec.readErr = err
			return -1
		}
	}
}

// =============================================================================
// ENCODER IMPLEMENTATION
// =============================================================================

// Encoder writes JSON documents to an io.Writer. Each document is built
// twice with the same builder function: a measuring pass against a nil
// buffer sizes the payload, then a real pass fills an exact-size buffer.
type Encoder struct {
	w io.Writer
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode sizes, builds and writes one document. The build function must
// be deterministic: a build that produces different byte counts across
// the two passes fails with ErrSizeMismatch.
func (e *Encoder) Encode(build func(*Serializer)) error {
	probe := NewSerializer(nil)
	build(probe)
	size := probe.End()

	buf := make([]byte, size+1)
	s := NewSerializer(buf)
	build(s)
	if s.End() != size {
		return ErrSizeMismatch
	}

	_, err := e.w.Write(buf[:size])
	return err
}

// Valid reports whether data is a single well-formed RFC 8259 document.
func Valid(data []byte) bool {
	d := NewDeserializer(nil)
	return d.Parse(data, nil) == nil
}
