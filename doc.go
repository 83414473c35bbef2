// Package json provides a fixed-buffer JSON codec for memory-constrained
// and streaming environments: a serializer that emits strict RFC 8259
// JSON into a caller-supplied byte buffer with deterministic truncation
// and dry-run sizing, and a streaming SAX-style parser that decodes
// strings and numbers in place and reports structure through callbacks.
//
// The package uses an internal package for implementation details:
//
//   - internal: lexical lookup tables and byte/string conversions
//
// # Serializing
//
// A Serializer never allocates and never fails. Run it against a nil
// buffer to measure, then against a real buffer to emit:
//
//	probe := json.NewSerializer(nil)
//	build(probe)
//	buf := make([]byte, probe.End()+1)
//	s := json.NewSerializer(buf)
//	build(s)
//	n := s.End() // payload length, excluding the terminating NUL
//
// where build assembles the document:
//
//	s.WriteObjectStart()
//	s.WriteObjectFieldUint64("a", 1)
//	s.WriteObjectFieldArrayStart("b")
//	s.WriteBool(true)
//	s.WriteNull()
//	s.WriteArrayEnd()
//	s.WriteObjectEnd()
//
// Truncation is silent but counted: End always returns the byte count a
// sufficiently large buffer would have received, so callers discover
// overflow by comparing it against the buffer size.
//
// # Parsing
//
// The Deserializer walks the caller's buffer directly and invokes the
// optional callbacks of a Handlers set at grammar boundaries. String and
// number tokens are delivered as sub-slices of that buffer, with escape
// sequences already rewritten in place:
//
//	d := json.NewDeserializer(nil)
//	err := d.Parse(data, &json.Handlers{
//	    Member: func(name []byte) bool { ... },
//	    Uint64: func(u uint64) bool { ... },
//	})
//
// Input larger than the buffer streams through the Refill callback: the
// parser shifts bytes it no longer needs out of the buffer and asks
// Refill to append more. The Decoder type packages this protocol around
// an io.Reader.
//
// # Key Features
//
//   - Zero-allocation serialization with exact dry-run sizing
//   - In-place string unescaping: no token copies, bounded memory
//   - Streaming input through a refill callback or io.Reader
//   - Byte-level UTF-8 framing validation on all parsed input
//   - Configurable nesting depth and number-token limits
//   - Parallel batch validation on a shared worker pool
package json
