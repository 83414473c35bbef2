package json

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rebuildHandlers drives a second Serializer from parse events, so a
// serialized document can be parsed and re-serialized byte for byte.
func rebuildHandlers(s *Serializer) *Handlers {
	return &Handlers{
		ObjectBegin: func() bool { s.WriteObjectStart(); return true },
		ObjectEnd:   func() bool { s.WriteObjectEnd(); return true },
		ArrayBegin:  func() bool { s.WriteArrayStart(); return true },
		ArrayEnd:    func() bool { s.WriteArrayEnd(); return true },
		Member:      func(b []byte) bool { s.WriteObjectField(string(b)); return true },
		String:      func(b []byte) bool { s.WriteStringBytes(b); return true },
		Float64:     func(f float64) bool { s.WriteFloat64(f); return true },
		Int64:       func(i int64) bool { s.WriteInt64(i); return true },
		Uint64:      func(u uint64) bool { s.WriteUint64(u); return true },
		Bool:        func(b bool) bool { s.WriteBool(b); return true },
		Null:        func() bool { s.WriteNull(); return true },
	}
}

func TestSerializeParseRoundtrip(t *testing.T) {
	builders := []struct {
		name  string
		build func(s *Serializer)
	}{
		{
			name: "flat object",
			build: func(s *Serializer) {
				s.WriteObjectStart()
				s.WriteObjectFieldUint64("u", 42)
				s.WriteObjectFieldInt64("i", -42)
				s.WriteObjectFieldFloat64("f", 0.25)
				s.WriteObjectFieldString("s", "hé\"llo\n")
				s.WriteObjectFieldBool("b", true)
				s.WriteObjectFieldNull("n")
				s.WriteObjectEnd()
			},
		},
		{
			name: "nested containers",
			build: func(s *Serializer) {
				s.WriteArrayStart()
				s.WriteObjectStart()
				s.WriteObjectFieldArrayStart("xs")
				s.WriteUint64(1)
				s.WriteUint64(2)
				s.WriteArrayEnd()
				s.WriteObjectEnd()
				s.WriteArrayStart()
				s.WriteArrayEnd()
				s.WriteObjectStart()
				s.WriteObjectEnd()
				s.WriteArrayEnd()
			},
		},
		{
			name: "escaped keys and values",
			build: func(s *Serializer) {
				s.WriteObjectStart()
				s.WriteObjectFieldString("tab\tkey", "line\nvalue")
				s.WriteObjectFieldString("quote\"key", "back\\slash")
				s.WriteObjectEnd()
			},
		},
	}

	for _, tt := range builders {
		t.Run(tt.name, func(t *testing.T) {
			// serialize with measure-then-emit
			probe := NewSerializer(nil)
			tt.build(probe)
			size := probe.End()

			buf := make([]byte, size+1)
			first := NewSerializer(buf)
			tt.build(first)
			require.Equal(t, size, first.End())
			doc := string(buf[:size])

			// parse the serialized bytes and rebuild
			out := make([]byte, size+1)
			second := NewSerializer(out)
			d := NewDeserializer(nil)
			require.NoError(t, d.Parse(input(doc), rebuildHandlers(second)))

			n := second.End()
			assert.Equal(t, doc, string(out[:n]))
		})
	}
}

func TestRoundtripThroughEncoderAndDecoder(t *testing.T) {
	// the io-facing wrappers compose: encode to a stream, decode the
	// stream through a small buffer, rebuild, compare
	build := func(s *Serializer) {
		s.WriteObjectStart()
		s.WriteObjectFieldString("name", "streaming")
		s.WriteObjectFieldArrayStart("bits")
		s.WriteUint64(1)
		s.WriteUint64(0)
		s.WriteArrayEnd()
		s.WriteObjectEnd()
	}

	var encoded bytes.Buffer
	require.NoError(t, NewEncoder(&encoded).Encode(build))
	doc := encoded.String()

	out := make([]byte, len(doc)+1)
	rebuilt := NewSerializer(out)
	dec := NewDecoderSize(&encoded, 16, nil)
	require.NoError(t, dec.Decode(rebuildHandlers(rebuilt)))

	n := rebuilt.End()
	assert.Equal(t, doc, string(out[:n]))
}
