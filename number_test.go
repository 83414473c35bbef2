package json

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberRefinement(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"zero", "0", "uint64(0)"},
		{"positive integer", "1234", "uint64(1234)"},
		{"uint64 max", "18446744073709551615", "uint64(18446744073709551615)"},
		{"negative integer", "-1", "int64(-1)"},
		{"int64 min", "-9223372036854775808", "int64(-9223372036854775808)"},
		{"fraction", "0.5", "float64(0.5)"},
		{"negative fraction", "-0.5", "float64(-0.5)"},
		{"exponent", "1e3", "float64(1000)"},
		{"upper exponent", "1E3", "float64(1000)"},
		{"signed exponents", "2e+2", "float64(200)"},
		{"negative exponent", "25e-1", "float64(2.5)"},
		{"full grammar", "-12.5e+1", "float64(-125)"},
		{"negative zero", "-0", "int64(0)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &eventRecorder{}
			d := NewDeserializer(nil)
			err := d.Parse(input(tt.doc), rec.handlers())
			require.NoError(t, err)
			assert.Equal(t, []string{"begin", tt.want, "end"}, rec.events)
		})
	}
}

func TestNumberOverflowFallsBackToRaw(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"uint64 overflow", "18446744073709551616"},
		{"int64 underflow", "-9223372036854775809"},
		{"float overflow", "1e400"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &eventRecorder{}
			d := NewDeserializer(nil)
			err := d.Parse(input(tt.doc), rec.handlers())
			require.NoError(t, err)
			assert.Equal(t, []string{"begin", "number(" + tt.doc + ")", "end"}, rec.events)
		})
	}
}

func TestNumberRawHandlerOnly(t *testing.T) {
	// with no refined handlers the untouched token is delivered
	var raws []string
	d := NewDeserializer(nil)
	err := d.Parse(input("[1,-2,3.5]"), &Handlers{
		Number: func(b []byte) bool { raws = append(raws, string(b)); return true },
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "-2", "3.5"}, raws)
}

func TestNumberAgainstBufferEnd(t *testing.T) {
	// a number token flush against the end of input converts in place
	rec := &eventRecorder{}
	d := NewDeserializer(nil)
	require.NoError(t, d.Parse(input("123"), rec.handlers()))
	assert.Equal(t, []string{"begin", "uint64(123)", "end"}, rec.events)

	// exact-fit buffer, no spare capacity
	buf := []byte("4.5")
	rec = &eventRecorder{}
	require.NoError(t, d.Parse(buf, rec.handlers()))
	assert.Equal(t, []string{"begin", "float64(4.5)", "end"}, rec.events)
}

func TestNumberScratchLimit(t *testing.T) {
	d := NewDeserializer(&Config{MaxScratchSize: 4})
	err := d.Parse(input("123456"), nil)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, ErrorOutOfMemory, perr.Kind)
	assert.ErrorIs(t, err, ErrLimitExceeded)

	// at the limit is fine
	assert.NoError(t, d.Parse(input("1234"), nil))
}

func TestFloat64Roundtrip(t *testing.T) {
	var got float64
	d := NewDeserializer(nil)
	err := d.Parse(input("0.1"), &Handlers{
		Float64: func(f float64) bool { got = f; return true },
	})
	require.NoError(t, err)
	assert.Equal(t, 0.1, got)
	assert.False(t, math.Signbit(got))
}
