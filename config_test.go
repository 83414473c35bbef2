package json

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, DefaultMaxNestingDepth, cfg.MaxNestingDepth)
	assert.Equal(t, DefaultMaxScratchSize, cfg.MaxScratchSize)
	assert.False(t, cfg.AllowNullInString)
}

func TestValidateConfig(t *testing.T) {
	t.Run("nil config", func(t *testing.T) {
		assert.ErrorIs(t, ValidateConfig(nil), ErrInvalidConfig)
	})

	t.Run("corrects invalid values", func(t *testing.T) {
		cfg := &Config{MaxNestingDepth: -1, MaxScratchSize: 0}
		require.NoError(t, ValidateConfig(cfg))
		assert.Equal(t, DefaultMaxNestingDepth, cfg.MaxNestingDepth)
		assert.Equal(t, DefaultMaxScratchSize, cfg.MaxScratchSize)
	})

	t.Run("keeps valid values", func(t *testing.T) {
		cfg := &Config{MaxNestingDepth: 7, MaxScratchSize: 9}
		require.NoError(t, ValidateConfig(cfg))
		assert.Equal(t, 7, cfg.MaxNestingDepth)
		assert.Equal(t, 9, cfg.MaxScratchSize)
	})
}

func TestConfigPresets(t *testing.T) {
	embedded := EmbeddedConfig()
	assert.Equal(t, 16, embedded.MaxNestingDepth)
	assert.Equal(t, 32, embedded.MaxScratchSize)
	assert.False(t, embedded.AllowNullInString)

	permissive := PermissiveConfig()
	assert.Equal(t, 1024, permissive.MaxNestingDepth)
	assert.True(t, permissive.AllowNullInString)
}

func TestDeserializerCopiesConfig(t *testing.T) {
	cfg := &Config{MaxNestingDepth: 2}
	d := NewDeserializer(cfg)

	// later mutation of the caller's config does not reach the parser
	cfg.MaxNestingDepth = 100
	err := d.Parse(input("[[[1]]]"), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLimitExceeded)
}
