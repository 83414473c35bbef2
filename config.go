package json

// Config controls the resource limits and decoding policy of a
// Deserializer. Construct with DefaultConfig and adjust, or pass nil to
// NewDeserializer. NewDeserializer runs ValidateConfig on its copy, so
// zero or negative limits there are replaced by their defaults.
type Config struct {
	// MaxNestingDepth is the hard ceiling on simultaneously open
	// containers (objects and arrays).
	MaxNestingDepth int

	// MaxScratchSize bounds the byte length of a single number token.
	// Longer tokens fail the session with ErrorOutOfMemory.
	MaxScratchSize int

	// AllowNullInString permits the decoded escape \u0000 inside string
	// values. A literal NUL byte in the input is always fatal
	// (ErrorInlineNullByte) regardless of this setting.
	AllowNullInString bool
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		MaxNestingDepth:   DefaultMaxNestingDepth,
		MaxScratchSize:    DefaultMaxScratchSize,
		AllowNullInString: false,
	}
}

// ValidateConfig validates configuration values and applies corrections
func ValidateConfig(config *Config) error {
	if config == nil {
		return ErrInvalidConfig
	}

	// Apply defaults for invalid values
	if config.MaxNestingDepth <= 0 {
		config.MaxNestingDepth = DefaultMaxNestingDepth
	}
	if config.MaxScratchSize <= 0 {
		config.MaxScratchSize = DefaultMaxScratchSize
	}

	return nil
}

// EmbeddedConfig returns a configuration sized for memory-constrained
// callers: shallow nesting and small number tokens.
func EmbeddedConfig() *Config {
	config := DefaultConfig()
	config.MaxNestingDepth = 16
	config.MaxScratchSize = 32
	return config
}

// PermissiveConfig returns a configuration for deeply nested documents
// and strings that may carry embedded NUL code points.
func PermissiveConfig() *Config {
	config := DefaultConfig()
	config.MaxNestingDepth = 1024
	config.AllowNullInString = true
	return config
}
