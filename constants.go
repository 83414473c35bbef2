package json

// Default configuration values
const (
	// DefaultMaxNestingDepth is the default limit on open containers.
	// Exceeding it fails the session with ErrorNestingTooDeep.
	DefaultMaxNestingDepth = 128

	// DefaultMaxScratchSize bounds the bytes a single number token may
	// occupy before conversion is refused with ErrorOutOfMemory.
	DefaultMaxScratchSize = 4096

	// DefaultStreamBufferSize is the Decoder's internal buffer size.
	DefaultStreamBufferSize = 4096
)

// Batch processing limits
const (
	// MaxBatchWorkers caps the worker pool size for batch operations
	MaxBatchWorkers = 16
)
