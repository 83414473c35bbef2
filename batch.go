package json

import (
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"golang.org/x/sync/errgroup"
)

// =============================================================================
// PARALLEL BATCH OPERATIONS
// =============================================================================

// BatchOptions holds configuration for batch operations
type BatchOptions struct {
	// Config applies to every parser in the batch. Nil selects
	// DefaultConfig.
	Config *Config

	// Workers is the pool size, capped at MaxBatchWorkers. Values <= 0
	// select one worker per CPU, with a minimum of two.
	Workers int

	// Logger, when set, records each rejected document.
	Logger *slog.Logger
}

// BatchResult reports the outcome for one document of a batch.
type BatchResult struct {
	Index int
	Err   error
}

// ParseBatch parses every document on a shared worker pool. Each
// document gets its own Deserializer; handlers, when needed, come from
// the factory so no handler set is shared across goroutines. A nil
// factory validates only.
//
// The returned slice has one entry per document, in input order.
func ParseBatch(docs [][]byte, handlers func(index int) *Handlers, opts *BatchOptions) ([]BatchResult, error) {
	var cfg *Config
	var logger *slog.Logger
	workers := 0
	if opts != nil {
		cfg = opts.Config
		logger = opts.Logger
		workers = opts.Workers
	}

	pool, err := ants.NewPool(batchWorkerCount(workers))
	if err != nil {
		return nil, err
	}
	defer pool.Release()

	results := make([]BatchResult, len(docs))
	var wg sync.WaitGroup
	for i := range docs {
		i := i
		results[i].Index = i
		wg.Add(1)
		task := func() {
			defer wg.Done()
			d := NewDeserializer(cfg)
			var h *Handlers
			if handlers != nil {
				h = handlers(i)
			}
			if err := d.Parse(docs[i], h); err != nil {
				results[i].Err = err
				if logger != nil {
					logger.Warn("document rejected", "index", i, "error", err)
				}
			}
		}
		if err := pool.Submit(task); err != nil {
			// pool saturated or released: run on the caller
			task()
		}
	}
	wg.Wait()
	return results, nil
}

// ValidateAll validates every document concurrently and returns the
// first failure, annotated with its document index, or nil.
func ValidateAll(docs [][]byte, cfg *Config) error {
	var g errgroup.Group
	g.SetLimit(batchWorkerCount(0))
	for i := range docs {
		i := i
		g.Go(func() error {
			d := NewDeserializer(cfg)
			if err := d.Parse(docs[i], nil); err != nil {
				return fmt.Errorf("document %d: %w", i, err)
			}
			return nil
		})
	}
	return g.Wait()
}

func batchWorkerCount(n int) int {
	if n > 0 {
		if n > MaxBatchWorkers {
			return MaxBatchWorkers
		}
		return n
	}
	workers := runtime.NumCPU()
	if workers < 2 {
		workers = 2
	}
	if workers > MaxBatchWorkers {
		workers = MaxBatchWorkers
	}
	return workers
}
