package foldcore

import (
	"fmt"
	"time"

	"golang.org/x/time/rate"
)

// DefaultChunkSize is the number of elements per chunk in parallel mode.
const DefaultChunkSize = 1024

// Option configures how a fold is evaluated.
type Option func(*config)

type config struct {
	parallelism int
	chunkSize   int
	rateLimiter *rate.Limiter
	chunkHook   func(ChunkStats)
	logger      func(string)
}

// ChunkStats describes one completed chunk of a parallel fold.
type ChunkStats struct {
	Chunk    int // position of the chunk in the input
	Offset   int // index of the chunk's first element
	Size     int
	Duration time.Duration
	Err      error
}

func newConfig(opts []Option) *config {
	cfg := &config{
		parallelism: 1,
		chunkSize:   DefaultChunkSize,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

func (c *config) logf(format string, args ...any) {
	if c.logger != nil {
		c.logger(fmt.Sprintf(format, args...))
	}
}

// WithParallelism sets how many chunks may be folded concurrently.
// A value of 1 (the default) selects a plain sequential left fold.
func WithParallelism(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.parallelism = n
		}
	}
}

// WithChunkSize sets the number of elements folded per chunk in parallel
// mode. Ignored in sequential mode.
func WithChunkSize(size int) Option {
	return func(cfg *config) {
		if size > 0 {
			cfg.chunkSize = size
		}
	}
}

// WithRateLimit throttles chunk dispatch in parallel mode.
// burst specifies how many chunks may start back to back.
//
// Example:
//
//	WithRateLimit(10, 2) // at most 10 chunks/sec, two at once
func WithRateLimit(chunksPerSecond float64, burst int) Option {
	return func(cfg *config) {
		if chunksPerSecond > 0 && burst > 0 {
			cfg.rateLimiter = rate.NewLimiter(rate.Limit(chunksPerSecond), burst)
		}
	}
}

// WithChunkHook registers fn to be called after every chunk of a parallel
// fold finishes. fn may be called from several goroutines at once.
func WithChunkHook(fn func(ChunkStats)) Option {
	return func(cfg *config) {
		cfg.chunkHook = fn
	}
}

// WithLogging adds debug logging of chunk dispatch and merging.
func WithLogging(logger func(string)) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}
