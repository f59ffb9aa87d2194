package foldcore

import (
	"context"
	"iter"
	"runtime"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"
)

// foldParallel pulls chunks of cfg.chunkSize elements from seq and folds
// each one on an errgroup goroutine. At most cfg.parallelism chunks are in
// flight; errgroup.Go blocks the producer until a slot frees up, so seq is
// consumed no faster than the workers keep up.
func foldParallel[T, A any](ctx context.Context, seq iter.Seq[T], r Reducer[T, A], cfg *config) (A, error) {
	var zero A

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.parallelism)

	// Each chunk writes only to its own slot, so appending to parts while
	// workers run is safe.
	var parts []*A

	dispatch := func(chunk []T, index, offset int) {
		slot := new(A)
		parts = append(parts, slot)
		cfg.logf("foldcore: dispatch chunk %d (offset %d, %d elements)", index, offset, len(chunk))

		g.Go(func() (err error) {
			start := time.Now()
			defer func() {
				if rec := recover(); rec != nil {
					buf := make([]byte, 4096)
					n := runtime.Stack(buf, false)
					err = &PanicError{Value: rec, Stack: buf[:n]}
				}
				if cfg.chunkHook != nil {
					cfg.chunkHook(ChunkStats{
						Chunk:    index,
						Offset:   offset,
						Size:     len(chunk),
						Duration: time.Since(start),
						Err:      err,
					})
				}
			}()

			acc, err := foldSequential(gctx, slices.Values(chunk), r, offset)
			if err != nil {
				return err
			}
			*slot = acc
			return nil
		})
	}

	admit := func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		if cfg.rateLimiter != nil {
			return cfg.rateLimiter.Wait(gctx)
		}
		return nil
	}

	var dispatchErr error
	index, offset := 0, 0
	chunk := make([]T, 0, cfg.chunkSize)
	for x := range seq {
		chunk = append(chunk, x)
		if len(chunk) < cfg.chunkSize {
			continue
		}
		if dispatchErr = admit(); dispatchErr != nil {
			break
		}
		dispatch(chunk, index, offset)
		index++
		offset += len(chunk)
		chunk = make([]T, 0, cfg.chunkSize)
	}
	if dispatchErr == nil && len(chunk) > 0 {
		if dispatchErr = admit(); dispatchErr == nil {
			dispatch(chunk, index, offset)
		}
	}

	// A failing chunk cancels gctx, which also trips admit; g.Wait reports
	// the chunk's error rather than the cancellation.
	if err := g.Wait(); err != nil {
		return zero, err
	}
	if dispatchErr != nil {
		return zero, dispatchErr
	}

	if len(parts) == 0 {
		return r.Identity(), nil
	}
	partials := make([]A, len(parts))
	for i, p := range parts {
		partials[i] = *p
	}
	cfg.logf("foldcore: merging %d partial results", len(partials))
	return mergePairwise(partials, r.Merge), nil
}

// mergePairwise merges neighbouring partials level by level until one
// remains. Order is preserved: partials[i] is always the left operand of
// partials[i+1].
func mergePairwise[A any](partials []A, merge MergeFunc[A]) A {
	for len(partials) > 1 {
		next := make([]A, 0, (len(partials)+1)/2)
		for i := 0; i < len(partials); i += 2 {
			if i+1 == len(partials) {
				next = append(next, partials[i])
				break
			}
			next = append(next, merge(partials[i], partials[i+1]))
		}
		partials = next
	}
	return partials[0]
}
