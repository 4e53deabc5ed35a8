// Package parallel partitions index ranges into contiguous chunks and runs
// them on a bounded worker pool.
//
// Each chunk covers a disjoint [Start, End) range, so workers writing to
// out[Start:End] never touch the same slot and need no locking.
package parallel

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// DefaultChunkSize is the number of elements per chunk when none is given.
const DefaultChunkSize = 1024

// Chunk is a half-open index range [Start, End).
type Chunk struct {
	Start int
	End   int
}

// Len returns the number of elements in the chunk.
func (c Chunk) Len() int { return c.End - c.Start }

// Chunks splits [0, n) into contiguous chunks of at most size elements.
// The last chunk holds the remainder.
func Chunks(n, size int) []Chunk {
	if n <= 0 {
		return nil
	}
	if size <= 0 {
		size = DefaultChunkSize
	}

	chunks := make([]Chunk, 0, (n+size-1)/size)
	for start := 0; start < n; start += size {
		chunks = append(chunks, Chunk{Start: start, End: min(start+size, n)})
	}
	return chunks
}

// Options configures Run.
type Options struct {
	// Workers caps the number of goroutines. Values <= 1 run inline.
	Workers int

	// ChunkSize is the number of elements per chunk.
	// If 0, DefaultChunkSize is used.
	ChunkSize int
}

// Run calls fn once per chunk of [0, n).
//
// With a single chunk or a single worker, chunks run on the calling
// goroutine. Otherwise they are spread over at most opts.Workers goroutines.
// The context is checked before each chunk; the first error cancels the
// remaining chunks and is returned.
func Run(ctx context.Context, n int, opts Options, fn func(ctx context.Context, c Chunk) error) error {
	chunks := Chunks(n, opts.ChunkSize)
	if len(chunks) == 0 {
		return ctx.Err()
	}

	if opts.Workers <= 1 || len(chunks) == 1 {
		for _, c := range chunks {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := fn(ctx, c); err != nil {
				return err
			}
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(opts.Workers, len(chunks)))

	for _, c := range chunks {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return fn(gctx, c)
		})
	}

	return g.Wait()
}
