package mmr3

import (
	"context"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"github.com/hupe1980/mmr3/internal/murmur"
	"github.com/hupe1980/mmr3/internal/parallel"
	"github.com/hupe1980/mmr3/resource"
)

// HashBatch computes Hash32 of every key with the same seed.
//
// The result has the same shape as keys and out.Data()[i] is the hash of
// keys.Data()[i]. Keys are split into contiguous chunks hashed by a bounded
// pool of goroutines; each chunk writes its own slice of the output.
//
// The context is checked between chunks. When UTF-8 validation is enabled
// (the default) an invalid key fails the batch with *ErrInvalidKey; with
// several workers the reported index is the first one found, not
// necessarily the lowest.
func HashBatch(ctx context.Context, keys *Array[string], seed uint32, opts ...BatchOption) (*Array[uint32], error) {
	data, err := hashBatch[uint32](ctx, keys, seed, opts)
	if err != nil {
		return nil, err
	}
	return &Array[uint32]{shape: keys.Shape(), data: data}, nil
}

// HashBatchSigned is HashBatch with every hash reinterpreted as int32.
func HashBatchSigned(ctx context.Context, keys *Array[string], seed uint32, opts ...BatchOption) (*Array[int32], error) {
	data, err := hashBatch[int32](ctx, keys, seed, opts)
	if err != nil {
		return nil, err
	}
	return &Array[int32]{shape: keys.Shape(), data: data}, nil
}

func hashBatch[T uint32 | int32](ctx context.Context, keys *Array[string], seed uint32, opts []BatchOption) ([]T, error) {
	o := defaultBatchOptions()
	for _, fn := range opts {
		fn(&o)
	}

	if keys == nil {
		return nil, ErrNilArray
	}
	if err := checkShape(keys.shape, len(keys.data)); err != nil {
		return nil, err
	}

	var (
		start = time.Now()
		n     = keys.Len()
		rc    = o.controller
		total atomic.Int64
	)

	workers := o.workers
	if limit := rc.MaxWorkers(); limit > 0 && int64(workers) > limit {
		workers = int(limit)
	}

	finish := func(err error) error {
		o.metricsCollector.RecordBatch(n, total.Load(), time.Since(start), err)
		o.logger.WithSeed(seed).LogBatch(ctx, n, total.Load(), workers, err)
		return err
	}

	// Four bytes per output element, reserved for the duration of the batch.
	outBytes := int64(n) * 4
	if err := rc.AcquireMemory(outBytes); err != nil {
		return nil, finish(err)
	}
	defer rc.ReleaseMemory(outBytes)

	src := keys.Data()
	out := make([]T, n)

	err := parallel.Run(ctx, n, parallel.Options{Workers: workers, ChunkSize: o.chunkSize}, func(ctx context.Context, c parallel.Chunk) error {
		return hashChunk(ctx, rc, &o, src[c.Start:c.End], out[c.Start:c.End], c.Start, seed, &total)
	})
	if err != nil {
		return nil, finish(err)
	}

	return out, finish(nil)
}

func hashChunk[T uint32 | int32](ctx context.Context, rc *resource.Controller, o *batchOptions, keys []string, dst []T, offset int, seed uint32, total *atomic.Int64) error {
	if err := rc.AcquireWorker(ctx); err != nil {
		return err
	}
	defer rc.ReleaseWorker()

	start := time.Now()

	nb := 0
	for _, k := range keys {
		nb += len(k)
	}
	if err := rc.AcquireBytes(ctx, nb); err != nil {
		return err
	}

	for i, k := range keys {
		if o.validateUTF8 && !utf8.ValidString(k) {
			return &ErrInvalidKey{Index: offset + i, cause: ErrInvalidUTF8}
		}
		dst[i] = T(murmur.Sum32(k, seed))
	}

	total.Add(int64(nb))
	o.metricsCollector.RecordChunk(len(keys), time.Since(start))
	return nil
}
