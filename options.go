package mmr3

import (
	"runtime"

	"github.com/hupe1980/mmr3/internal/parallel"
	"github.com/hupe1980/mmr3/resource"
)

type batchOptions struct {
	workers          int
	chunkSize        int
	validateUTF8     bool
	logger           *Logger
	metricsCollector MetricsCollector
	controller       *resource.Controller
}

func defaultBatchOptions() batchOptions {
	return batchOptions{
		workers:          runtime.GOMAXPROCS(0),
		chunkSize:        parallel.DefaultChunkSize,
		validateUTF8:     true,
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
}

// BatchOption configures HashBatch and HashBatchSigned.
type BatchOption func(*batchOptions)

// WithWorkers sets the maximum number of goroutines hashing in parallel.
//
// If n <= 0, runtime.GOMAXPROCS(0) is used. n == 1 hashes on the
// calling goroutine.
func WithWorkers(n int) BatchOption {
	return func(o *batchOptions) {
		if n <= 0 {
			n = runtime.GOMAXPROCS(0)
		}
		o.workers = n
	}
}

// WithChunkSize sets the number of consecutive keys handed to a worker at once.
//
// If n <= 0, parallel.DefaultChunkSize is used.
func WithChunkSize(n int) BatchOption {
	return func(o *batchOptions) {
		if n <= 0 {
			n = parallel.DefaultChunkSize
		}
		o.chunkSize = n
	}
}

// WithValidateUTF8 controls whether every key is checked for valid UTF-8
// before hashing. Enabled by default; disable it for keys already known to
// be valid, or to hash arbitrary bytes carried in strings.
func WithValidateUTF8(enabled bool) BatchOption {
	return func(o *batchOptions) {
		o.validateUTF8 = enabled
	}
}

// WithLogger configures the logger. If nil is passed, logging is disabled.
func WithLogger(l *Logger) BatchOption {
	return func(o *batchOptions) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector configures the metrics collector.
// If nil is passed, NoopMetricsCollector is used.
func WithMetricsCollector(mc MetricsCollector) BatchOption {
	return func(o *batchOptions) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithResourceController shares worker slots, an output memory budget and a
// byte throughput limit across batches.
//
// The batch runs at most min(WithWorkers, rc.MaxWorkers()) goroutines. A
// controller built with MaxWorkers 0 does not cap workers.
//
// Example:
//
//	rc := resource.NewController(resource.Config{
//	    MaxWorkers:       8,
//	    MemoryLimitBytes: 256 << 20,
//	})
//	out, err := mmr3.HashBatch(ctx, keys, 0, mmr3.WithResourceController(rc))
func WithResourceController(rc *resource.Controller) BatchOption {
	return func(o *batchOptions) {
		o.controller = rc
	}
}
