// Package resource implements the Controller for limits shared by batch hash jobs.
//
// The Controller provides centralized management of three resource types:
//
//   - Memory: Track and limit output buffer memory (non-blocking, fail-fast)
//   - Concurrency: Limit hashing workers across all batches
//   - Throughput: Rate-limit key bytes hashed per second
//
// # Architecture
//
//	┌─────────────────────────────────────────────────────────────┐
//	│                        Controller                           │
//	├─────────────────┬─────────────────┬─────────────────────────┤
//	│  Memory Limit   │  Workers (sem)  │  Byte Rate Limiter      │
//	│  (fail-fast)    │                 │  (token bucket)         │
//	├─────────────────┼─────────────────┼─────────────────────────┤
//	│  AcquireMemory  │  AcquireWorker  │  AcquireBytes           │
//	│  ReleaseMemory  │  TryAcquire     │  TryAcquireBytes        │
//	│  MemoryUsage    │  ReleaseWorker  │                         │
//	└─────────────────┴─────────────────┴─────────────────────────┘
//
// # Memory Management
//
// Memory tracking uses a weighted semaphore for hard limits and atomic counters
// for usage tracking. AcquireMemory is non-blocking and returns immediately
// with ErrMemoryLimitExceeded if the limit would be exceeded:
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes: 64 << 20,
//	})
//
//	if err := rc.AcquireMemory(int64(4 * n)); err != nil {
//	    // ErrMemoryLimitExceeded - caller decides retry/backoff
//	}
//	defer rc.ReleaseMemory(int64(4 * n))
//
// # Worker Limits
//
//	rc := resource.NewController(resource.Config{
//	    MaxWorkers: 4,
//	})
//
//	if err := rc.AcquireWorker(ctx); err != nil {
//	    return err
//	}
//	defer rc.ReleaseWorker()
//
// # Throughput Limiting
//
// Token bucket limiter on hashed bytes, for background jobs that must not
// starve the rest of the process:
//
//	rc := resource.NewController(resource.Config{
//	    BytesPerSec: 100 << 20, // 100MB/s
//	})
//
//	if err := rc.AcquireBytes(ctx, chunkBytes); err != nil {
//	    return err
//	}
//
// # Thread Safety
//
// All Controller methods are safe for concurrent use.
//
// # Nil Safety
//
// All methods handle nil Controller gracefully - they become no-ops.
// This allows optional resource limiting without nil checks everywhere.
package resource
