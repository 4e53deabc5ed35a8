package mmr3

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus
// (see package promcollector).
type MetricsCollector interface {
	// RecordBatch is called after each batch hash operation.
	// count is the number of keys, bytes their total length,
	// err is nil if successful.
	RecordBatch(count int, bytes int64, duration time.Duration, err error)

	// RecordChunk is called after each chunk of a batch is hashed.
	RecordChunk(size int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordBatch(int, int64, time.Duration, error) {}
func (NoopMetricsCollector) RecordChunk(int, time.Duration)               {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	BatchCount      atomic.Int64
	BatchErrors     atomic.Int64
	BatchKeys       atomic.Int64
	BatchBytes      atomic.Int64
	BatchTotalNanos atomic.Int64
	ChunkCount      atomic.Int64
	ChunkTotalNanos atomic.Int64
}

// RecordBatch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatch(count int, bytes int64, duration time.Duration, err error) {
	b.BatchCount.Add(1)
	b.BatchKeys.Add(int64(count))
	b.BatchBytes.Add(bytes)
	b.BatchTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.BatchErrors.Add(1)
	}
}

// RecordChunk implements MetricsCollector.
func (b *BasicMetricsCollector) RecordChunk(size int, duration time.Duration) {
	b.ChunkCount.Add(1)
	b.ChunkTotalNanos.Add(duration.Nanoseconds())
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		BatchCount:    b.BatchCount.Load(),
		BatchErrors:   b.BatchErrors.Load(),
		BatchKeys:     b.BatchKeys.Load(),
		BatchBytes:    b.BatchBytes.Load(),
		BatchAvgNanos: avg(b.BatchTotalNanos.Load(), b.BatchCount.Load()),
		ChunkCount:    b.ChunkCount.Load(),
		ChunkAvgNanos: avg(b.ChunkTotalNanos.Load(), b.ChunkCount.Load()),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	BatchCount    int64
	BatchErrors   int64
	BatchKeys     int64
	BatchBytes    int64
	BatchAvgNanos int64
	ChunkCount    int64
	ChunkAvgNanos int64
}
