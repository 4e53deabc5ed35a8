// Package promcollector exports mmr3 batch metrics to Prometheus.
//
//	reg := prometheus.NewRegistry()
//	mc, err := promcollector.New(reg)
//	if err != nil {
//	    return err
//	}
//	out, err := mmr3.HashBatch(ctx, keys, 0, mmr3.WithMetricsCollector(mc))
package promcollector

import (
	"time"

	"github.com/hupe1980/mmr3"
	"github.com/prometheus/client_golang/prometheus"
)

var _ mmr3.MetricsCollector = (*Collector)(nil)

// Collector implements mmr3.MetricsCollector with Prometheus metrics.
type Collector struct {
	batches      *prometheus.CounterVec
	keys         prometheus.Counter
	bytes        prometheus.Counter
	batchLatency prometheus.Histogram
	chunkLatency prometheus.Histogram
	chunks       prometheus.Counter
}

// Options configures metric names.
type Options struct {
	// Namespace prefixes every metric name. Defaults to "mmr3".
	Namespace string

	// ConstLabels are attached to every metric.
	ConstLabels prometheus.Labels
}

// New creates a Collector and registers its metrics on reg.
// If reg is nil, prometheus.DefaultRegisterer is used.
func New(reg prometheus.Registerer, optFns ...func(*Options)) (*Collector, error) {
	opts := Options{Namespace: "mmr3"}
	for _, fn := range optFns {
		fn(&opts)
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	c := &Collector{
		batches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   opts.Namespace,
			Name:        "batches_total",
			Help:        "Total batch hash operations",
			ConstLabels: opts.ConstLabels,
		}, []string{"status"}),
		keys: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   opts.Namespace,
			Name:        "batch_keys_total",
			Help:        "Total keys submitted to batch hash operations",
			ConstLabels: opts.ConstLabels,
		}),
		bytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   opts.Namespace,
			Name:        "batch_bytes_total",
			Help:        "Total key bytes hashed by batch operations",
			ConstLabels: opts.ConstLabels,
		}),
		batchLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace:   opts.Namespace,
			Name:        "batch_duration_seconds",
			Help:        "Latency of batch hash operations",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: opts.ConstLabels,
		}),
		chunkLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace:   opts.Namespace,
			Name:        "chunk_duration_seconds",
			Help:        "Latency of hashing one chunk of a batch",
			Buckets:     prometheus.ExponentialBuckets(1e-6, 4, 10),
			ConstLabels: opts.ConstLabels,
		}),
		chunks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   opts.Namespace,
			Name:        "chunks_total",
			Help:        "Total chunks hashed",
			ConstLabels: opts.ConstLabels,
		}),
	}

	for _, m := range []prometheus.Collector{c.batches, c.keys, c.bytes, c.batchLatency, c.chunkLatency, c.chunks} {
		if err := reg.Register(m); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// RecordBatch implements mmr3.MetricsCollector.
func (c *Collector) RecordBatch(count int, bytes int64, duration time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	c.batches.WithLabelValues(status).Inc()
	c.keys.Add(float64(count))
	c.bytes.Add(float64(bytes))
	c.batchLatency.Observe(duration.Seconds())
}

// RecordChunk implements mmr3.MetricsCollector.
func (c *Collector) RecordChunk(_ int, duration time.Duration) {
	c.chunks.Inc()
	c.chunkLatency.Observe(duration.Seconds())
}
