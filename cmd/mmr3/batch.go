package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"runtime"
	"strconv"
	"time"

	"github.com/hupe1980/mmr3"
	"github.com/hupe1980/mmr3/codec"
	"github.com/hupe1980/mmr3/internal/conv"
	"github.com/hupe1980/mmr3/promcollector"
	"github.com/hupe1980/mmr3/resource"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// fanout forwards metrics to several collectors.
type fanout []mmr3.MetricsCollector

func (f fanout) RecordBatch(count int, bytes int64, duration time.Duration, err error) {
	for _, c := range f {
		c.RecordBatch(count, bytes, duration, err)
	}
}

func (f fanout) RecordChunk(size int, duration time.Duration) {
	for _, c := range f {
		c.RecordChunk(size, duration)
	}
}

func runBatch(ctx context.Context, e *env, args []string) error {
	fs := newFlagSet("batch", e)
	seed := fs.Uint64("seed", 0, "seed (0 to 4294967295)")
	signed := fs.Bool("signed", false, "print hashes as signed int32")
	workers := fs.Int("workers", 0, "worker goroutines (0 = GOMAXPROCS)")
	chunk := fs.Int("chunk", 0, "keys per chunk (0 = default)")
	rate := fs.Int64("rate", 0, "max key bytes hashed per second (0 = unlimited)")
	maxMem := fs.Int64("max-mem", 0, "max bytes of output buffers (0 = unlimited)")
	noValidate := fs.Bool("no-validate", false, "hash lines without checking UTF-8")
	format := fs.String("format", "text", "output format: text or json")
	codecName := fs.String("codec", codec.Default.Name(), "JSON codec: json or go-json")
	output := fs.String("o", "", "write output to FILE instead of stdout")
	metricsAddr := fs.String("metrics", "", "serve Prometheus metrics on ADDR and wait for interrupt")
	verbose := fs.Bool("v", false, "verbose logging")
	if err := fs.Parse(args); err != nil {
		return err
	}

	s, err := conv.Uint64ToUint32(*seed)
	if err != nil {
		return fmt.Errorf("invalid -seed: %w", err)
	}
	c, ok := codec.ByName(*codecName)
	if !ok {
		return fmt.Errorf("unknown codec %q", *codecName)
	}
	if *format != "text" && *format != "json" {
		return fmt.Errorf("unknown format %q", *format)
	}
	if *workers <= 0 {
		*workers = runtime.GOMAXPROCS(0)
	}

	paths := fs.Args()
	if len(paths) == 0 {
		paths = []string{"-"}
	}
	lines, err := readAllLines(e.fs, paths, e.stdin)
	if err != nil {
		return err
	}

	logger := newLogger(e.stderr, *verbose)
	rc := resource.NewController(resource.Config{
		MaxWorkers:       int64(*workers),
		BytesPerSec:      *rate,
		MemoryLimitBytes: *maxMem,
	})

	basic := &mmr3.BasicMetricsCollector{}
	collectors := fanout{basic}

	var srv *http.Server
	if *metricsAddr != "" {
		reg := prometheus.NewRegistry()
		pc, err := promcollector.New(reg)
		if err != nil {
			return err
		}
		collectors = append(collectors, pc)

		srv = &http.Server{
			Addr:              *metricsAddr,
			Handler:           promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server failed", "error", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	opts := []mmr3.BatchOption{
		mmr3.WithWorkers(*workers),
		mmr3.WithChunkSize(*chunk),
		mmr3.WithValidateUTF8(!*noValidate),
		mmr3.WithLogger(logger),
		mmr3.WithMetricsCollector(collectors),
		mmr3.WithResourceController(rc),
	}

	keys := mmr3.Strings(lines...)
	var values []int64
	if *signed {
		out, err := mmr3.HashBatchSigned(ctx, keys, s, opts...)
		if err != nil {
			return err
		}
		values = widen(out.Data())
	} else {
		out, err := mmr3.HashBatch(ctx, keys, s, opts...)
		if err != nil {
			return err
		}
		values = widen(out.Data())
	}

	err = writeOutput(e, *output, func(w io.Writer) error {
		return writeBatch(w, c, *format, lines, values)
	})
	if err != nil {
		return err
	}

	stats := basic.GetStats()
	logger.Debug("batch summary",
		"keys", stats.BatchKeys,
		"bytes", stats.BatchBytes,
		"chunks", stats.ChunkCount,
		"duration", time.Duration(stats.BatchAvgNanos),
	)

	if srv != nil {
		logger.Info("serving metrics until interrupted", "addr", *metricsAddr)
		<-ctx.Done()
	}
	return nil
}

func widen[T uint32 | int32](data []T) []int64 {
	out := make([]int64, len(data))
	for i, v := range data {
		out[i] = int64(v)
	}
	return out
}

func writeBatch(dst io.Writer, c codec.Codec, format string, keys []string, values []int64) error {
	w := bufio.NewWriter(dst)
	if format == "json" {
		records := make([]batchRecord, len(keys))
		for i := range keys {
			records[i] = batchRecord{Key: keys[i], Hash: values[i]}
		}
		b, err := c.Marshal(records)
		if err != nil {
			return err
		}
		_, _ = w.Write(b)
		_ = w.WriteByte('\n')
		return w.Flush()
	}

	var buf []byte
	for i := range keys {
		buf = strconv.AppendInt(buf[:0], values[i], 10)
		buf = append(buf, '\t')
		buf = append(buf, keys[i]...)
		buf = append(buf, '\n')
		_, _ = w.Write(buf)
	}
	return w.Flush()
}

type batchRecord struct {
	Key  string `json:"key"`
	Hash int64  `json:"hash"`
}
