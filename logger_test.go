package mmr3

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// safeBuffer is a bytes.Buffer safe for concurrent handler writes.
type safeBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *safeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *safeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newTestHandler(buf *safeBuffer) slog.Handler {
	return slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})
}

func TestLogger(t *testing.T) {
	t.Run("LogBatch success", func(t *testing.T) {
		var buf safeBuffer
		l := NewLogger(newTestHandler(&buf))

		l.WithCount(3).LogBatch(context.Background(), 3, 12, 2, nil)

		out := buf.String()
		assert.Contains(t, out, "level=DEBUG")
		assert.Contains(t, out, "batch hash completed")
		assert.Contains(t, out, "bytes=12")
		assert.Contains(t, out, "workers=2")
	})

	t.Run("LogBatch failure", func(t *testing.T) {
		var buf safeBuffer
		l := NewLogger(newTestHandler(&buf))

		l.LogBatch(context.Background(), 3, 0, 1, errors.New("boom"))

		out := buf.String()
		assert.Contains(t, out, "level=ERROR")
		assert.Contains(t, out, "error=boom")
	})

	t.Run("WithSeed", func(t *testing.T) {
		var buf safeBuffer
		l := NewLogger(newTestHandler(&buf)).WithSeed(42)

		l.Info("x")

		assert.Contains(t, buf.String(), "seed=42")
	})

	t.Run("constructors", func(t *testing.T) {
		assert.NotNil(t, NewLogger(nil))
		assert.NotNil(t, NewJSONLogger(slog.LevelInfo))
		assert.NotNil(t, NewTextLogger(slog.LevelDebug))
		assert.False(t, NoopLogger().Enabled(context.Background(), slog.LevelError))
	})
}
