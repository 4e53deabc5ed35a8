package resource

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestController_Memory(t *testing.T) {
	// Test with limit
	c := NewController(Config{MemoryLimitBytes: 100})

	// Acquire 50
	err := c.AcquireMemory(50)
	require.NoError(t, err)
	assert.Equal(t, int64(50), c.MemoryUsage())

	// Acquire 40
	err = c.AcquireMemory(40)
	require.NoError(t, err)
	assert.Equal(t, int64(90), c.MemoryUsage())

	// Acquire 20 (should fail - limit exceeded)
	err = c.AcquireMemory(20)
	assert.ErrorIs(t, err, ErrMemoryLimitExceeded)
	assert.Equal(t, int64(90), c.MemoryUsage())

	// Release 50
	c.ReleaseMemory(50)
	assert.Equal(t, int64(40), c.MemoryUsage())

	// Now Acquire 20 should succeed
	err = c.AcquireMemory(20)
	require.NoError(t, err)
	assert.Equal(t, int64(60), c.MemoryUsage())
}

func TestController_UnlimitedMemory(t *testing.T) {
	c := NewController(Config{MemoryLimitBytes: 0})

	err := c.AcquireMemory(1000)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), c.MemoryUsage())

	c.ReleaseMemory(500)
	assert.Equal(t, int64(500), c.MemoryUsage())
}

func TestController_Concurrency(t *testing.T) {
	c := NewController(Config{MaxWorkers: 2})

	// Acquire 2
	require.NoError(t, c.AcquireWorker(t.Context()))
	require.NoError(t, c.AcquireWorker(t.Context()))

	// Try 3rd
	assert.False(t, c.TryAcquireWorker())

	// Release 1
	c.ReleaseWorker()

	// Try 3rd again
	assert.True(t, c.TryAcquireWorker())
}

func TestController_UncappedWorkers(t *testing.T) {
	c := NewController(Config{MemoryLimitBytes: 1024})

	assert.Equal(t, int64(0), c.MaxWorkers())
	for range 16 {
		assert.True(t, c.TryAcquireWorker())
	}
	require.NoError(t, c.AcquireWorker(t.Context()))
	c.ReleaseWorker()
}

func TestController_WorkerContextCancel(t *testing.T) {
	c := NewController(Config{MaxWorkers: 1})
	require.NoError(t, c.AcquireWorker(t.Context()))

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	err := c.AcquireWorker(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestController_Bytes(t *testing.T) {
	c := NewController(Config{BytesPerSec: 100})

	// Full burst is available immediately.
	assert.True(t, c.TryAcquireBytes(100))
	assert.False(t, c.TryAcquireBytes(50))
}

func TestController_BytesLargerThanBurst(t *testing.T) {
	c := NewController(Config{BytesPerSec: 1000})

	start := time.Now()
	require.NoError(t, c.AcquireBytes(t.Context(), 1500))
	assert.GreaterOrEqual(t, time.Since(start), 400*time.Millisecond)
}

func TestController_BytesCancel(t *testing.T) {
	c := NewController(Config{BytesPerSec: 10})
	require.True(t, c.TryAcquireBytes(10))

	ctx, cancel := context.WithTimeout(t.Context(), 10*time.Millisecond)
	defer cancel()

	assert.Error(t, c.AcquireBytes(ctx, 10))
}

func TestController_UnlimitedBytes(t *testing.T) {
	c := NewController(Config{})

	assert.True(t, c.TryAcquireBytes(1<<30))
	assert.NoError(t, c.AcquireBytes(t.Context(), 1<<30))
}

func TestController_Nil(t *testing.T) {
	var c *Controller

	assert.NoError(t, c.AcquireMemory(10))
	c.ReleaseMemory(10)
	assert.Equal(t, int64(0), c.MemoryUsage())
	assert.Equal(t, int64(0), c.MemoryLimit())
	assert.Equal(t, int64(0), c.MaxWorkers())
	assert.NoError(t, c.AcquireWorker(t.Context()))
	assert.True(t, c.TryAcquireWorker())
	c.ReleaseWorker()
	assert.NoError(t, c.AcquireBytes(t.Context(), 10))
	assert.True(t, c.TryAcquireBytes(10))
}
