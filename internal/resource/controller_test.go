package resource

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestController_IDs(t *testing.T) {
	c := NewController(Config{MaxIDs: 100})

	require.NoError(t, c.AcquireIDs(50))
	assert.Equal(t, int64(50), c.LiveIDs())

	require.NoError(t, c.AcquireIDs(40))
	assert.Equal(t, int64(90), c.LiveIDs())

	// Acquire 20 (should fail - budget exceeded)
	err := c.AcquireIDs(20)
	assert.ErrorIs(t, err, ErrBudgetExceeded)
	assert.Equal(t, int64(90), c.LiveIDs())

	c.ReleaseIDs(50)
	assert.Equal(t, int64(40), c.LiveIDs())

	require.NoError(t, c.AcquireIDs(20))
	assert.Equal(t, int64(60), c.LiveIDs())
	assert.Equal(t, int64(100), c.MaxIDs())
}

func TestController_UnlimitedIDs(t *testing.T) {
	c := NewController(Config{})

	require.NoError(t, c.AcquireIDs(1<<40))
	assert.Equal(t, int64(1<<40), c.LiveIDs())
	assert.Equal(t, int64(0), c.MaxIDs())

	// Non-positive requests are ignored.
	require.NoError(t, c.AcquireIDs(0))
	require.NoError(t, c.AcquireIDs(-5))
	c.ReleaseIDs(-5)
	assert.Equal(t, int64(1<<40), c.LiveIDs())
}

func TestController_Workers(t *testing.T) {
	c := NewController(Config{MaxWorkers: 1})
	assert.Equal(t, 1, c.MaxWorkers())

	ctx := context.Background()
	require.NoError(t, c.AcquireWorker(ctx))
	assert.False(t, c.TryAcquireWorker())

	ctx2, cancel := context.WithTimeout(ctx, 10*time.Millisecond)
	defer cancel()
	err := c.AcquireWorker(ctx2)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	c.ReleaseWorker()
	assert.True(t, c.TryAcquireWorker())
	c.ReleaseWorker()
}

func TestController_Nil(t *testing.T) {
	var c *Controller

	require.NoError(t, c.AcquireIDs(10))
	c.ReleaseIDs(10)
	assert.Equal(t, int64(0), c.LiveIDs())
	assert.Equal(t, int64(0), c.MaxIDs())
	assert.Positive(t, c.MaxWorkers())
	require.NoError(t, c.AcquireWorker(context.Background()))
	assert.True(t, c.TryAcquireWorker())
	c.ReleaseWorker()
}
