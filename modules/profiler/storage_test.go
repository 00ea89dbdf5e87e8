package profiler_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/profiler/modules/profiler"
)

func TestMemoryStorage(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	s := profiler.NewMemoryStorage(profiler.WithStorageClock(clock))

	first, err := s.CreateRequest(ctx, "John", 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, now, first.CreatedAt)

	_, err = s.CreateRequest(ctx, "Acme", 20)
	require.NoError(t, err)

	now = now.Add(-time.Hour)
	_, err = s.CreateRequest(ctx, "Older", 30)
	require.NoError(t, err)

	history, err := s.History(ctx, 10)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, "Acme", history[0].TargetName, "same timestamp: higher id first")
	assert.Equal(t, "John", history[1].TargetName)
	assert.Equal(t, "Older", history[2].TargetName)

	limited, err := s.History(ctx, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, int64(2), limited[0].ID)

	limited[0].TargetName = "changed"
	again, err := s.History(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Acme", again[0].TargetName)
}

func TestMemoryStorageEmpty(t *testing.T) {
	t.Parallel()

	history, err := profiler.NewMemoryStorage().History(context.Background(), 5)
	require.NoError(t, err)
	assert.NotNil(t, history)
	assert.Empty(t, history)
}

func TestMemoryStorageCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := profiler.NewMemoryStorage().CreateRequest(ctx, "John", 1)
	assert.ErrorIs(t, err, context.Canceled)
}
