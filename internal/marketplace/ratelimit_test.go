package marketplace

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiterDailyQuota(t *testing.T) {
	t.Parallel()

	r := NewRateLimiter(1000, 1000, 3)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, r.Wait(ctx))
	}
	assert.Equal(t, int64(3), r.DailyCount())
	assert.Zero(t, r.Remaining())

	err := r.Wait(ctx)
	require.ErrorIs(t, err, ErrDailyLimitReached)
}

func TestRateLimiterWindowReset(t *testing.T) {
	t.Parallel()

	now := time.Now()
	r := NewRateLimiter(1000, 1000, 1, WithRateLimiterNowFunc(func() time.Time { return now }))
	ctx := context.Background()

	require.NoError(t, r.Wait(ctx))
	require.ErrorIs(t, r.Wait(ctx), ErrDailyLimitReached)

	now = now.Add(24*time.Hour + time.Minute)
	require.NoError(t, r.Wait(ctx))
	assert.Equal(t, int64(1), r.DailyCount())
}

func TestRateLimiterRemaining(t *testing.T) {
	t.Parallel()

	r := NewRateLimiter(1000, 1000, 5)
	require.NoError(t, r.Wait(context.Background()))
	assert.Equal(t, int64(4), r.Remaining())
	assert.True(t, r.ResetAt().After(time.Now()))
}

func TestRateLimiterCancelledContext(t *testing.T) {
	t.Parallel()

	// zero rate forces Wait to block until the context gives up
	r := NewRateLimiter(0, 0, 10)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := r.Wait(ctx)
	require.Error(t, err)
}
