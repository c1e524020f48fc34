package scheduler

import (
	"context"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func newTestScheduler() *Scheduler {
	return &Scheduler{
		logger: slog.New(slog.DiscardHandler),
		clock:  systemClock{},
	}
}

func TestScheduler_IntervalJobFires(t *testing.T) {
	s := newTestScheduler()

	var runs atomic.Int64
	s.RegisterInterval("tick", 10*time.Millisecond, func(ctx context.Context) error {
		runs.Add(1)

		return nil
	})

	s.Start()
	defer s.Stop()

	assert.Eventually(t, func() bool {
		return runs.Load() >= 3
	}, 2*time.Second, 5*time.Millisecond)
}

func TestScheduler_SlotSkippedWhileRunning(t *testing.T) {
	s := newTestScheduler()

	var started atomic.Int64
	release := make(chan struct{})
	s.RegisterInterval("slow", 10*time.Millisecond, func(ctx context.Context) error {
		started.Add(1)
		<-release

		return nil
	})

	s.Start()

	// Let several slots fire while the first run blocks.
	assert.Eventually(t, func() bool {
		return started.Load() == 1
	}, time.Second, 5*time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int64(1), started.Load())

	close(release)
	s.Stop()
}

func TestScheduler_RegisterDailyAt_Validation(t *testing.T) {
	s := newTestScheduler()

	require.Error(t, s.RegisterDailyAt("quality", "25:99", "UTC", func(ctx context.Context) error { return nil }))
	require.Error(t, s.RegisterDailyAt("quality", "03:00", "Not/AZone", func(ctx context.Context) error { return nil }))
	require.NoError(t, s.RegisterDailyAt("quality", "03:00", "Asia/Taipei", func(ctx context.Context) error { return nil }))
}

func TestNextDailyRun(t *testing.T) {
	loc := time.UTC

	t.Run("before slot fires same day", func(t *testing.T) {
		now := time.Date(2026, 3, 14, 1, 30, 0, 0, loc)
		next := nextDailyRun(now, 3, 0, loc)
		assert.Equal(t, time.Date(2026, 3, 14, 3, 0, 0, 0, loc), next)
	})

	t.Run("after slot fires next day", func(t *testing.T) {
		now := time.Date(2026, 3, 14, 4, 0, 0, 0, loc)
		next := nextDailyRun(now, 3, 0, loc)
		assert.Equal(t, time.Date(2026, 3, 15, 3, 0, 0, 0, loc), next)
	})

	t.Run("exactly at slot fires next day", func(t *testing.T) {
		now := time.Date(2026, 3, 14, 3, 0, 0, 0, loc)
		next := nextDailyRun(now, 3, 0, loc)
		assert.Equal(t, time.Date(2026, 3, 15, 3, 0, 0, 0, loc), next)
	})
}
