package cron

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextDailyRun_BeforeWallClockTime(t *testing.T) {
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

	next := nextDailyRun(now, 11, 11, time.UTC)

	assert.Equal(t, time.Date(2026, 3, 2, 11, 11, 0, 0, time.UTC), next)
}

func TestNextDailyRun_AfterWallClockTime(t *testing.T) {
	now := time.Date(2026, 3, 2, 15, 30, 0, 0, time.UTC)

	next := nextDailyRun(now, 11, 11, time.UTC)

	assert.Equal(t, time.Date(2026, 3, 3, 11, 11, 0, 0, time.UTC), next)
}

func TestNextDailyRun_ExactlyAtWallClockTime(t *testing.T) {
	now := time.Date(2026, 3, 2, 11, 11, 0, 0, time.UTC)

	// A firing never lands on "now" itself; the next one is tomorrow.
	next := nextDailyRun(now, 11, 11, time.UTC)

	assert.Equal(t, time.Date(2026, 3, 3, 11, 11, 0, 0, time.UTC), next)
}

func TestNextDailyRun_RespectsTimezone(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Karachi")
	require.NoError(t, err)

	// 05:00 UTC is 10:00 in Karachi (UTC+5), still before the 11:11 firing.
	now := time.Date(2026, 3, 2, 5, 0, 0, 0, time.UTC)

	next := nextDailyRun(now, 11, 11, loc)

	assert.Equal(t, time.Date(2026, 3, 2, 11, 11, 0, 0, loc), next)
	assert.Equal(t, time.Date(2026, 3, 2, 6, 11, 0, 0, time.UTC), next.UTC())
}

func TestScheduler_AddDailyJob_InvalidTime(t *testing.T) {
	s := NewScheduler()

	err := s.AddDailyJob("bad", "25:99", time.UTC, func(ctx context.Context) error { return nil })

	assert.Error(t, err)
}

func TestScheduler_RunOnce(t *testing.T) {
	s := NewScheduler()

	intervalRuns := 0
	s.AddJob("interval", time.Hour, func(ctx context.Context) error {
		intervalRuns++
		return nil
	})

	dailyRuns := 0
	err := s.AddDailyJob("daily", "11:11", time.UTC, func(ctx context.Context) error {
		dailyRuns++
		return nil
	})
	require.NoError(t, err)

	// A failing job must not stop the others.
	err = s.AddDailyJob("failing", "12:00", time.UTC, func(ctx context.Context) error {
		return errors.New("boom")
	})
	require.NoError(t, err)

	s.RunOnce(context.Background())

	assert.Equal(t, 1, intervalRuns)
	assert.Equal(t, 1, dailyRuns)
}

func TestScheduler_StopCancelsPendingDailyJob(t *testing.T) {
	s := NewScheduler()

	err := s.AddDailyJob("daily", "11:11", time.UTC, func(ctx context.Context) error { return nil })
	require.NoError(t, err)

	s.Start()

	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop")
	}
}
