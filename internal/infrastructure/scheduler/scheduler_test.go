package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

func TestTickerScheduler_Every(t *testing.T) {
	t.Run("ticks until cancelled", func(t *testing.T) {
		at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		s := NewTickerScheduler(fixedClock{t: at})

		var calls atomic.Int32
		got := make(chan time.Time, 16)
		task := s.Every(context.Background(), 5*time.Millisecond, func(now time.Time) {
			calls.Add(1)
			select {
			case got <- now:
			default:
			}
		})

		select {
		case now := <-got:
			if !now.Equal(at) {
				t.Fatalf("expected clock time %v, got %v", at, now)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("expected at least one tick")
		}

		task.Cancel()
		after := calls.Load()
		time.Sleep(30 * time.Millisecond)
		if calls.Load() != after {
			t.Fatalf("callback ran after Cancel returned")
		}

		// second cancel must not block or panic
		task.Cancel()
	})

	t.Run("parent cancellation stops the task", func(t *testing.T) {
		s := NewTickerScheduler(nil)
		ctx, cancel := context.WithCancel(context.Background())

		var calls atomic.Int32
		task := s.Every(ctx, time.Millisecond, func(time.Time) { calls.Add(1) })
		cancel()

		done := make(chan struct{})
		go func() {
			task.Cancel()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatalf("Cancel blocked after parent was cancelled")
		}

		after := calls.Load()
		time.Sleep(10 * time.Millisecond)
		if calls.Load() != after {
			t.Fatalf("callback ran after parent cancellation")
		}
	})
}

func TestSystemClock(t *testing.T) {
	before := time.Now()
	now := SystemClock{}.Now()
	if now.Before(before) {
		t.Fatalf("system clock went backwards")
	}
}
