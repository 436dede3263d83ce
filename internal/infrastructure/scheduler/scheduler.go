package scheduler

import (
	"context"
	"sync"
	"time"

	"rainbow_workshop/internal/usecase/interfaces"
)

// SystemClock reads the wall clock.
type SystemClock struct{}

var _ interfaces.IClock = SystemClock{}

func (SystemClock) Now() time.Time { return time.Now() }

// TickerScheduler runs callbacks on a time.Ticker, one goroutine per task.
type TickerScheduler struct {
	clock interfaces.IClock
}

var _ interfaces.IScheduler = (*TickerScheduler)(nil)

func NewTickerScheduler(clock interfaces.IClock) *TickerScheduler {
	if clock == nil {
		clock = SystemClock{}
	}
	return &TickerScheduler{clock: clock}
}

// Every calls fn with the current time once per interval until the task is cancelled or
// parent is done. The first call happens one interval after Every returns.
//
// Cancel on the returned task is safe to call more than once but must not be called from
// fn itself, since it waits for fn to return.
func (s *TickerScheduler) Every(parent context.Context, interval time.Duration, fn func(now time.Time)) interfaces.ITask {
	ctx, cancel := context.WithCancel(parent)
	t := &tickerTask{cancel: cancel, done: make(chan struct{})}

	go func() {
		defer close(t.done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				// cancellation wins over a tick that raced with it
				if ctx.Err() != nil {
					return
				}
				fn(s.clock.Now())
			}
		}
	}()

	return t
}

type tickerTask struct {
	once   sync.Once
	cancel context.CancelFunc
	done   chan struct{}
}

func (t *tickerTask) Cancel() {
	t.once.Do(t.cancel)
	<-t.done
}
