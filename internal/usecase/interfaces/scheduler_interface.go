package interfaces

import (
	"context"
	"time"
)

// IClock abstracts the wall clock.
//
//go:generate mockgen -source=scheduler_interface.go -destination=mocks/mock_scheduler_interface.go -package=mock_interfaces
type IClock interface {
	Now() time.Time
}

// ITask is a periodic callback that can be cancelled.
//
// Cancel returns only once the callback can no longer run.
type ITask interface {
	Cancel()
}

// IScheduler starts periodic callbacks.
type IScheduler interface {
	Every(ctx context.Context, interval time.Duration, fn func(now time.Time)) ITask
}
