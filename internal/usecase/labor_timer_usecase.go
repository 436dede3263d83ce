package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"rainbow_workshop/internal/domain/entities"
	"rainbow_workshop/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var errTimerStopped = errors.New("labor timer stopped")

// ILaborTimerUseCase drives the labor timer of each open work order.
//
// A running timer owns exactly one sampler task; Stop, Release and Close cancel it before
// returning.
type ILaborTimerUseCase interface {
	Start(ctx context.Context, workOrderID string) (entities.WorkOrder, error)
	Stop(ctx context.Context, workOrderID string) (entities.WorkOrder, error)
	Toggle(ctx context.Context, workOrderID string) (entities.WorkOrder, error)
	Release(workOrderID string)
	Running() int
	Close()
}

type LaborTimerUseCase struct {
	repo      interfaces.IWorkOrderRepository
	scheduler interfaces.IScheduler
	clock     interfaces.IClock
	publisher interfaces.ILaborEventPublisher
	logger    *zap.Logger
	rate      float64
	interval  time.Duration

	// mu serializes timer transitions with the sampler registry. The sampler itself never
	// takes it, so cancelling a task while holding mu cannot deadlock.
	mu     sync.Mutex
	tasks  map[string]interfaces.ITask
	ctx    context.Context
	cancel context.CancelFunc
}

var _ ILaborTimerUseCase = (*LaborTimerUseCase)(nil)

func NewLaborTimerUseCase(
	repo interfaces.IWorkOrderRepository,
	scheduler interfaces.IScheduler,
	clock interfaces.IClock,
	publisher interfaces.ILaborEventPublisher,
	logger *zap.Logger,
	rate float64,
	interval time.Duration,
) *LaborTimerUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	if rate <= 0 {
		rate = entities.DefaultLaborRate
	}
	if interval <= 0 {
		interval = time.Second
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &LaborTimerUseCase{
		repo:      repo,
		scheduler: scheduler,
		clock:     clock,
		publisher: publisher,
		logger:    logger,
		rate:      rate,
		interval:  interval,
		tasks:     make(map[string]interfaces.ITask),
		ctx:       ctx,
		cancel:    cancel,
	}
}

func (u *LaborTimerUseCase) Start(ctx context.Context, workOrderID string) (entities.WorkOrder, error) {
	return u.transition(ctx, workOrderID, func(s *entities.LaborSession, now time.Time) { s.Start(now) })
}

func (u *LaborTimerUseCase) Stop(ctx context.Context, workOrderID string) (entities.WorkOrder, error) {
	return u.transition(ctx, workOrderID, func(s *entities.LaborSession, _ time.Time) { s.Stop() })
}

func (u *LaborTimerUseCase) Toggle(ctx context.Context, workOrderID string) (entities.WorkOrder, error) {
	return u.transition(ctx, workOrderID, func(s *entities.LaborSession, now time.Time) { s.Toggle(now) })
}

func (u *LaborTimerUseCase) transition(ctx context.Context, workOrderID string, apply func(s *entities.LaborSession, now time.Time)) (entities.WorkOrder, error) {
	workOrderID = strings.TrimSpace(workOrderID)
	if workOrderID == "" {
		return entities.WorkOrder{}, ErrInvalidWorkOrderID
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	now := u.clock.Now()
	var wasRunning bool
	updated, err := u.repo.Update(ctx, workOrderID, func(wo *entities.WorkOrder) error {
		wasRunning = wo.Labor.Running
		apply(&wo.Labor, now)
		wo.UpdatedAt = now
		return nil
	})
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if updated.ID == "" {
		return entities.WorkOrder{}, ErrWorkOrderNotFound
	}

	switch {
	case !wasRunning && updated.Labor.Running:
		u.startSamplerLocked(workOrderID)
		u.logger.Info("labor timer started", zap.String("work_order_id", workOrderID))
	case wasRunning && !updated.Labor.Running:
		u.cancelSamplerLocked(workOrderID)
		u.logger.Info("labor timer stopped",
			zap.String("work_order_id", workOrderID),
			zap.Float64("elapsed_hours", updated.Labor.ElapsedHours),
		)
	}

	u.publisher.PublishLaborSample(entities.NewLaborSample(updated, u.rate, now))
	return updated, nil
}

// Release cancels the sampler of a work order that is going away and closes its event streams.
func (u *LaborTimerUseCase) Release(workOrderID string) {
	u.mu.Lock()
	u.cancelSamplerLocked(workOrderID)
	u.mu.Unlock()
	u.publisher.CloseWorkOrder(workOrderID)
}

// Running reports how many samplers are active.
func (u *LaborTimerUseCase) Running() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.tasks)
}

// Close cancels every sampler. Timers started afterwards never sample.
func (u *LaborTimerUseCase) Close() {
	u.cancel()
	u.mu.Lock()
	defer u.mu.Unlock()
	for id := range u.tasks {
		u.cancelSamplerLocked(id)
	}
	u.logger.Info("labor timers closed")
}

func (u *LaborTimerUseCase) startSamplerLocked(workOrderID string) {
	// a leftover task would sample the same session twice
	u.cancelSamplerLocked(workOrderID)
	u.tasks[workOrderID] = u.scheduler.Every(u.ctx, u.interval, func(now time.Time) {
		u.sample(workOrderID, now)
	})
}

func (u *LaborTimerUseCase) cancelSamplerLocked(workOrderID string) {
	task, ok := u.tasks[workOrderID]
	if !ok {
		return
	}
	delete(u.tasks, workOrderID)
	task.Cancel()
}

func (u *LaborTimerUseCase) sample(workOrderID string, now time.Time) {
	updated, err := u.repo.Update(u.ctx, workOrderID, func(wo *entities.WorkOrder) error {
		if !wo.Labor.Sample(now) {
			return errTimerStopped
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, errTimerStopped) && !errors.Is(err, context.Canceled) {
			u.logger.Warn("labor sample failed", zap.String("work_order_id", workOrderID), zap.Error(err))
		}
		return
	}
	if updated.ID == "" {
		return
	}
	u.publisher.PublishLaborSample(entities.NewLaborSample(updated, u.rate, now))
}
