package repository

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"rainbow_workshop/internal/domain/entities"
	"rainbow_workshop/internal/usecase/interfaces"
)

var ErrWorkOrderExists = errors.New("work order id already in use")

type workOrderEntry struct {
	mu      sync.Mutex
	wo      entities.WorkOrder
	deleted bool
}

// WorkOrderMemoryRepository holds open work-order forms for the lifetime of the process.
//
// The map lock only guards membership. Each work order has its own lock, so a slow update
// on one form never blocks another.
type WorkOrderMemoryRepository struct {
	mu      sync.RWMutex
	entries map[string]*workOrderEntry
	seq     int
}

var _ interfaces.IWorkOrderRepository = (*WorkOrderMemoryRepository)(nil)

func NewWorkOrderMemoryRepository() *WorkOrderMemoryRepository {
	return &WorkOrderMemoryRepository{entries: make(map[string]*workOrderEntry)}
}

func (r *WorkOrderMemoryRepository) Create(ctx context.Context, wo entities.WorkOrder) (entities.WorkOrder, error) {
	if err := ctx.Err(); err != nil {
		return entities.WorkOrder{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[wo.ID]; ok {
		return entities.WorkOrder{}, ErrWorkOrderExists
	}
	r.entries[wo.ID] = &workOrderEntry{wo: wo.Clone()}
	return wo.Clone(), nil
}

func (r *WorkOrderMemoryRepository) GetByID(ctx context.Context, id string) (entities.WorkOrder, error) {
	if err := ctx.Err(); err != nil {
		return entities.WorkOrder{}, err
	}
	e := r.entry(id)
	if e == nil {
		return entities.WorkOrder{}, nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.deleted {
		return entities.WorkOrder{}, nil
	}
	return e.wo.Clone(), nil
}

func (r *WorkOrderMemoryRepository) Update(ctx context.Context, id string, fn func(wo *entities.WorkOrder) error) (entities.WorkOrder, error) {
	if err := ctx.Err(); err != nil {
		return entities.WorkOrder{}, err
	}
	e := r.entry(id)
	if e == nil {
		return entities.WorkOrder{}, nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.deleted {
		return entities.WorkOrder{}, nil
	}

	working := e.wo.Clone()
	if err := fn(&working); err != nil {
		return entities.WorkOrder{}, err
	}
	e.wo = working
	return e.wo.Clone(), nil
}

func (r *WorkOrderMemoryRepository) Delete(ctx context.Context, id string) (entities.WorkOrder, error) {
	if err := ctx.Err(); err != nil {
		return entities.WorkOrder{}, err
	}
	r.mu.Lock()
	e, ok := r.entries[id]
	delete(r.entries, id)
	r.mu.Unlock()
	if !ok {
		return entities.WorkOrder{}, nil
	}

	// an Update that already holds the entry finishes first and is then discarded
	e.mu.Lock()
	defer e.mu.Unlock()
	e.deleted = true
	return e.wo.Clone(), nil
}

// ListIdleSince returns the ids of work orders not updated since cutoff, oldest first.
func (r *WorkOrderMemoryRepository) ListIdleSince(ctx context.Context, cutoff time.Time) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	entries := make([]*workOrderEntry, 0, len(r.entries))
	for _, e := range r.entries {
		entries = append(entries, e)
	}
	r.mu.RUnlock()

	type idle struct {
		id        string
		updatedAt time.Time
	}
	var found []idle
	for _, e := range entries {
		e.mu.Lock()
		if !e.deleted && e.wo.UpdatedAt.Before(cutoff) {
			found = append(found, idle{id: e.wo.ID, updatedAt: e.wo.UpdatedAt})
		}
		e.mu.Unlock()
	}
	sort.Slice(found, func(i, j int) bool { return found[i].updatedAt.Before(found[j].updatedAt) })

	ids := make([]string, 0, len(found))
	for _, f := range found {
		ids = append(ids, f.id)
	}
	return ids, nil
}

// NextSequence returns 1, 2, 3, ... for display numbers.
func (r *WorkOrderMemoryRepository) NextSequence(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	return r.seq, nil
}

func (r *WorkOrderMemoryRepository) entry(id string) *workOrderEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.entries[id]
}
