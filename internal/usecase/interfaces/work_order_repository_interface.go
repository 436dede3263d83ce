package interfaces

import (
	"context"
	"time"

	"rainbow_workshop/internal/domain/entities"
)

// IWorkOrderRepository keeps open work-order forms in memory.
//
// Lookups return a zero-value WorkOrder (empty ID) when the id is unknown, the same way the
// use cases expect from every repository. Returned values are copies.
//
//go:generate mockgen -source=work_order_repository_interface.go -destination=mocks/mock_work_order_repository_interface.go -package=mock_interfaces
type IWorkOrderRepository interface {
	Create(ctx context.Context, wo entities.WorkOrder) (entities.WorkOrder, error)
	GetByID(ctx context.Context, id string) (entities.WorkOrder, error)
	// Update runs fn on the stored work order while holding its lock and saves the result
	// only when fn returns nil.
	Update(ctx context.Context, id string, fn func(wo *entities.WorkOrder) error) (entities.WorkOrder, error)
	Delete(ctx context.Context, id string) (entities.WorkOrder, error)
	ListIdleSince(ctx context.Context, cutoff time.Time) ([]string, error)
	NextSequence(ctx context.Context) (int, error)
}
