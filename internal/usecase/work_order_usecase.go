package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"rainbow_workshop/internal/domain/entities"
	"rainbow_workshop/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrWorkOrderNotFound    = errors.New("work order not found")
	ErrInvalidWorkOrderID   = errors.New("invalid work order id")
	ErrInvalidRating        = errors.New("invalid rating")
	ErrInvalidAttachment    = errors.New("invalid attachment")
	ErrInvalidPartID        = errors.New("invalid part id")
	ErrInvalidFieldValue    = entities.ErrInvalidFieldValue
	ErrActionNotImplemented = errors.New("action not implemented")
)

// Action is one of the form buttons that has no behaviour yet.
type Action string

const (
	ActionSave              Action = "save"
	ActionGenerateInvoice   Action = "generate_invoice"
	ActionGenerateDocument  Action = "generate_document"
	ActionUploadPhotos      Action = "upload_photos"
	ActionCompleteChecklist Action = "complete_checklist"
)

// IWorkOrderUseCase exposes the operations of an open work-order form.
//
// Every mutation returns the full updated work order so callers can re-render it. Parts
// operations never fail for unknown part ids or absent lines; they leave the work order as is.
type IWorkOrderUseCase interface {
	Create(ctx context.Context) (entities.WorkOrder, error)
	GetByID(ctx context.Context, id string) (entities.WorkOrder, error)
	Discard(ctx context.Context, id string) error

	UpdateBasicInfo(ctx context.Context, id string, info entities.BasicInfo) (entities.WorkOrder, error)
	UpdateCustomer(ctx context.Context, id string, info entities.CustomerInfo) (entities.WorkOrder, error)
	UpdateMachine(ctx context.Context, id string, info entities.MachineInfo) (entities.WorkOrder, error)
	UpdateService(ctx context.Context, id string, info entities.ServiceInfo) (entities.WorkOrder, error)
	UpdateBilling(ctx context.Context, id string, info entities.BillingInfo) (entities.WorkOrder, error)

	AddPart(ctx context.Context, id string, partID int) (entities.WorkOrder, error)
	QuickAddPart(ctx context.Context, id string) (entities.WorkOrder, error)
	UpdatePartQuantity(ctx context.Context, id string, partID, quantity int) (entities.WorkOrder, error)
	RemovePart(ctx context.Context, id string, partID int) (entities.WorkOrder, error)

	StartTimer(ctx context.Context, id string) (entities.WorkOrder, error)
	StopTimer(ctx context.Context, id string) (entities.WorkOrder, error)
	ToggleTimer(ctx context.Context, id string) (entities.WorkOrder, error)

	SetRating(ctx context.Context, id string, rating int) (entities.WorkOrder, error)
	SetAttachment(ctx context.Context, id string, kind entities.AttachmentKind, checked bool, serial string) (entities.WorkOrder, error)

	Invoice(ctx context.Context, id string) (entities.Invoice, error)
	Summary(ctx context.Context, id string) (entities.Summary, error)
	Catalog() []entities.Part
	LaborRate() float64
	RunAction(ctx context.Context, id string, action Action) error

	ReapIdle(ctx context.Context, ttl time.Duration) (int, error)
	Close()
}

type WorkOrderUseCase struct {
	repo   interfaces.IWorkOrderRepository
	timer  ILaborTimerUseCase
	clock  interfaces.IClock
	logger *zap.Logger
	rate   float64
}

var _ IWorkOrderUseCase = (*WorkOrderUseCase)(nil)

func NewWorkOrderUseCase(repo interfaces.IWorkOrderRepository, timer ILaborTimerUseCase, clock interfaces.IClock, logger *zap.Logger, rate float64) *WorkOrderUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	if rate <= 0 {
		rate = entities.DefaultLaborRate
	}
	return &WorkOrderUseCase{repo: repo, timer: timer, clock: clock, logger: logger, rate: rate}
}

func (u *WorkOrderUseCase) Create(ctx context.Context) (entities.WorkOrder, error) {
	seq, err := u.repo.NextSequence(ctx)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	now := u.clock.Now().UTC()
	wo := entities.NewWorkOrder(uuid.NewString(), entities.FormatNumber(now.Year(), seq), now)

	created, err := u.repo.Create(ctx, wo)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	u.logger.Info("work order opened", zap.String("work_order_id", created.ID), zap.String("number", created.Number))
	return created, nil
}

func (u *WorkOrderUseCase) GetByID(ctx context.Context, id string) (entities.WorkOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WorkOrder{}, ErrInvalidWorkOrderID
	}
	wo, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if wo.ID == "" {
		return entities.WorkOrder{}, ErrWorkOrderNotFound
	}
	return wo, nil
}

// Discard tears down a work order: its sampler is cancelled and its event streams closed.
func (u *WorkOrderUseCase) Discard(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidWorkOrderID
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if deleted.ID == "" {
		return ErrWorkOrderNotFound
	}
	u.timer.Release(id)
	u.logger.Info("work order discarded", zap.String("work_order_id", id))
	return nil
}

func (u *WorkOrderUseCase) UpdateBasicInfo(ctx context.Context, id string, info entities.BasicInfo) (entities.WorkOrder, error) {
	if err := info.Validate(); err != nil {
		return entities.WorkOrder{}, err
	}
	return u.update(ctx, id, func(wo *entities.WorkOrder) error {
		wo.BasicInfo = info
		return nil
	})
}

func (u *WorkOrderUseCase) UpdateCustomer(ctx context.Context, id string, info entities.CustomerInfo) (entities.WorkOrder, error) {
	if err := info.Validate(); err != nil {
		return entities.WorkOrder{}, err
	}
	return u.update(ctx, id, func(wo *entities.WorkOrder) error {
		wo.Customer = info
		return nil
	})
}

func (u *WorkOrderUseCase) UpdateMachine(ctx context.Context, id string, info entities.MachineInfo) (entities.WorkOrder, error) {
	if err := info.Validate(); err != nil {
		return entities.WorkOrder{}, err
	}
	return u.update(ctx, id, func(wo *entities.WorkOrder) error {
		wo.Machine = info
		return nil
	})
}

func (u *WorkOrderUseCase) UpdateService(ctx context.Context, id string, info entities.ServiceInfo) (entities.WorkOrder, error) {
	if err := info.Validate(); err != nil {
		return entities.WorkOrder{}, err
	}
	return u.update(ctx, id, func(wo *entities.WorkOrder) error {
		wo.Service = info
		return nil
	})
}

func (u *WorkOrderUseCase) UpdateBilling(ctx context.Context, id string, info entities.BillingInfo) (entities.WorkOrder, error) {
	if err := info.Validate(); err != nil {
		return entities.WorkOrder{}, err
	}
	return u.update(ctx, id, func(wo *entities.WorkOrder) error {
		wo.Billing = info
		return nil
	})
}

func (u *WorkOrderUseCase) AddPart(ctx context.Context, id string, partID int) (entities.WorkOrder, error) {
	return u.update(ctx, id, func(wo *entities.WorkOrder) error {
		if !wo.Parts.AddPart(partID) {
			u.logger.Debug("add part ignored", zap.String("work_order_id", id), zap.Int("part_id", partID))
		}
		return nil
	})
}

// QuickAddPart adds the first catalog part, the "+" button next to the parts select.
func (u *WorkOrderUseCase) QuickAddPart(ctx context.Context, id string) (entities.WorkOrder, error) {
	catalog := entities.Catalog()
	if len(catalog) == 0 {
		return u.GetByID(ctx, id)
	}
	return u.AddPart(ctx, id, catalog[0].ID)
}

func (u *WorkOrderUseCase) UpdatePartQuantity(ctx context.Context, id string, partID, quantity int) (entities.WorkOrder, error) {
	return u.update(ctx, id, func(wo *entities.WorkOrder) error {
		if !wo.Parts.UpdateQuantity(partID, quantity) {
			u.logger.Debug("quantity update ignored", zap.String("work_order_id", id), zap.Int("part_id", partID))
		}
		return nil
	})
}

func (u *WorkOrderUseCase) RemovePart(ctx context.Context, id string, partID int) (entities.WorkOrder, error) {
	return u.update(ctx, id, func(wo *entities.WorkOrder) error {
		wo.Parts.RemovePart(partID)
		return nil
	})
}

func (u *WorkOrderUseCase) StartTimer(ctx context.Context, id string) (entities.WorkOrder, error) {
	return u.timer.Start(ctx, id)
}

func (u *WorkOrderUseCase) StopTimer(ctx context.Context, id string) (entities.WorkOrder, error) {
	return u.timer.Stop(ctx, id)
}

func (u *WorkOrderUseCase) ToggleTimer(ctx context.Context, id string) (entities.WorkOrder, error) {
	return u.timer.Toggle(ctx, id)
}

func (u *WorkOrderUseCase) SetRating(ctx context.Context, id string, rating int) (entities.WorkOrder, error) {
	var probe entities.Rating
	if err := probe.Set(rating); err != nil {
		return entities.WorkOrder{}, fmt.Errorf("%w: %w", ErrInvalidRating, err)
	}
	return u.update(ctx, id, func(wo *entities.WorkOrder) error {
		return wo.Rating.Set(rating)
	})
}

// SetAttachment checks or unchecks an accessory and, while checked, stores its serial number.
func (u *WorkOrderUseCase) SetAttachment(ctx context.Context, id string, kind entities.AttachmentKind, checked bool, serial string) (entities.WorkOrder, error) {
	var probe entities.Attachments
	if _, err := probe.Get(kind); err != nil {
		return entities.WorkOrder{}, fmt.Errorf("%w: %w", ErrInvalidAttachment, err)
	}
	return u.update(ctx, id, func(wo *entities.WorkOrder) error {
		if err := wo.Attachments.Set(kind, checked); err != nil {
			return err
		}
		return wo.Attachments.SetSerial(kind, strings.TrimSpace(serial))
	})
}

func (u *WorkOrderUseCase) Invoice(ctx context.Context, id string) (entities.Invoice, error) {
	wo, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	return wo.Invoice(u.rate), nil
}

func (u *WorkOrderUseCase) Summary(ctx context.Context, id string) (entities.Summary, error) {
	wo, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Summary{}, err
	}
	return entities.BuildSummary(wo, u.rate), nil
}

func (u *WorkOrderUseCase) Catalog() []entities.Part {
	return entities.Catalog()
}

func (u *WorkOrderUseCase) LaborRate() float64 {
	return u.rate
}

// RunAction answers the buttons that are placeholders in the form.
func (u *WorkOrderUseCase) RunAction(ctx context.Context, id string, action Action) error {
	if _, err := u.GetByID(ctx, id); err != nil {
		return err
	}
	u.logger.Info("action requested", zap.String("work_order_id", id), zap.String("action", string(action)))
	return fmt.Errorf("%w: %s", ErrActionNotImplemented, action)
}

// ReapIdle discards work orders with no user activity for ttl and returns how many it removed.
func (u *WorkOrderUseCase) ReapIdle(ctx context.Context, ttl time.Duration) (int, error) {
	cutoff := u.clock.Now().UTC().Add(-ttl)
	ids, err := u.repo.ListIdleSince(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	reaped := 0
	for _, id := range ids {
		if err := u.Discard(ctx, id); err != nil {
			if errors.Is(err, ErrWorkOrderNotFound) {
				continue
			}
			return reaped, err
		}
		reaped++
	}
	if reaped > 0 {
		u.logger.Info("idle work orders reaped", zap.Int("count", reaped), zap.Duration("ttl", ttl))
	}
	return reaped, nil
}

// Close stops every running sampler. Work orders stay readable.
func (u *WorkOrderUseCase) Close() {
	u.timer.Close()
}

func (u *WorkOrderUseCase) update(ctx context.Context, id string, fn func(wo *entities.WorkOrder) error) (entities.WorkOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WorkOrder{}, ErrInvalidWorkOrderID
	}
	now := u.clock.Now().UTC()
	updated, err := u.repo.Update(ctx, id, func(wo *entities.WorkOrder) error {
		if err := fn(wo); err != nil {
			return err
		}
		wo.UpdatedAt = now
		return nil
	})
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if updated.ID == "" {
		return entities.WorkOrder{}, ErrWorkOrderNotFound
	}
	return updated, nil
}
