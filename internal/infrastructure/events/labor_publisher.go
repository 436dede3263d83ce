package events

import (
	"rainbow_workshop/internal/domain/entities"
	"rainbow_workshop/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const EventLaborSample = "labor_sample"

// LaborPublisher publishes labor-timer samples on the hub, one topic per work order.
type LaborPublisher struct {
	hub *Hub
}

var _ interfaces.ILaborEventPublisher = (*LaborPublisher)(nil)

func NewLaborPublisher(hub *Hub) *LaborPublisher {
	return &LaborPublisher{hub: hub}
}

func (p *LaborPublisher) PublishLaborSample(sample entities.LaborSample) {
	if err := p.hub.PublishJSON(sample.WorkOrderID, EventLaborSample, sample); err != nil {
		p.hub.logger.Error("labor sample marshal failed", zap.String("work_order_id", sample.WorkOrderID), zap.Error(err))
	}
}

func (p *LaborPublisher) CloseWorkOrder(workOrderID string) {
	p.hub.CloseTopic(workOrderID)
}
