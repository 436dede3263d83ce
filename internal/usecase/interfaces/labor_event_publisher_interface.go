package interfaces

import "rainbow_workshop/internal/domain/entities"

// ILaborEventPublisher pushes labor-timer updates to the open forms of a work order.
//
//go:generate mockgen -source=labor_event_publisher_interface.go -destination=mocks/mock_labor_event_publisher_interface.go -package=mock_interfaces
type ILaborEventPublisher interface {
	PublishLaborSample(sample entities.LaborSample)
	CloseWorkOrder(workOrderID string)
}
