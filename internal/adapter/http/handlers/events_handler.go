package handlers

import (
	"encoding/json"
	"fmt"
	"time"

	"rainbow_workshop/internal/domain/entities"
	"rainbow_workshop/internal/infrastructure/events"
	"rainbow_workshop/internal/usecase"

	"github.com/gin-gonic/gin"
)

// EventsHandler streams labor-timer samples of one work order as Server-Sent Events.
type EventsHandler struct {
	usecase   usecase.IWorkOrderUseCase
	hub       *events.Hub
	heartbeat time.Duration
}

func NewEventsHandler(uc usecase.IWorkOrderUseCase, hub *events.Hub, heartbeat time.Duration) *EventsHandler {
	if heartbeat <= 0 {
		heartbeat = 30 * time.Second
	}
	return &EventsHandler{usecase: uc, hub: hub, heartbeat: heartbeat}
}

// Stream handles GET /v1/work-orders/:id/events. The stream opens with the current timer
// state and ends when the client disconnects or the work order is discarded.
//
// @Summary  Stream labor timer samples
// @Tags     timer
// @Produce  text/event-stream
// @Param    id  path  string  true  "Work order id"
// @Success  200
// @Failure  404 {object} pkg.HTTPError
// @Router   /work-orders/{id}/events [get]
func (h *EventsHandler) Stream(c *gin.Context) {
	wo, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	client := h.hub.Subscribe(wo.ID)
	defer h.hub.Unsubscribe(client)

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("X-Accel-Buffering", "no")

	initial, err := json.Marshal(entities.NewLaborSample(wo, h.usecase.LaborRate(), time.Now().UTC()))
	if err != nil {
		return
	}
	writeEvent(c, events.Event{Type: events.EventLaborSample, Data: string(initial)})

	heartbeat := time.NewTicker(h.heartbeat)
	defer heartbeat.Stop()

	clientGone := c.Request.Context().Done()
	for {
		select {
		case <-clientGone:
			return
		case event, ok := <-client.Events:
			if !ok {
				return
			}
			writeEvent(c, event)
		case <-heartbeat.C:
			_, _ = c.Writer.WriteString(": keepalive\n\n")
			c.Writer.Flush()
		}
	}
}

func writeEvent(c *gin.Context, e events.Event) {
	_, _ = c.Writer.WriteString(fmt.Sprintf("event: %s\ndata: %s\n\n", e.Type, e.Data))
	c.Writer.Flush()
}
