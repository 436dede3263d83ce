package events

import (
	"encoding/json"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Event is one Server-Sent Event.
type Event struct {
	Type string
	Data string
}

// Client is one connected event stream, subscribed to a single work order.
type Client struct {
	ID          string
	WorkOrderID string
	Events      chan Event
}

// Hub fans out events to the streams subscribed to each work order.
// Sends never block: a client whose buffer is full misses the event.
type Hub struct {
	mu     sync.RWMutex
	topics map[string]map[string]*Client
	buffer int
	logger *zap.Logger
}

func NewHub(buffer int, logger *zap.Logger) *Hub {
	if buffer <= 0 {
		buffer = 16
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{
		topics: make(map[string]map[string]*Client),
		buffer: buffer,
		logger: logger,
	}
}

// Subscribe registers a new client for workOrderID.
func (h *Hub) Subscribe(workOrderID string) *Client {
	c := &Client{
		ID:          uuid.NewString(),
		WorkOrderID: workOrderID,
		Events:      make(chan Event, h.buffer),
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	clients, ok := h.topics[workOrderID]
	if !ok {
		clients = make(map[string]*Client)
		h.topics[workOrderID] = clients
	}
	clients[c.ID] = c
	h.logger.Debug("event client subscribed",
		zap.String("client_id", c.ID),
		zap.String("work_order_id", workOrderID),
		zap.Int("subscribers", len(clients)),
	)
	return c
}

// Unsubscribe removes a client and closes its channel. Unknown clients are ignored.
func (h *Hub) Unsubscribe(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	clients, ok := h.topics[c.WorkOrderID]
	if !ok {
		return
	}
	if _, ok := clients[c.ID]; !ok {
		return
	}
	close(c.Events)
	delete(clients, c.ID)
	if len(clients) == 0 {
		delete(h.topics, c.WorkOrderID)
	}
	h.logger.Debug("event client unsubscribed", zap.String("client_id", c.ID), zap.String("work_order_id", c.WorkOrderID))
}

// Publish sends an event to every client of workOrderID.
func (h *Hub) Publish(workOrderID string, e Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, c := range h.topics[workOrderID] {
		select {
		case c.Events <- e:
		default:
			h.logger.Warn("event client buffer full, dropping event",
				zap.String("client_id", c.ID),
				zap.String("work_order_id", workOrderID),
				zap.String("event", e.Type),
			)
		}
	}
}

// PublishJSON marshals payload and publishes it as eventType.
func (h *Hub) PublishJSON(workOrderID, eventType string, payload any) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	h.Publish(workOrderID, Event{Type: eventType, Data: string(b)})
	return nil
}

// CloseTopic disconnects every client of workOrderID. Their channels are closed, which ends
// the streams.
func (h *Hub) CloseTopic(workOrderID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, c := range h.topics[workOrderID] {
		close(c.Events)
	}
	delete(h.topics, workOrderID)
}

// CloseAll disconnects every client of every work order.
func (h *Hub) CloseAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, clients := range h.topics {
		for _, c := range clients {
			close(c.Events)
		}
		delete(h.topics, id)
	}
}

// Subscribers returns the number of clients of workOrderID.
func (h *Hub) Subscribers(workOrderID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.topics[workOrderID])
}
