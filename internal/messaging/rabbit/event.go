package rabbit

import (
	"time"

	"github.com/guitarshop/checkout/internal/domain/model"
)

// EventTypeOrderCreated identifies the announcement emitted after a checkout
// is persisted.
const EventTypeOrderCreated = "ORDER_CREATED"

// OrderCreatedEvent is the wire format consumed by downstream order services.
type OrderCreatedEvent struct {
	Event      string           `json:"event"`
	OrderID    string           `json:"orderId"`
	CustomerID string           `json:"customerId"`
	Total      float64          `json:"total"`
	Items      []model.LineItem `json:"items"`
	Timestamp  time.Time        `json:"timestamp"`
}

// NewOrderCreatedEvent builds the announcement for a persisted order.
func NewOrderCreatedEvent(order *model.Order) OrderCreatedEvent {
	return OrderCreatedEvent{
		Event:      EventTypeOrderCreated,
		OrderID:    order.ID,
		CustomerID: order.CustomerID,
		Total:      order.Total,
		Items:      order.Items,
		Timestamp:  time.Now().UTC(),
	}
}
