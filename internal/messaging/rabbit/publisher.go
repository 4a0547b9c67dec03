package rabbit

import (
	"context"
	"encoding/json"
	"log/slog"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/guitarshop/checkout/internal/domain/model"
)

// publishChannel is the slice of amqp.Channel the publisher needs.
type publishChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// Publisher announces order creation on the broker. Publishing never fails
// from the caller's point of view: persistence is the source of truth and a
// missed announcement must not degrade checkout.
type Publisher struct {
	channel publishChannel
	logger  *slog.Logger
}

// NewPublisher constructs a Publisher over the broker's channel. A
// disconnected broker yields a publisher that skips and logs.
func NewPublisher(broker *Broker, logger *slog.Logger) *Publisher {
	p := &Publisher{logger: logger}
	if broker.Connected() {
		p.channel = broker.channel
	}
	return p
}

// PublishOrderCreated routes a durable ORDER_CREATED event for the order.
// Failures are logged warnings, never errors.
func (p *Publisher) PublishOrderCreated(ctx context.Context, order *model.Order) {
	if p.channel == nil {
		p.logger.Warn("rabbitmq not connected, skipping publish", slog.String("order_id", order.ID))
		return
	}

	body, err := json.Marshal(NewOrderCreatedEvent(order))
	if err != nil {
		p.logger.Warn("encode order created event failed",
			slog.String("order_id", order.ID),
			slog.String("error", err.Error()))
		return
	}

	err = p.channel.PublishWithContext(ctx, Exchange, RoutingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
	if err != nil {
		p.logger.Warn("publish order created failed",
			slog.String("order_id", order.ID),
			slog.String("error", err.Error()))
		return
	}

	p.logger.Info("published order created", slog.String("order_id", order.ID))
}
