package rabbit

import (
	"context"
	"fmt"
	"log/slog"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/guitarshop/checkout/internal/config"
	"github.com/guitarshop/checkout/internal/pkg/retry"
)

const (
	// Exchange receives every order notification the shop emits.
	Exchange = "guitarshop.orders"
	// Queue is the durable queue the orders service consumes from.
	Queue = "checkout.events"
	// RoutingKey marks order creation announcements.
	RoutingKey = "order.created"
)

// Broker maintains the RabbitMQ connection and channel used for publishing.
// A Broker that failed to connect is still usable: Connected reports false
// and publishers degrade to skip-and-log.
type Broker struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	logger  *slog.Logger
}

// Connect dials RabbitMQ with a bounded retry loop and declares the durable
// topology. Exhausting the retry budget is non-fatal: checkout persistence
// must not depend on notification infrastructure, so the service starts in
// degraded no-publish mode instead.
func Connect(ctx context.Context, cfg *config.Config, logger *slog.Logger) *Broker {
	b := &Broker{logger: logger}

	err := retry.Do(ctx, logger, "rabbitmq", cfg.ConnectAttempts, cfg.ConnectBackoff, func(context.Context) error {
		return b.dial(cfg.BrokerURL)
	})
	if err != nil {
		logger.Error("could not connect to rabbitmq, checkout will run without messaging",
			slog.String("error", err.Error()))
		return b
	}

	logger.Info("connected to rabbitmq", slog.String("exchange", Exchange))
	return b
}

func (b *Broker) dial(url string) error {
	conn, err := amqp.Dial(url)
	if err != nil {
		return err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return fmt.Errorf("open channel: %w", err)
	}

	if err := declareTopology(channel); err != nil {
		channel.Close()
		conn.Close()
		return err
	}

	b.conn = conn
	b.channel = channel
	return nil
}

func declareTopology(channel *amqp.Channel) error {
	if err := channel.ExchangeDeclare(
		Exchange,
		"topic",
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		return fmt.Errorf("declare exchange %s: %w", Exchange, err)
	}

	if _, err := channel.QueueDeclare(
		Queue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	); err != nil {
		return fmt.Errorf("declare queue %s: %w", Queue, err)
	}

	if err := channel.QueueBind(Queue, RoutingKey, Exchange, false, nil); err != nil {
		return fmt.Errorf("bind queue %s: %w", Queue, err)
	}

	return nil
}

// Connected reports whether a live channel is available.
func (b *Broker) Connected() bool {
	return b.channel != nil
}

// Close releases the channel and connection.
func (b *Broker) Close() {
	if b.channel != nil {
		_ = b.channel.Close()
	}
	if b.conn != nil {
		_ = b.conn.Close()
	}
}
