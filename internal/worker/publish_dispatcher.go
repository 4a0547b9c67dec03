package worker

import (
	"context"
	"log/slog"
	"sync"

	"github.com/guitarshop/checkout/internal/domain/model"
)

// Publisher delivers a single order announcement.
type Publisher interface {
	PublishOrderCreated(ctx context.Context, order *model.Order)
}

// PublishDispatcher hands order announcements to a background worker pool so
// a slow broker never adds latency to the checkout response. When the buffer
// is saturated the announcement is delivered synchronously in the caller, so
// every persisted order still gets exactly one publish attempt.
type PublishDispatcher struct {
	publisher Publisher
	workers   int
	logger    *slog.Logger

	jobs   chan *model.Order
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewPublishDispatcher constructs the dispatcher worker pool.
func NewPublishDispatcher(publisher Publisher, buffer, workers int, logger *slog.Logger) *PublishDispatcher {
	if buffer <= 0 {
		buffer = 1
	}
	if workers <= 0 {
		workers = 1
	}
	return &PublishDispatcher{
		publisher: publisher,
		workers:   workers,
		logger:    logger,
		jobs:      make(chan *model.Order, buffer),
	}
}

// Start launches background delivery.
func (d *PublishDispatcher) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel

	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker(runCtx)
	}
}

// Stop waits for all workers to finish. Announcements still queued at stop
// time are dropped, consistent with the at-least-once consumer contract.
func (d *PublishDispatcher) Stop() {
	d.mu.Lock()
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.mu.Unlock()

	d.wg.Wait()
}

// PublishOrderCreated enqueues the announcement without blocking, falling
// back to synchronous delivery when the queue is full.
func (d *PublishDispatcher) PublishOrderCreated(ctx context.Context, order *model.Order) {
	select {
	case d.jobs <- order:
	default:
		d.logger.Warn("publish queue saturated, delivering synchronously", slog.String("order_id", order.ID))
		d.publisher.PublishOrderCreated(ctx, order)
	}
}

func (d *PublishDispatcher) worker(ctx context.Context) {
	defer d.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case order := <-d.jobs:
			d.publisher.PublishOrderCreated(ctx, order)
		}
	}
}
