package test

import (
	"context"
	"sync"

	"github.com/guitarshop/checkout/internal/domain/model"
)

// PublisherRecorder captures announced orders for assertions.
type PublisherRecorder struct {
	PublishFn func(context.Context, *model.Order)

	mu        sync.Mutex
	published []*model.Order
}

// PublishOrderCreated records the order and invokes the optional hook.
func (r *PublisherRecorder) PublishOrderCreated(ctx context.Context, order *model.Order) {
	r.mu.Lock()
	r.published = append(r.published, order)
	r.mu.Unlock()

	if r.PublishFn != nil {
		r.PublishFn(ctx, order)
	}
}

// Published returns a snapshot of announced orders.
func (r *PublisherRecorder) Published() []*model.Order {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*model.Order, len(r.published))
	copy(out, r.published)
	return out
}
