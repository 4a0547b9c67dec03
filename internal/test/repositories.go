package test

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	domainErrors "github.com/guitarshop/checkout/internal/domain/errors"
	"github.com/guitarshop/checkout/internal/domain/model"
)

// OrderRepositoryStub keeps orders in memory and allows tests to customize
// behaviour through optional function fields.
type OrderRepositoryStub struct {
	CreateFn         func(context.Context, *model.Order) (*model.Order, error)
	GetByIDFn        func(context.Context, string) (*model.Order, error)
	ListByCustomerFn func(context.Context, string, int) ([]model.Order, error)
	Err              error

	mu     sync.Mutex
	orders []model.Order
	next   int
}

// Create stores the order with a generated identifier and timestamps.
func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	if s.Err != nil {
		return nil, s.Err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.next++
	persisted := *order
	persisted.ID = fmt.Sprintf("00000000-0000-0000-0000-%012d", s.next)
	persisted.CreatedAt = time.Now().Add(time.Duration(s.next) * time.Millisecond)
	persisted.UpdatedAt = persisted.CreatedAt
	s.orders = append(s.orders, persisted)
	return &persisted, nil
}

// GetByID fetches a stored order or reports not found.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id string) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	if s.Err != nil {
		return nil, s.Err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == id {
			order := s.orders[i]
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListByCustomer returns stored orders for the customer, newest first,
// capped at limit.
func (s *OrderRepositoryStub) ListByCustomer(ctx context.Context, customerID string, limit int) ([]model.Order, error) {
	if s.ListByCustomerFn != nil {
		return s.ListByCustomerFn(ctx, customerID, limit)
	}
	if s.Err != nil {
		return nil, s.Err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var result []model.Order
	for i := range s.orders {
		if s.orders[i].CustomerID == customerID {
			result = append(result, s.orders[i])
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// Stored returns a snapshot of all persisted orders.
func (s *OrderRepositoryStub) Stored() []model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Order, len(s.orders))
	copy(out, s.orders)
	return out
}
