package test

import (
	"context"
	"time"

	"github.com/guitarshop/checkout/internal/domain/model"
)

// CheckoutFacadeStub provides controllable behaviour for checkout endpoints.
type CheckoutFacadeStub struct {
	SubmitFn         func(context.Context, *model.OrderDraft) (*model.Order, error)
	OrderFn          func(context.Context, string) (*model.Order, error)
	CustomerOrdersFn func(context.Context, string) ([]model.Order, error)
}

// Submit delegates to the provided function or returns a default order.
func (s CheckoutFacadeStub) Submit(ctx context.Context, draft *model.OrderDraft) (*model.Order, error) {
	if s.SubmitFn != nil {
		return s.SubmitFn(ctx, draft)
	}
	return &model.Order{
		ID:         "11111111-1111-1111-1111-111111111111",
		CustomerID: draft.CustomerID,
		Email:      draft.Email,
		Items:      draft.Items,
		Status:     model.OrderStatusPending,
		CreatedAt:  time.Unix(0, 0).UTC(),
		UpdatedAt:  time.Unix(0, 0).UTC(),
	}, nil
}

// Order delegates or returns a default order with the requested identifier.
func (s CheckoutFacadeStub) Order(ctx context.Context, id string) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, id)
	}
	return &model.Order{ID: id, Status: model.OrderStatusPending}, nil
}

// CustomerOrders delegates or returns a single default order.
func (s CheckoutFacadeStub) CustomerOrders(ctx context.Context, customerID string) ([]model.Order, error) {
	if s.CustomerOrdersFn != nil {
		return s.CustomerOrdersFn(ctx, customerID)
	}
	return []model.Order{{ID: "11111111-1111-1111-1111-111111111111", CustomerID: customerID}}, nil
}
