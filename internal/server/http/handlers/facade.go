package handlers

import (
	"context"

	"github.com/guitarshop/checkout/internal/domain/model"
)

// CheckoutFacade encapsulates the checkout operations exposed via HTTP.
type CheckoutFacade interface {
	Submit(ctx context.Context, draft *model.OrderDraft) (*model.Order, error)
	Order(ctx context.Context, id string) (*model.Order, error)
	CustomerOrders(ctx context.Context, customerID string) ([]model.Order, error)
}
