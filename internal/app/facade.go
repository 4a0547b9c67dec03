package app

import (
	"context"

	"github.com/guitarshop/checkout/internal/domain/model"
	"github.com/guitarshop/checkout/internal/usecase"
)

// CheckoutFacade is the application entry point the HTTP boundary talks to.
type CheckoutFacade struct {
	checkout *usecase.CheckoutUseCase
}

// NewCheckoutFacade constructs CheckoutFacade.
func NewCheckoutFacade(checkout *usecase.CheckoutUseCase) *CheckoutFacade {
	return &CheckoutFacade{checkout: checkout}
}

// Submit runs the checkout flow for a validated-shape request.
func (f *CheckoutFacade) Submit(ctx context.Context, draft *model.OrderDraft) (*model.Order, error) {
	return f.checkout.Submit(ctx, draft)
}

// Order fetches a persisted checkout by identifier.
func (f *CheckoutFacade) Order(ctx context.Context, id string) (*model.Order, error) {
	return f.checkout.Order(ctx, id)
}

// CustomerOrders lists a customer's checkouts, newest first.
func (f *CheckoutFacade) CustomerOrders(ctx context.Context, customerID string) ([]model.Order, error) {
	return f.checkout.CustomerOrders(ctx, customerID)
}
