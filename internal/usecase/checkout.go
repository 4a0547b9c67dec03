package usecase

import (
	"context"

	"github.com/guitarshop/checkout/internal/domain/model"
	"github.com/guitarshop/checkout/internal/domain/repository"
)

// EventPublisher announces persisted orders. Implementations must never fail
// the caller: publish outcome is observed through logging only.
type EventPublisher interface {
	PublishOrderCreated(ctx context.Context, order *model.Order)
}

// CheckoutUseCase encapsulates the order commit-and-publish flow.
type CheckoutUseCase struct {
	orders repository.OrderRepository
	events EventPublisher
}

// NewCheckoutUseCase constructs CheckoutUseCase.
func NewCheckoutUseCase(orders repository.OrderRepository, events EventPublisher) *CheckoutUseCase {
	return &CheckoutUseCase{orders: orders, events: events}
}

// Submit validates the draft, computes pricing, persists the order and
// announces its creation. Persistence is synchronous and authoritative; the
// announcement is best effort and cannot fail the checkout.
func (u *CheckoutUseCase) Submit(ctx context.Context, draft *model.OrderDraft) (*model.Order, error) {
	if err := ValidateDraft(draft); err != nil {
		return nil, err
	}

	subtotal := Subtotal(draft.Items)
	shipping := ShippingCost(subtotal)

	order := &model.Order{
		CustomerID:   draft.CustomerID,
		Email:        draft.Email,
		FirstName:    draft.FirstName,
		LastName:     draft.LastName,
		Address:      draft.Address,
		City:         draft.City,
		Country:      draft.Country,
		PostalCode:   draft.PostalCode,
		Items:        draft.Items,
		Subtotal:     subtotal,
		ShippingCost: shipping,
		Total:        Round2(subtotal + shipping),
		Status:       model.OrderStatusPending,
	}

	persisted, err := u.orders.Create(ctx, order)
	if err != nil {
		return nil, err
	}

	u.events.PublishOrderCreated(ctx, persisted)
	return persisted, nil
}

// Order fetches a checkout by identifier.
func (u *CheckoutUseCase) Order(ctx context.Context, id string) (*model.Order, error) {
	return u.orders.GetByID(ctx, id)
}

// CustomerOrders lists a customer's checkouts, newest first.
func (u *CheckoutUseCase) CustomerOrders(ctx context.Context, customerID string) ([]model.Order, error) {
	return u.orders.ListByCustomer(ctx, customerID, repository.DefaultListLimit)
}
