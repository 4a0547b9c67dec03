package repository

import (
	"context"

	"github.com/guitarshop/checkout/internal/domain/model"
)

// DefaultListLimit caps how many orders a customer listing returns.
const DefaultListLimit = 20

// OrderRepository describes persistence operations with checkout orders.
type OrderRepository interface {
	// Create assigns a fresh identifier and durably writes the order in a
	// single statement. A failed create leaves no record behind.
	Create(ctx context.Context, order *model.Order) (*model.Order, error)
	GetByID(ctx context.Context, id string) (*model.Order, error)
	ListByCustomer(ctx context.Context, customerID string, limit int) ([]model.Order, error)
}
