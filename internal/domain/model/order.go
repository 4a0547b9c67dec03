package model

import "time"

// OrderStatus describes the checkout lifecycle. Only the initial state is
// assigned here; downstream consumers own further transitions.
type OrderStatus string

const (
	OrderStatusPending OrderStatus = "PENDING"
)

// LineItem is a single purchased position. JSON tags double as the storage
// representation of the items column.
type LineItem struct {
	ProductID string  `json:"productId,omitempty"`
	Name      string  `json:"name,omitempty"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// Order describes a persisted checkout. All fields are immutable after
// creation.
type Order struct {
	ID           string
	CustomerID   string
	Email        string
	FirstName    string
	LastName     string
	Address      string
	City         string
	Country      string
	PostalCode   string
	Items        []LineItem
	Subtotal     float64
	ShippingCost float64
	Total        float64
	Status       OrderStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// OrderDraft carries the client-supplied part of a checkout request. Pricing
// and identity are always computed server-side.
type OrderDraft struct {
	CustomerID string
	Email      string
	FirstName  string
	LastName   string
	Address    string
	City       string
	Country    string
	PostalCode string
	Items      []LineItem
}
