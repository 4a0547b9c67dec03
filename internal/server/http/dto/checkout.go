package dto

import (
	"time"

	"github.com/guitarshop/checkout/internal/domain/model"
)

// CheckoutRequest is the POST /checkout payload.
type CheckoutRequest struct {
	CustomerID string           `json:"customerId"`
	Email      string           `json:"email"`
	FirstName  string           `json:"firstName"`
	LastName   string           `json:"lastName"`
	Address    string           `json:"address"`
	City       string           `json:"city"`
	Country    string           `json:"country"`
	PostalCode string           `json:"postalCode"`
	Items      []model.LineItem `json:"items"`
}

// ToDraft maps the request onto the domain draft.
func (r CheckoutRequest) ToDraft() *model.OrderDraft {
	return &model.OrderDraft{
		CustomerID: r.CustomerID,
		Email:      r.Email,
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		Address:    r.Address,
		City:       r.City,
		Country:    r.Country,
		PostalCode: r.PostalCode,
		Items:      r.Items,
	}
}

// OrderResponse is the JSON representation of a persisted checkout.
type OrderResponse struct {
	ID           string           `json:"id"`
	CustomerID   string           `json:"customerId"`
	Email        string           `json:"email"`
	FirstName    string           `json:"firstName,omitempty"`
	LastName     string           `json:"lastName,omitempty"`
	Address      string           `json:"address,omitempty"`
	City         string           `json:"city,omitempty"`
	Country      string           `json:"country,omitempty"`
	PostalCode   string           `json:"postalCode,omitempty"`
	Items        []model.LineItem `json:"items"`
	Subtotal     float64          `json:"subtotal"`
	ShippingCost float64          `json:"shippingCost"`
	Total        float64          `json:"total"`
	Status       string           `json:"status"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
}

// NewOrderResponse maps a domain order onto the wire representation.
func NewOrderResponse(order *model.Order) OrderResponse {
	return OrderResponse{
		ID:           order.ID,
		CustomerID:   order.CustomerID,
		Email:        order.Email,
		FirstName:    order.FirstName,
		LastName:     order.LastName,
		Address:      order.Address,
		City:         order.City,
		Country:      order.Country,
		PostalCode:   order.PostalCode,
		Items:        order.Items,
		Subtotal:     order.Subtotal,
		ShippingCost: order.ShippingCost,
		Total:        order.Total,
		Status:       string(order.Status),
		CreatedAt:    order.CreatedAt,
		UpdatedAt:    order.UpdatedAt,
	}
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse reports process liveness.
type HealthResponse struct {
	Status    string    `json:"status"`
	Service   string    `json:"service"`
	Timestamp time.Time `json:"timestamp"`
}
