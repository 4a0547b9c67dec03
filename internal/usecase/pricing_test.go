package usecase

import (
	"testing"

	"github.com/guitarshop/checkout/internal/domain/model"
)

func TestSubtotal(t *testing.T) {
	tests := []struct {
		name  string
		items []model.LineItem
		want  float64
	}{
		{name: "empty", items: nil, want: 0},
		{name: "single item", items: []model.LineItem{{Price: 10, Quantity: 1}}, want: 10},
		{name: "quantity multiplies", items: []model.LineItem{{Price: 50, Quantity: 2}}, want: 100},
		{name: "multiple items", items: []model.LineItem{{Price: 19.99, Quantity: 2}, {Price: 5.5, Quantity: 3}}, want: 56.48},
		{name: "rounds to cents", items: []model.LineItem{{Price: 0.1, Quantity: 3}}, want: 0.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Subtotal(tt.items); got != tt.want {
				t.Fatalf("expected subtotal %.2f, got %.2f", tt.want, got)
			}
		})
	}
}

func TestShippingCost(t *testing.T) {
	tests := []struct {
		name     string
		subtotal float64
		want     float64
	}{
		{name: "exactly at threshold is free", subtotal: 100.00, want: 0},
		{name: "above threshold is free", subtotal: 250.75, want: 0},
		{name: "one cent below threshold pays fee", subtotal: 99.99, want: 9.99},
		{name: "small order pays fee", subtotal: 10, want: 9.99},
		{name: "zero subtotal pays fee", subtotal: 0, want: 9.99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShippingCost(tt.subtotal); got != tt.want {
				t.Fatalf("expected shipping %.2f for subtotal %.2f, got %.2f", tt.want, tt.subtotal, got)
			}
		})
	}
}

func TestRound2(t *testing.T) {
	if got := Round2(19.994); got != 19.99 {
		t.Fatalf("expected 19.99, got %v", got)
	}
	if got := Round2(9.999); got != 10.00 {
		t.Fatalf("expected 10.00, got %v", got)
	}
	if got := Round2(0.1 + 0.2); got != 0.3 {
		t.Fatalf("expected 0.3, got %v", got)
	}
}
