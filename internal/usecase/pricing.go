package usecase

import (
	"math"

	"github.com/guitarshop/checkout/internal/domain/model"
)

const (
	// FreeShippingThreshold is the subtotal at which shipping becomes free.
	FreeShippingThreshold = 100.00
	// FlatShippingFee applies below the free shipping threshold.
	FlatShippingFee = 9.99
)

// Round2 rounds a monetary amount to cents.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Subtotal sums price times quantity over all items, rounded to cents.
func Subtotal(items []model.LineItem) float64 {
	var sum float64
	for _, item := range items {
		sum += item.Price * float64(item.Quantity)
	}
	return Round2(sum)
}

// ShippingCost derives the shipping fee from the subtotal.
func ShippingCost(subtotal float64) float64 {
	if subtotal >= FreeShippingThreshold {
		return 0
	}
	return FlatShippingFee
}
