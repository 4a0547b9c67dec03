package usecase

import (
	"strings"

	domainErrors "github.com/guitarshop/checkout/internal/domain/errors"
	"github.com/guitarshop/checkout/internal/domain/model"
)

// ValidateDraft checks the client-supplied part of a checkout request.
func ValidateDraft(draft *model.OrderDraft) error {
	if strings.TrimSpace(draft.CustomerID) == "" || strings.TrimSpace(draft.Email) == "" || len(draft.Items) == 0 {
		return domainErrors.NewValidation("customerId, email, and items are required")
	}

	for _, item := range draft.Items {
		if item.Quantity < 1 {
			return domainErrors.NewValidation("item quantity must be at least 1")
		}
		if item.Price < 0 {
			return domainErrors.NewValidation("item price must not be negative")
		}
	}

	return nil
}
