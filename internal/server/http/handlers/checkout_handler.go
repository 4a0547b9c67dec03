package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/guitarshop/checkout/internal/domain/errors"
	"github.com/guitarshop/checkout/internal/server/http/dto"
)

// CheckoutHandler manages checkout endpoints.
type CheckoutHandler struct {
	facade CheckoutFacade
}

// NewCheckoutHandler constructs CheckoutHandler.
func NewCheckoutHandler(facade CheckoutFacade) *CheckoutHandler {
	return &CheckoutHandler{facade: facade}
}

// Create handles POST /checkout.
func (h *CheckoutHandler) Create(c *gin.Context) {
	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
		return
	}

	order, err := h.facade.Submit(c.Request.Context(), req.ToDraft())
	if err != nil {
		var ve *domainErrors.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: ve.Reason})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to create checkout"})
		return
	}

	c.JSON(http.StatusCreated, dto.NewOrderResponse(order))
}

// Get handles GET /checkout/:id.
func (h *CheckoutHandler) Get(c *gin.Context) {
	order, err := h.facade.Order(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "checkout not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
		return
	}

	c.JSON(http.StatusOK, dto.NewOrderResponse(order))
}

// ListByCustomer handles GET /checkout/customer/:customerId.
func (h *CheckoutHandler) ListByCustomer(c *gin.Context) {
	orders, err := h.facade.CustomerOrders(c.Request.Context(), c.Param("customerId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		response = append(response, dto.NewOrderResponse(&orders[i]))
	}

	c.JSON(http.StatusOK, response)
}
