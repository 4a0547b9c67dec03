package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guitarshop/checkout/internal/server/http/dto"
)

// ServiceName identifies this service in health responses.
const ServiceName = "guitarshop-checkout"

// HealthHandler reports process liveness. It deliberately does not probe
// dependencies: a degraded broker still counts as a live checkout service.
type HealthHandler struct{}

// NewHealthHandler constructs HealthHandler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Status handles GET /health.
func (h *HealthHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:    "UP",
		Service:   ServiceName,
		Timestamp: time.Now().UTC(),
	})
}
