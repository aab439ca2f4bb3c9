package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"demobank/internal/services"
)

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	ledger services.LedgerServiceInterface
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(ledger services.LedgerServiceInterface) *HealthCheckHandler {
	return &HealthCheckHandler{ledger: ledger}
}

// HealthCheck adds the health check endpoint
// @Summary Health check
// @Description Liveness plus the size of the in-memory ledger
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string,accounts=int,time=string} "Service is healthy"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":   "healthy",
		"accounts": h.ledger.AccountCount(),
		"time":     time.Now().UTC().Format(time.RFC3339),
	})
}
