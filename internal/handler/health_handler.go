package handler

import (
	"net/http"
	"time"

	"github.com/grachmannico95/fiscal-bridge/pkg/circuit"
	"github.com/labstack/echo/v4"
)

type HealthHandler struct {
	fiscalBreaker func() circuit.State
}

// NewHealthHandler reports the fiscal breaker state when fiscalBreaker is set.
func NewHealthHandler(fiscalBreaker func() circuit.State) *HealthHandler {
	return &HealthHandler{fiscalBreaker: fiscalBreaker}
}

func (h *HealthHandler) Check(c echo.Context) error {
	resp := map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	}

	if h.fiscalBreaker != nil {
		state := h.fiscalBreaker()
		resp["fiscal_circuit"] = state.String()
		if state == circuit.StateOpen {
			resp["status"] = "degraded"
		}
	}

	return c.JSON(http.StatusOK, resp)
}
