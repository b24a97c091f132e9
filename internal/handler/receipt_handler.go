package handler

import (
	"net/http"

	"github.com/grachmannico95/fiscal-bridge/internal/service"
	"github.com/grachmannico95/fiscal-bridge/pkg/logger"
	"github.com/labstack/echo/v4"
)

type ReceiptHandler struct {
	service service.ReceiptService
	logger  *logger.Logger
}

func NewReceiptHandler(service service.ReceiptService, log *logger.Logger) *ReceiptHandler {
	return &ReceiptHandler{
		service: service,
		logger:  log,
	}
}

func (h *ReceiptHandler) Issue(c echo.Context) error {
	ctx := c.Request().Context()
	paymentID := c.Param("id")

	h.logger.Info(logger.WithPaymentID(ctx, paymentID), "Handling issue receipt request")

	receipt, err := h.service.IssueForPayment(ctx, paymentID)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusCreated, receipt)
}

func (h *ReceiptHandler) Get(c echo.Context) error {
	receipt, err := h.service.GetReceipt(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, receipt)
}
