package api

import (
	"context"

	"github.com/gofiber/fiber/v3"

	"salesbadge/internal/metrics"
	"salesbadge/internal/models"
)

// CountService is the slice of the counting service the handler depends on.
type CountService interface {
	GetRecentPurchaseCount(ctx context.Context, productID string, period models.Period) (models.CountResult, error)
}

// PurchasesHandler serves the recent-purchase count endpoint.
type PurchasesHandler struct {
	svc CountService
}

// NewPurchasesHandler creates the handler.
func NewPurchasesHandler(svc CountService) *PurchasesHandler {
	return &PurchasesHandler{svc: svc}
}

// GetRecentPurchases handles GET /recent-purchases?productId=<s>&period=<p>.
// A missing productId is rejected before any upstream work; an unrecognized
// period silently falls back to the 24-hour window.
func (h *PurchasesHandler) GetRecentPurchases(c fiber.Ctx) error {
	productID := c.Query("productId")
	if productID == "" {
		metrics.RecordCountRequest("bad_request")
		return jsonError(c, fiber.StatusBadRequest, "Product ID is required")
	}

	period := models.ParsePeriod(c.Query("period"))

	result, err := h.svc.GetRecentPurchaseCount(c.Context(), productID, period)
	if err != nil {
		metrics.RecordCountRequest("error")
		return jsonError(c, fiber.StatusInternalServerError, "Failed to fetch purchase data")
	}

	if result.IsMock {
		metrics.RecordCountRequest("mock")
	} else {
		metrics.RecordCountRequest("ok")
	}
	return c.JSON(result)
}
