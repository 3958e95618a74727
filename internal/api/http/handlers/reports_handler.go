package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/inventory-service/internal/service"
	"github.com/spec-kit/inventory-service/pkg/util"
)

// ReportsHandler exposes admin-only aggregation reports.
type ReportsHandler struct {
	inventory *service.InventoryService
}

// NewReportsHandler constructs handler.
func NewReportsHandler(inventory *service.InventoryService) *ReportsHandler {
	return &ReportsHandler{inventory: inventory}
}

// Stock handles GET /api/reports/stock.
func (h *ReportsHandler) Stock(c *fiber.Ctx) error {
	totals, err := h.inventory.StockReport(c.Context())
	if err != nil {
		return util.MapError(err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"stock_by_category": totals}})
}
