package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/inventory-service/internal/api/dto"
	"github.com/spec-kit/inventory-service/internal/auth"
	"github.com/spec-kit/inventory-service/internal/domain"
	"github.com/spec-kit/inventory-service/internal/service"
	"github.com/spec-kit/inventory-service/pkg/util"
)

// ItemsHandler exposes item CRUD for authenticated staff. The access guard
// has already resolved the principal before these run.
type ItemsHandler struct {
	inventory *service.InventoryService
}

// NewItemsHandler constructs handler.
func NewItemsHandler(inventory *service.InventoryService) *ItemsHandler {
	return &ItemsHandler{inventory: inventory}
}

// List handles GET /api/items.
func (h *ItemsHandler) List(c *fiber.Ctx) error {
	items, err := h.inventory.ListItems(c.Context())
	if err != nil {
		return util.MapError(err)
	}

	out := make([]fiber.Map, 0, len(items))
	for i := range items {
		out = append(out, itemResponse(&items[i]))
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"items": out}})
}

// Get handles GET /api/items/:id.
func (h *ItemsHandler) Get(c *fiber.Ctx) error {
	item, err := h.inventory.GetItem(c.Context(), c.Params("id"))
	if err != nil {
		return util.MapError(err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"item": itemResponse(item)}})
}

// Create handles POST /api/items.
func (h *ItemsHandler) Create(c *fiber.Ctx) error {
	var req dto.ItemRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	item := &domain.Item{
		SKU:        req.SKU,
		Name:       req.Name,
		CategoryID: req.CategoryID,
		Location:   req.Location,
		Quantity:   req.Quantity,
		Unit:       req.Unit,
	}
	if err := h.inventory.CreateItem(c.Context(), item); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": fiber.Map{"item": itemResponse(item)}})
}

// Update handles PUT /api/items/:id.
func (h *ItemsHandler) Update(c *fiber.Ctx) error {
	var req dto.ItemRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	item := &domain.Item{
		ID:         c.Params("id"),
		SKU:        req.SKU,
		Name:       req.Name,
		CategoryID: req.CategoryID,
		Location:   req.Location,
		Quantity:   req.Quantity,
		Unit:       req.Unit,
	}
	if err := h.inventory.UpdateItem(c.Context(), item); err != nil {
		return util.MapError(err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"item": itemResponse(item)}})
}

// Delete handles DELETE /api/items/:id.
func (h *ItemsHandler) Delete(c *fiber.Ctx) error {
	if err := h.inventory.DeleteItem(c.Context(), c.Params("id")); err != nil {
		return util.MapError(err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// Adjust handles POST /api/items/:id/adjust, a relative stock movement
// attributed to the acting principal.
func (h *ItemsHandler) Adjust(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return util.NewUnauthorized("unauthenticated")
	}

	var req dto.StockAdjustRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Delta == 0 {
		return fiber.NewError(http.StatusBadRequest, "delta must be non-zero")
	}

	item, err := h.inventory.AdjustStock(c.Context(), principal.ID, c.Params("id"), req.Delta)
	if err != nil {
		return util.MapError(err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"item": itemResponse(item)}})
}

func itemResponse(item *domain.Item) fiber.Map {
	return fiber.Map{
		"id":          item.ID,
		"sku":         item.SKU,
		"name":        item.Name,
		"category_id": item.CategoryID,
		"location":    item.Location,
		"quantity":    item.Quantity,
		"unit":        item.Unit,
	}
}
