package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/inventory-service/internal/api/dto"
	"github.com/spec-kit/inventory-service/internal/domain"
	"github.com/spec-kit/inventory-service/internal/service"
	"github.com/spec-kit/inventory-service/pkg/util"
)

// CategoriesHandler exposes category CRUD for authenticated staff.
type CategoriesHandler struct {
	inventory *service.InventoryService
}

// NewCategoriesHandler constructs handler.
func NewCategoriesHandler(inventory *service.InventoryService) *CategoriesHandler {
	return &CategoriesHandler{inventory: inventory}
}

// List handles GET /api/categories.
func (h *CategoriesHandler) List(c *fiber.Ctx) error {
	categories, err := h.inventory.ListCategories(c.Context())
	if err != nil {
		return util.MapError(err)
	}

	out := make([]fiber.Map, 0, len(categories))
	for _, category := range categories {
		out = append(out, fiber.Map{"id": category.ID, "name": category.Name})
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"categories": out}})
}

// Create handles POST /api/categories.
func (h *CategoriesHandler) Create(c *fiber.Ctx) error {
	var req dto.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	category := &domain.Category{Name: req.Name}
	if err := h.inventory.CreateCategory(c.Context(), category); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{"category": fiber.Map{"id": category.ID, "name": category.Name}},
	})
}

// Update handles PUT /api/categories/:id.
func (h *CategoriesHandler) Update(c *fiber.Ctx) error {
	var req dto.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	category := &domain.Category{ID: c.Params("id"), Name: req.Name}
	if err := h.inventory.UpdateCategory(c.Context(), category); err != nil {
		return util.MapError(err)
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{"category": fiber.Map{"id": category.ID, "name": category.Name}},
	})
}

// Delete handles DELETE /api/categories/:id.
func (h *CategoriesHandler) Delete(c *fiber.Ctx) error {
	if err := h.inventory.DeleteCategory(c.Context(), c.Params("id")); err != nil {
		return util.MapError(err)
	}
	return c.SendStatus(http.StatusNoContent)
}
