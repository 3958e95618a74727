package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/inventory-service/internal/repository"
	"github.com/spec-kit/inventory-service/pkg/util"
)

// UsersHandler exposes staff administration endpoints. Routes under
// /api/users are admin-only; the access guard enforces the role before
// these run.
type UsersHandler struct {
	users repository.UserRepository
}

// NewUsersHandler constructs handler.
func NewUsersHandler(users repository.UserRepository) *UsersHandler {
	return &UsersHandler{users: users}
}

// List handles GET /api/users.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	users, err := h.users.List(c.Context())
	if err != nil {
		return util.MapError(err)
	}

	out := make([]fiber.Map, 0, len(users))
	for _, user := range users {
		out = append(out, fiber.Map{
			"id":       user.ID,
			"name":     user.Name,
			"username": user.Username,
			"email":    user.Email,
			"role":     user.Role,
			"active":   user.Active,
		})
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"users": out}})
}
