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

// StaffHandler exposes staff auth endpoints.
type StaffHandler struct {
	authService *service.AuthService
	cookieName  string
}

// NewStaffHandler constructs handler.
func NewStaffHandler(authService *service.AuthService, cookieName string) *StaffHandler {
	return &StaffHandler{authService: authService, cookieName: cookieName}
}

// Login handles POST /auth/staff/login.
func (h *StaffHandler) Login(c *fiber.Ctx) error {
	var req dto.StaffLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Login == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "login and password required")
	}

	user, token, exp, err := h.authService.LoginStaff(c.Context(), req.Login, req.Password)
	if err != nil {
		return util.NewUnauthorized("invalid credentials")
	}

	auth.SetAuthCookie(c, h.cookieName, token, exp)
	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"user": staffResponse(user),
			"auth": dto.AuthResponse{Token: token, ExpiresAt: exp},
		},
	})
}

// Logout handles POST /auth/staff/logout. Invalidates the token server-side
// and expires the cookie.
func (h *StaffHandler) Logout(c *fiber.Ctx) error {
	token := auth.TokenFromRequest(c, h.cookieName)
	if token != "" {
		if err := h.authService.LogoutStaff(c.Context(), token); err != nil {
			return util.MapError(err)
		}
	}
	auth.ExpireAuthCookie(c, h.cookieName)
	return c.JSON(fiber.Map{"data": fiber.Map{"logged_out": true}})
}

// Me handles GET /auth/staff/me. The principal is re-read from the store so
// deactivation and profile changes show up without a new token.
func (h *StaffHandler) Me(c *fiber.Ctx) error {
	token := auth.TokenFromRequest(c, h.cookieName)
	if token == "" {
		return util.NewUnauthorized("unauthenticated")
	}

	user, err := h.authService.WhoAmIStaff(c.Context(), token)
	if err != nil {
		return mapAuthError(err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"user": staffResponse(user)}})
}

func staffResponse(user *domain.User) fiber.Map {
	return fiber.Map{
		"id":       user.ID,
		"name":     user.Name,
		"username": user.Username,
		"email":    user.Email,
		"role":     user.Role,
		"active":   user.Active,
	}
}
