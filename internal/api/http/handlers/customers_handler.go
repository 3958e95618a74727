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

// CustomersHandler exposes storefront auth endpoints.
type CustomersHandler struct {
	authService *service.AuthService
	cookieName  string
}

// NewCustomersHandler constructs handler.
func NewCustomersHandler(authService *service.AuthService, cookieName string) *CustomersHandler {
	return &CustomersHandler{authService: authService, cookieName: cookieName}
}

// Register handles POST /api/customer/register.
func (h *CustomersHandler) Register(c *fiber.Ctx) error {
	var req dto.CustomerRegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.FullName == "" || req.Email == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "full name, email, password required")
	}

	customer, token, exp, err := h.authService.RegisterCustomer(c.Context(), req.FullName, req.Email, req.Password)
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{
			"customer": customerResponse(customer),
			"auth":     dto.AuthResponse{Token: token, ExpiresAt: exp},
		},
	})
}

// Login handles POST /api/customer/login.
func (h *CustomersHandler) Login(c *fiber.Ctx) error {
	var req dto.CustomerLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "email and password required")
	}

	customer, token, exp, err := h.authService.LoginCustomer(c.Context(), req.Email, req.Password)
	if err != nil {
		return util.NewUnauthorized("invalid credentials")
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"customer": customerResponse(customer),
			"auth":     dto.AuthResponse{Token: token, ExpiresAt: exp},
		},
	})
}

// Logout handles POST /api/customer/logout. Deleting the session row revokes
// the token even if it has not expired yet.
func (h *CustomersHandler) Logout(c *fiber.Ctx) error {
	token := auth.TokenFromRequest(c, h.cookieName)
	if token != "" {
		if err := h.authService.LogoutCustomer(c.Context(), token); err != nil {
			return util.MapError(err)
		}
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"logged_out": true}})
}

// Me handles GET /api/customer/me.
func (h *CustomersHandler) Me(c *fiber.Ctx) error {
	token := auth.TokenFromRequest(c, h.cookieName)
	if token == "" {
		return util.NewUnauthorized("unauthenticated")
	}

	customer, err := h.authService.WhoAmICustomer(c.Context(), token)
	if err != nil {
		return mapAuthError(err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"customer": customerResponse(customer)}})
}

func customerResponse(customer *domain.Customer) fiber.Map {
	return fiber.Map{
		"id":        customer.ID,
		"full_name": customer.FullName,
		"email":     customer.Email,
	}
}
