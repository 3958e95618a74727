package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/inventory-service/internal/auth"
	"github.com/spec-kit/inventory-service/internal/domain"
	"github.com/spec-kit/inventory-service/internal/service"
)

// FeaturesHandler exposes the public feature and page listings. These never
// require a role and never fail: worst case the caller gets the baseline set.
type FeaturesHandler struct {
	features   *service.FeatureService
	cookieName string
}

// NewFeaturesHandler constructs handler.
func NewFeaturesHandler(features *service.FeatureService, cookieName string) *FeaturesHandler {
	return &FeaturesHandler{features: features, cookieName: cookieName}
}

// Features handles GET /api/features.
func (h *FeaturesHandler) Features(c *fiber.Ctx) error {
	token := auth.TokenFromRequest(c, h.cookieName)
	flags := h.features.ResolveFeatures(c.Context(), token)

	out := make([]fiber.Map, 0, len(flags))
	for _, flag := range flags {
		out = append(out, featureResponse(flag))
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"features": out}})
}

// Pages handles GET /api/pages.
func (h *FeaturesHandler) Pages(c *fiber.Ctx) error {
	token := auth.TokenFromRequest(c, h.cookieName)
	pages := h.features.ResolvePages(c.Context(), token)

	out := make([]fiber.Map, 0, len(pages))
	for _, page := range pages {
		out = append(out, fiber.Map{
			"key":      page.Key,
			"name":     page.Name,
			"path":     page.Path,
			"category": page.Category,
		})
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"pages": out}})
}

func featureResponse(flag domain.FeatureFlag) fiber.Map {
	out := fiber.Map{
		"key":      flag.Key,
		"name":     flag.Name,
		"category": flag.Category,
	}
	if flag.RequiredRole != nil {
		out["required_role"] = *flag.RequiredRole
	}
	return out
}
