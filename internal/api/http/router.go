package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/inventory-service/internal/api/http/handlers"
	"github.com/spec-kit/inventory-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health     *handlers.HealthHandler
	Staff      *handlers.StaffHandler
	Customers  *handlers.CustomersHandler
	Features   *handlers.FeaturesHandler
	Items      *handlers.ItemsHandler
	Categories *handlers.CategoriesHandler
	Users      *handlers.UsersHandler
	Reports    *handlers.ReportsHandler
	Guard      *auth.AccessGuard
}

// RegisterRoutes wires HTTP routes. The access guard runs on every request;
// its route classifier decides which paths it actually gates.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Use(cfg.Guard.Handle)

	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	staffAuth := app.Group("/auth/staff")
	staffAuth.Post("/login", cfg.Staff.Login)
	staffAuth.Post("/logout", cfg.Staff.Logout)
	staffAuth.Get("/me", cfg.Staff.Me)

	customer := app.Group("/api/customer")
	customer.Post("/register", cfg.Customers.Register)
	customer.Post("/login", cfg.Customers.Login)
	customer.Post("/logout", cfg.Customers.Logout)
	customer.Get("/me", cfg.Customers.Me)

	app.Get("/api/features", cfg.Features.Features)
	app.Get("/api/pages", cfg.Features.Pages)

	items := app.Group("/api/items")
	items.Get("/", cfg.Items.List)
	items.Post("/", cfg.Items.Create)
	items.Get("/:id", cfg.Items.Get)
	items.Put("/:id", cfg.Items.Update)
	items.Delete("/:id", cfg.Items.Delete)
	items.Post("/:id/adjust", cfg.Items.Adjust)

	categories := app.Group("/api/categories")
	categories.Get("/", cfg.Categories.List)
	categories.Post("/", cfg.Categories.Create)
	categories.Put("/:id", cfg.Categories.Update)
	categories.Delete("/:id", cfg.Categories.Delete)

	app.Get("/api/users", cfg.Users.List)
	app.Get("/api/reports/stock", cfg.Reports.Stock)
}
