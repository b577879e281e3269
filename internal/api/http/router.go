package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/change-adapter/internal/api/http/handlers"
	"github.com/spec-kit/change-adapter/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Records        *handlers.RecordsHandler
	Status         *handlers.StatusHandler
	Auth           *handlers.AuthHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/auth/token", cfg.Auth.Token)

	protected := app.Group("", cfg.AuthMiddleware.Handle)
	protected.Get("/records", auth.RequireRole(auth.RoleReader), cfg.Records.List)
	protected.Get("/records/mirror", auth.RequireRole(auth.RoleReader), cfg.Records.Mirror)
	protected.Post("/records", auth.RequireRole(auth.RoleOperator), cfg.Records.Create)

	protected.Post("/connect", auth.RequireRole(auth.RoleOperator), cfg.Status.Connect)
	protected.Get("/status/history", auth.RequireRole(auth.RoleReader), cfg.Status.History)
}
