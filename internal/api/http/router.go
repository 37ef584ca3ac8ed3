package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/fieldops/farm-admin/internal/api/http/handlers"
	"github.com/fieldops/farm-admin/internal/observability"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health   *handlers.HealthHandler
	State    *handlers.StateHandler
	Staff    *handlers.StaffHandler
	Vehicles *handlers.VehicleHandler
	Fields   *handlers.FieldHandler
	Metrics  *observability.Metrics
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	if cfg.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(cfg.Metrics.Handler()))
	}

	api := app.Group("/api")
	api.Get("/state", cfg.State.Get)
	api.Get("/export.xlsx", cfg.State.Export)

	staff := api.Group("/staff")
	staff.Get("/", cfg.Staff.List)
	staff.Post("/", cfg.Staff.Create)
	staff.Get("/:id", cfg.Staff.Get)
	staff.Put("/:id", cfg.Staff.Update)
	staff.Delete("/:id", cfg.Staff.Delete)

	vehicles := api.Group("/vehicles")
	vehicles.Get("/", cfg.Vehicles.List)
	vehicles.Post("/", cfg.Vehicles.Create)
	vehicles.Get("/:code", cfg.Vehicles.Get)
	vehicles.Put("/:code", cfg.Vehicles.Update)
	vehicles.Delete("/:code", cfg.Vehicles.Delete)

	fields := api.Group("/fields")
	fields.Get("/", cfg.Fields.List)
	fields.Post("/", cfg.Fields.Create)
	fields.Get("/locations", cfg.Fields.Locations)
	fields.Get("/:code", cfg.Fields.Get)
	fields.Put("/:code", cfg.Fields.Update)
	fields.Delete("/:code", cfg.Fields.Delete)
}
