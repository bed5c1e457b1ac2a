package routes

import (
	"github.com/gofiber/fiber/v2"

	"task-manager-api/interfaces/api/handlers"
	"task-manager-api/pkg/metrics"
)

// SetupRoutes registers every route. A nil m leaves /metrics unmounted.
func SetupRoutes(app *fiber.App, h *handlers.Handlers, m *metrics.Metrics, metricsPath string) {
	SetupHealthRoutes(app, h)

	if m != nil {
		SetupMetricsRoutes(app, m, metricsPath)
	}

	api := app.Group("/api")

	SetupTaskRoutes(api, h)
}
