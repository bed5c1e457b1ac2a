package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"task-manager-api/pkg/metrics"
)

func SetupMetricsRoutes(app *fiber.App, m *metrics.Metrics, path string) {
	if path == "" {
		path = "/metrics"
	}
	app.Get(path, adaptor.HTTPHandler(m.Handler()))
}
