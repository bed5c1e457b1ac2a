package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"task-manager-api/pkg/metrics"
)

// MetricsMiddleware records request count and latency per route template,
// so /api/tasks/1 and /api/tasks/2 share one series.
func MetricsMiddleware(m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		route := c.Route().Path
		if route == "" || (route == "/" && c.Path() != "/") {
			route = "unmatched"
		}
		m.ObserveRequest(c.Method(), route, responseStatus(c, err), time.Since(start))

		return err
	}
}
