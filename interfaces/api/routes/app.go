package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	jsoniter "github.com/json-iterator/go"

	"task-manager-api/interfaces/api/handlers"
	"task-manager-api/interfaces/api/middleware"
	"task-manager-api/pkg/metrics"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type AppOptions struct {
	AppName      string
	AllowOrigins string
	Development  bool             // stack traces on recovered panics
	Metrics      *metrics.Metrics // nil disables metrics
	MetricsPath  string
}

// NewApp builds the fiber application with the full middleware chain and
// every route mounted.
func NewApp(h *handlers.Handlers, opts AppOptions) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(),
		AppName:      opts.AppName,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
	})

	app.Use(recover.New(recover.Config{EnableStackTrace: opts.Development}))
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.LoggerMiddleware())
	if opts.Metrics != nil {
		app.Use(middleware.MetricsMiddleware(opts.Metrics))
	}
	app.Use(middleware.CorsMiddleware(opts.AllowOrigins))

	SetupRoutes(app, h, opts.Metrics, opts.MetricsPath)

	return app
}
