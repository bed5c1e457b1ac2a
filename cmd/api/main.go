package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"

	"task-manager-api/interfaces/api/handlers"
	"task-manager-api/interfaces/api/routes"
	"task-manager-api/pkg/di"
	"task-manager-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	container := di.NewContainer()

	if err := container.Initialize(); err != nil {
		// logger may not be up yet
		panic("Failed to initialize container: " + err.Error())
	}

	cfg := container.GetConfig()

	h := handlers.NewHandlers(container.GetHandlerServices())
	app := routes.NewApp(h, routes.AppOptions{
		AppName:      cfg.App.Name,
		AllowOrigins: cfg.App.AllowOrigins,
		Development:  cfg.IsDevelopment(),
		Metrics:      container.Metrics,
		MetricsPath:  cfg.Metrics.Path,
	})

	setupGracefulShutdown(app, container)

	port := cfg.App.Port
	logger.Info("Server starting",
		"port", port,
		"env", cfg.App.Env,
		"app", cfg.App.Name,
		"db_driver", cfg.Database.Driver,
	)
	logger.Info("Endpoints available",
		"health", "http://localhost:"+port+"/health",
		"api", "http://localhost:"+port+"/api/tasks",
	)

	if err := app.Listen(":" + port); err != nil {
		logger.Error("Server failed to start", "error", err)
		_ = container.Cleanup()
		os.Exit(1)
	}
}

// setupGracefulShutdown drains in-flight requests before closing the store.
func setupGracefulShutdown(app *fiber.App, container *di.Container) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		logger.Info("Gracefully shutting down...")

		if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			logger.Error("Error shutting down server", "error", err)
		}

		if err := container.Cleanup(); err != nil {
			logger.Error("Error during cleanup", "error", err)
		}

		logger.Info("Shutdown complete")
		os.Exit(0)
	}()
}
