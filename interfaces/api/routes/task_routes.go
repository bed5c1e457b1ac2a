package routes

import (
	"github.com/gofiber/fiber/v2"

	"task-manager-api/interfaces/api/handlers"
	"task-manager-api/interfaces/api/middleware"
)

// SetupTaskRoutes mounts the task CRUD endpoints under /tasks.
func SetupTaskRoutes(api fiber.Router, h *handlers.Handlers) {
	tasks := api.Group("/tasks")
	tasks.Use(middleware.RequireJSON())
	tasks.Post("/", h.TaskHandler.CreateTask)      // create a task, 201 with its id
	tasks.Get("/", h.TaskHandler.ListTasks)        // search, sort and page; total in X-Total-Count
	tasks.Get("/:id", h.TaskHandler.GetTask)       // one task or 404
	tasks.Put("/:id", h.TaskHandler.UpdateTask)    // partial update of the supplied fields
	tasks.Delete("/:id", h.TaskHandler.DeleteTask) // delete or 404
}
