package handlers

import (
	"gorm.io/gorm"

	"task-manager-api/domain/services"
)

// Services contains all the services needed for handlers
type Services struct {
	TaskService services.TaskService
	DB          *gorm.DB // health check only
	AppName     string
	Pagination  PaginationConfig
}

// Handlers contains all HTTP handlers
type Handlers struct {
	TaskHandler   *TaskHandler
	HealthHandler *HealthHandler
}

// NewHandlers creates a new instance of Handlers with all dependencies
func NewHandlers(services *Services) *Handlers {
	return &Handlers{
		TaskHandler:   NewTaskHandler(services.TaskService, services.Pagination),
		HealthHandler: NewHealthHandler(services.DB, services.AppName),
	}
}
