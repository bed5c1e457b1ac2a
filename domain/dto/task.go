package dto

import (
	"time"

	"task-manager-api/domain/models"
)

// CreateTaskInput is a validated create request with enums already parsed.
type CreateTaskInput struct {
	Title       string
	Description *string
	DueDate     time.Time
	Status      models.TaskStatus
	Priority    models.TaskPriority
	Category    *string
}

type CreateTaskResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

type TaskResponse struct {
	ID          int64               `json:"id"`
	Title       string              `json:"title"`
	Description *string             `json:"description"`
	DueDate     time.Time           `json:"due_date"`
	CreateDate  time.Time           `json:"create_date"`
	Status      models.TaskStatus   `json:"status"`
	Priority    models.TaskPriority `json:"priority"`
	Category    *string             `json:"category"`
}

// ListTasksRequest holds the raw list query before normalisation.
type ListTasksRequest struct {
	Search string
	Sort   string
	Page   int
	Limit  int
}
