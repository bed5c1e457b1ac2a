package services

import (
	"context"
	"errors"

	"task-manager-api/domain/dto"
	"task-manager-api/domain/models"
)

// ErrTaskVanished is returned when a task passed the existence check but was
// gone by the time the write ran. Handlers report it as a failed operation.
var ErrTaskVanished = errors.New("task removed concurrently")

type TaskService interface {
	CreateTask(ctx context.Context, in dto.CreateTaskInput) (*models.Task, error)
	GetTask(ctx context.Context, id int64) (*models.Task, error)
	ListTasks(ctx context.Context, query models.TaskQuery) ([]*models.Task, int64, error)
	UpdateTask(ctx context.Context, id int64, patch models.TaskPatch) error
	DeleteTask(ctx context.Context, id int64) error
}
