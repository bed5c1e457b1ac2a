package repositories

import (
	"context"
	"errors"

	"task-manager-api/domain/models"
)

var (
	// ErrTaskNotFound signals that no row matched; it is an outcome, not a store failure.
	ErrTaskNotFound = errors.New("task not found")
	// ErrNoFieldsToUpdate is returned when a patch carries no updatable field.
	ErrNoFieldsToUpdate = errors.New("no fields to update")
	// ErrInvalidTask is returned when an enum value is outside its domain.
	ErrInvalidTask = errors.New("task has out-of-domain values")
	// ErrStoreFailure is the uniform signal for any store-level error.
	ErrStoreFailure = errors.New("task store operation failed")
)

type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Task, error)
	GetAll(ctx context.Context, query models.TaskQuery) ([]*models.Task, error)
	Count(ctx context.Context, search string) (int64, error)
	Update(ctx context.Context, id int64, patch models.TaskPatch) error
	Delete(ctx context.Context, id int64) error
}
