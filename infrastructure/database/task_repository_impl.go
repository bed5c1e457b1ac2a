package database

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"task-manager-api/domain/models"
	"task-manager-api/domain/repositories"
	"task-manager-api/pkg/logger"
)

type TaskRepositoryImpl struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) repositories.TaskRepository {
	return &TaskRepositoryImpl{db: db}
}

func (r *TaskRepositoryImpl) Create(ctx context.Context, task *models.Task) (int64, error) {
	if task == nil || !task.Status.Valid() || !task.Priority.Valid() {
		return 0, repositories.ErrInvalidTask
	}

	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		logger.ErrorContext(ctx, "Task insert failed", "op", "create", "title", task.Title, "error", err)
		return 0, repositories.ErrStoreFailure
	}
	return task.ID, nil
}

func (r *TaskRepositoryImpl) GetByID(ctx context.Context, id int64) (*models.Task, error) {
	var task models.Task
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repositories.ErrTaskNotFound
		}
		logger.ErrorContext(ctx, "Task lookup failed", "op", "get", "task_id", id, "error", err)
		return nil, repositories.ErrStoreFailure
	}
	return &task, nil
}

// GetAll returns one page of tasks. Ordering falls back to id so that pages
// are stable when no sort key is given or sort values tie.
func (r *TaskRepositoryImpl) GetAll(ctx context.Context, query models.TaskQuery) ([]*models.Task, error) {
	q := query.Normalize()

	tx := r.filtered(ctx, q.Search)
	if col := q.Sort.Column(); col != "" {
		tx = tx.Order(clause.OrderByColumn{Column: clause.Column{Name: col}})
	}
	tx = tx.Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}})

	tasks := make([]*models.Task, 0)
	if err := tx.Limit(q.Limit).Offset(q.Offset()).Find(&tasks).Error; err != nil {
		logger.ErrorContext(ctx, "Task list failed", "op", "list",
			"search", q.Search, "page", q.Page, "limit", q.Limit, "error", err)
		return nil, repositories.ErrStoreFailure
	}
	return tasks, nil
}

func (r *TaskRepositoryImpl) Count(ctx context.Context, search string) (int64, error) {
	var count int64
	if err := r.filtered(ctx, search).Count(&count).Error; err != nil {
		logger.ErrorContext(ctx, "Task count failed", "op", "count", "search", search, "error", err)
		return 0, repositories.ErrStoreFailure
	}
	return count, nil
}

// Update writes only the columns present in the patch. Zero rows matched means
// the task vanished after the caller's existence check.
func (r *TaskRepositoryImpl) Update(ctx context.Context, id int64, patch models.TaskPatch) error {
	cols := patch.Columns()
	if len(cols) == 0 {
		return repositories.ErrNoFieldsToUpdate
	}
	if !patch.Valid() {
		return repositories.ErrInvalidTask
	}

	res := r.db.WithContext(ctx).Model(&models.Task{}).Where("id = ?", id).Updates(cols)
	if res.Error != nil {
		logger.ErrorContext(ctx, "Task update failed", "op", "update", "task_id", id, "error", res.Error)
		return repositories.ErrStoreFailure
	}
	if res.RowsAffected == 0 {
		return repositories.ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepositoryImpl) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Task{})
	if res.Error != nil {
		logger.ErrorContext(ctx, "Task delete failed", "op", "delete", "task_id", id, "error", res.Error)
		return repositories.ErrStoreFailure
	}
	if res.RowsAffected == 0 {
		return repositories.ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepositoryImpl) filtered(ctx context.Context, search string) *gorm.DB {
	tx := r.db.WithContext(ctx).Model(&models.Task{})
	if search != "" {
		tx = tx.Where("title LIKE ? ESCAPE '!'", containsPattern(search))
	}
	return tx
}

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// containsPattern turns search text into a LIKE pattern that matches it as a
// literal substring.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
