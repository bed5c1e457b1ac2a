package serviceimpl

import (
	"context"
	"errors"
	"fmt"
	"html"
	"sort"
	"time"

	"task-manager-api/domain/dto"
	"task-manager-api/domain/models"
	"task-manager-api/domain/ports"
	"task-manager-api/domain/repositories"
	"task-manager-api/domain/services"
	"task-manager-api/pkg/logger"
)

type TaskServiceImpl struct {
	taskRepo  repositories.TaskRepository
	publisher ports.TaskEventPublisher
	now       func() time.Time
}

func NewTaskService(taskRepo repositories.TaskRepository, publisher ports.TaskEventPublisher) services.TaskService {
	return newTaskService(taskRepo, publisher, time.Now)
}

func newTaskService(taskRepo repositories.TaskRepository, publisher ports.TaskEventPublisher, now func() time.Time) *TaskServiceImpl {
	return &TaskServiceImpl{
		taskRepo:  taskRepo,
		publisher: publisher,
		now:       now,
	}
}

func (s *TaskServiceImpl) CreateTask(ctx context.Context, in dto.CreateTaskInput) (*models.Task, error) {
	task := &models.Task{
		Title:       html.EscapeString(in.Title),
		Description: escapeOptional(in.Description),
		DueDate:     in.DueDate.UTC(),
		CreateDate:  s.now().UTC().Truncate(time.Second),
		Status:      in.Status,
		Priority:    in.Priority,
		Category:    in.Category,
	}
	if task.Status == "" {
		task.Status = models.DefaultTaskStatus
	}
	if task.Priority == "" {
		task.Priority = models.DefaultTaskPriority
	}

	id, err := s.taskRepo.Create(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	logger.InfoContext(ctx, "Task created", "task_id", id)
	s.publish(ctx, ports.TaskEvent{Type: ports.TaskCreated, TaskID: id})

	return task, nil
}

func (s *TaskServiceImpl) GetTask(ctx context.Context, id int64) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get task %d: %w", id, err)
	}
	return task, nil
}

func (s *TaskServiceImpl) ListTasks(ctx context.Context, query models.TaskQuery) ([]*models.Task, int64, error) {
	tasks, err := s.taskRepo.GetAll(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("list tasks: %w", err)
	}

	total, err := s.taskRepo.Count(ctx, query.Search)
	if err != nil {
		return nil, 0, fmt.Errorf("count tasks: %w", err)
	}

	return tasks, total, nil
}

// UpdateTask checks existence first so that a missing task is reported
// before an empty patch.
func (s *TaskServiceImpl) UpdateTask(ctx context.Context, id int64, patch models.TaskPatch) error {
	if _, err := s.taskRepo.GetByID(ctx, id); err != nil {
		return fmt.Errorf("update task %d: %w", id, err)
	}

	if patch.Title != nil {
		escaped := html.EscapeString(*patch.Title)
		patch.Title = &escaped
	}
	patch.Description = escapeOptional(patch.Description)

	if err := s.taskRepo.Update(ctx, id, patch); err != nil {
		if errors.Is(err, repositories.ErrTaskNotFound) {
			logger.WarnContext(ctx, "Task disappeared before update", "task_id", id)
			return fmt.Errorf("update task %d: %w", id, services.ErrTaskVanished)
		}
		return fmt.Errorf("update task %d: %w", id, err)
	}

	logger.InfoContext(ctx, "Task updated", "task_id", id)
	s.publish(ctx, ports.TaskEvent{Type: ports.TaskUpdated, TaskID: id, Fields: changedFields(patch)})

	return nil
}

func (s *TaskServiceImpl) DeleteTask(ctx context.Context, id int64) error {
	if _, err := s.taskRepo.GetByID(ctx, id); err != nil {
		return fmt.Errorf("delete task %d: %w", id, err)
	}

	if err := s.taskRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrTaskNotFound) {
			logger.WarnContext(ctx, "Task disappeared before delete", "task_id", id)
			return fmt.Errorf("delete task %d: %w", id, services.ErrTaskVanished)
		}
		return fmt.Errorf("delete task %d: %w", id, err)
	}

	logger.InfoContext(ctx, "Task deleted", "task_id", id)
	s.publish(ctx, ports.TaskEvent{Type: ports.TaskDeleted, TaskID: id})

	return nil
}

func (s *TaskServiceImpl) publish(ctx context.Context, event ports.TaskEvent) {
	if s.publisher == nil {
		return
	}
	event.OccurredAt = s.now().UTC()
	event.RequestID = logger.GetRequestID(ctx)
	if err := s.publisher.PublishTaskEvent(ctx, event); err != nil {
		logger.WarnContext(ctx, "Failed to publish task event", "type", event.Type, "task_id", event.TaskID, "error", err)
	}
}

func escapeOptional(s *string) *string {
	if s == nil {
		return nil
	}
	escaped := html.EscapeString(*s)
	return &escaped
}

func changedFields(patch models.TaskPatch) []string {
	cols := patch.Columns()
	fields := make([]string, 0, len(cols))
	for k := range cols {
		fields = append(fields, k)
	}
	sort.Strings(fields)
	return fields
}
