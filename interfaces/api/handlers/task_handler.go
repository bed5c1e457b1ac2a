package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"task-manager-api/application/validation"
	"task-manager-api/domain/dto"
	"task-manager-api/domain/models"
	"task-manager-api/domain/services"
	"task-manager-api/pkg/logger"
	"task-manager-api/pkg/utils"
)

type PaginationConfig struct {
	DefaultLimit int
	MaxLimit     int
}

type TaskHandler struct {
	taskService services.TaskService
	pagination  PaginationConfig
}

func NewTaskHandler(taskService services.TaskService, pagination PaginationConfig) *TaskHandler {
	if pagination.DefaultLimit < 1 {
		pagination.DefaultLimit = 10
	}
	if pagination.MaxLimit < pagination.DefaultLimit {
		pagination.MaxLimit = pagination.DefaultLimit
	}
	return &TaskHandler{
		taskService: taskService,
		pagination:  pagination,
	}
}

func (h *TaskHandler) CreateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	payload, ok := decodeObject(c)
	if !ok {
		logger.WarnContext(ctx, "Invalid request body")
		return utils.BadRequestResponse(c, utils.MsgInvalidJSONBody)
	}

	if errs := validation.ValidateTask(payload, false); len(errs) > 0 {
		logger.WarnContext(ctx, "Validation failed", "errors", errs)
		return utils.ValidationErrorResponse(c, errs)
	}

	in, errs := toCreateInput(payload)
	if len(errs) > 0 {
		return utils.ValidationErrorResponse(c, errs)
	}

	logger.InfoContext(ctx, "Task creation attempt", "title", in.Title)

	task, err := h.taskService.CreateTask(ctx, in)
	if err != nil {
		return writeErr(c, err)
	}

	return utils.CreatedResponse(c, dto.CreateTaskResponse{
		ID:      task.ID,
		Message: utils.MsgTaskCreated,
	})
}

func (h *TaskHandler) ListTasks(c *fiber.Ctx) error {
	ctx := c.UserContext()

	limit := c.QueryInt("limit", h.pagination.DefaultLimit)
	if limit > h.pagination.MaxLimit {
		limit = h.pagination.MaxLimit
	}

	req := dto.ListTasksRequest{
		Search: c.Query("search"),
		Sort:   c.Query("sort"),
		Page:   c.QueryInt("page", 1),
		Limit:  limit,
	}

	tasks, total, err := h.taskService.ListTasks(ctx, req.ToTaskQuery())
	if err != nil {
		return writeErr(c, err)
	}

	c.Set(utils.TotalCountHeader, strconv.FormatInt(total, 10))
	return utils.SuccessResponse(c, dto.TasksToTaskResponses(tasks))
}

func (h *TaskHandler) GetTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	taskID, ok := parseTaskID(c)
	if !ok {
		logger.WarnContext(ctx, "Invalid task ID", "task_id", c.Params("id"))
		return utils.NotFoundResponse(c, utils.MsgTaskNotFound)
	}

	task, err := h.taskService.GetTask(ctx, taskID)
	if err != nil {
		return writeErr(c, err)
	}

	return utils.SuccessResponse(c, dto.TaskToTaskResponse(task))
}

func (h *TaskHandler) UpdateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	taskID, ok := parseTaskID(c)
	if !ok {
		logger.WarnContext(ctx, "Invalid task ID", "task_id", c.Params("id"))
		return utils.NotFoundResponse(c, utils.MsgTaskNotFound)
	}

	payload, ok := decodeObject(c)
	if !ok {
		logger.WarnContext(ctx, "Invalid request body", "task_id", taskID)
		return utils.BadRequestResponse(c, utils.MsgInvalidJSONBody)
	}

	if errs := validation.ValidateTask(payload, true); len(errs) > 0 {
		logger.WarnContext(ctx, "Validation failed", "task_id", taskID, "errors", errs)
		return utils.ValidationErrorResponse(c, errs)
	}

	patch, errs := toPatch(payload)
	if len(errs) > 0 {
		return utils.ValidationErrorResponse(c, errs)
	}

	logger.InfoContext(ctx, "Task update attempt", "task_id", taskID)

	if err := h.taskService.UpdateTask(ctx, taskID, patch); err != nil {
		return writeErr(c, err)
	}

	return utils.MessageResponse(c, utils.MsgTaskUpdated)
}

func (h *TaskHandler) DeleteTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	taskID, ok := parseTaskID(c)
	if !ok {
		logger.WarnContext(ctx, "Invalid task ID", "task_id", c.Params("id"))
		return utils.NotFoundResponse(c, utils.MsgTaskNotFound)
	}

	logger.InfoContext(ctx, "Task deletion attempt", "task_id", taskID)

	if err := h.taskService.DeleteTask(ctx, taskID); err != nil {
		return writeErr(c, err)
	}

	return utils.MessageResponse(c, utils.MsgTaskDeleted)
}

// parseTaskID accepts only positive integers. Anything else cannot name a task.
func parseTaskID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// decodeObject requires the body to be a JSON object.
func decodeObject(c *fiber.Ctx) (map[string]any, bool) {
	var payload map[string]any
	if err := c.BodyParser(&payload); err != nil || payload == nil {
		return nil, false
	}
	return payload, true
}

func toCreateInput(payload map[string]any) (dto.CreateTaskInput, map[string]string) {
	patch, errs := toPatch(payload)
	if len(errs) > 0 {
		return dto.CreateTaskInput{}, errs
	}

	in := dto.CreateTaskInput{
		Title:       *patch.Title,
		Description: patch.Description,
		DueDate:     *patch.DueDate,
		Category:    patch.Category,
	}
	if patch.Status != nil {
		in.Status = *patch.Status
	}
	if patch.Priority != nil {
		in.Priority = *patch.Priority
	}
	return in, nil
}

// toPatch converts an already validated payload into typed values. Unknown
// keys, id and create_date are dropped here.
func toPatch(payload map[string]any) (models.TaskPatch, map[string]string) {
	var patch models.TaskPatch
	errs := make(map[string]string)

	if s, ok := payload["title"].(string); ok {
		patch.Title = &s
	}
	if s, ok := payload["description"].(string); ok {
		patch.Description = &s
	}
	if s, ok := payload["due_date"].(string); ok {
		due, err := validation.ParseDateTime(s)
		if err != nil {
			errs["due_date"] = validation.MsgDueDateInvalid
		} else {
			patch.DueDate = &due
		}
	}
	if s, ok := payload["status"].(string); ok {
		if status, valid := models.ParseTaskStatus(s); valid {
			patch.Status = &status
		} else {
			errs["status"] = validation.MsgStatusInvalid
		}
	}
	if s, ok := payload["priority"].(string); ok {
		if priority, valid := models.ParseTaskPriority(s); valid {
			patch.Priority = &priority
		} else {
			errs["priority"] = validation.MsgPriorityInvalid
		}
	}
	if s, ok := payload["category"].(string); ok {
		patch.Category = &s
	}

	return patch, errs
}
