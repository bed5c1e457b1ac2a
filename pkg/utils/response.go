package utils

import (
	"github.com/gofiber/fiber/v2"

	"task-manager-api/domain/dto"
)

// ========== Response Messages ==========

const (
	MsgTaskCreated        = "Task created successfully"
	MsgTaskUpdated        = "Task updated successfully"
	MsgTaskDeleted        = "Task deleted successfully"
	MsgTaskNotFound       = "Task not found"
	MsgNoFieldsToUpdate   = "No fields to update"
	MsgInvalidJSONBody    = "Invalid JSON body"
	MsgUnsupportedContent = "Content-Type must be application/json"
	MsgInternalError      = "Internal server error"
)

// TotalCountHeader carries the number of tasks matching a list filter.
const TotalCountHeader = "X-Total-Count"

// ========== Success Responses ==========

func SuccessResponse(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusOK).JSON(data)
}

func CreatedResponse(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

func MessageResponse(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusOK).JSON(dto.MessageResponse{Message: message})
}

// ========== Error Responses ==========

func ErrorResponse(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(dto.ErrorResponse{Error: message})
}

// ValidationErrorResponse reports every invalid field at once.
func ValidationErrorResponse(c *fiber.Ctx, fields map[string]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{Errors: fields})
}

func BadRequestResponse(c *fiber.Ctx, message string) error {
	return ErrorResponse(c, fiber.StatusBadRequest, message)
}

func NotFoundResponse(c *fiber.Ctx, message string) error {
	if message == "" {
		message = "Resource not found"
	}
	return ErrorResponse(c, fiber.StatusNotFound, message)
}

func UnsupportedMediaTypeResponse(c *fiber.Ctx) error {
	return ErrorResponse(c, fiber.StatusUnsupportedMediaType, MsgUnsupportedContent)
}

// InternalServerErrorResponse never echoes the underlying error.
func InternalServerErrorResponse(c *fiber.Ctx) error {
	return ErrorResponse(c, fiber.StatusInternalServerError, MsgInternalError)
}
