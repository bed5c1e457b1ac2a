package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"task-manager-api/domain/repositories"
	"task-manager-api/pkg/logger"
	"task-manager-api/pkg/utils"
)

// writeErr maps service errors onto HTTP responses. Anything unrecognised is
// a store failure and is reported without detail.
func writeErr(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, repositories.ErrTaskNotFound):
		return utils.NotFoundResponse(c, utils.MsgTaskNotFound)
	case errors.Is(err, repositories.ErrNoFieldsToUpdate):
		return utils.BadRequestResponse(c, utils.MsgNoFieldsToUpdate)
	default:
		logger.ErrorContext(c.UserContext(), "Task operation failed", "error", err)
		return utils.InternalServerErrorResponse(c)
	}
}
