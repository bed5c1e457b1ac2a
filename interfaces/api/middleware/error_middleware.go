package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"task-manager-api/pkg/logger"
	"task-manager-api/pkg/utils"
)

// ErrorHandler renders every error that escapes a handler as {"error": ...}.
// Only *fiber.Error messages reach the client; anything else is a 500.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := utils.MsgInternalError

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			message = fe.Message
		}

		if code >= fiber.StatusInternalServerError {
			logger.ErrorContext(c.UserContext(), "Unhandled error", "error", err)
		}

		return utils.ErrorResponse(c, code, message)
	}
}
