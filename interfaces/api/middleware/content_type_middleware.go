package middleware

import (
	"github.com/gofiber/fiber/v2"

	"task-manager-api/pkg/utils"
)

// RequireJSON rejects POST and PUT requests whose body is not declared as
// application/json, before any parsing happens.
func RequireJSON() fiber.Handler {
	return func(c *fiber.Ctx) error {
		switch c.Method() {
		case fiber.MethodPost, fiber.MethodPut:
			if !c.Is("json") {
				return utils.UnsupportedMediaTypeResponse(c)
			}
		}
		return c.Next()
	}
}
