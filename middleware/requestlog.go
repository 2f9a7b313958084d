package middleware

import (
	"hotel-booking/logger"
	"hotel-booking/utils"

	"github.com/gofiber/fiber/v2"
)

// RequestLogger captures a sanitized copy of every request/response pair and
// hands it to the async logger after the handler chain finishes.
func RequestLogger(asyncLogger *logger.AsyncLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		asyncLogger.Log(utils.CreateSanitizedLogEntry(c))
		return err
	}
}
