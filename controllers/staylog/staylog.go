package staylog

import (
	"hotel-booking/logger"
	"hotel-booking/services/lifecycle"
	"hotel-booking/types"

	"github.com/gofiber/fiber/v2"
)

// StayLogController exposes the permanent stay history
type StayLogController struct {
	Engine *lifecycle.Engine
}

// NewStayLogController creates a new stay log controller
func NewStayLogController(engine *lifecycle.Engine) *StayLogController {
	return &StayLogController{Engine: engine}
}

// Index lists all completed stays, newest first
func (sc *StayLogController) Index(c *fiber.Ctx) error {
	logs, err := sc.Engine.StayLogs(c.Context())
	if err != nil {
		logger.Error("Failed to list stay logs", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to list stay logs",
		})
	}
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Stay logs retrieved successfully",
		Data:    logs,
	})
}
