package assistant

import (
	"fmt"

	"hotel-booking/apperrors"
	"hotel-booking/logger"
	assistantService "hotel-booking/services/assistant"
	"hotel-booking/types"

	"github.com/gofiber/fiber/v2"
)

// AssistantController parses free-text front-desk commands into structured
// intents the client can confirm before executing.
type AssistantController struct {
	Service *assistantService.Service
}

// NewAssistantController creates a new assistant controller
func NewAssistantController(service *assistantService.Service) *AssistantController {
	return &AssistantController{Service: service}
}

type commandRequest struct {
	Command string `json:"command"`
}

// ParseCommand extracts a structured intent from a typed or transcribed command
func (ac *AssistantController) ParseCommand(c *fiber.Ctx) error {
	var req commandRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	intent, err := ac.Service.ParseCommand(c.Context(), req.Command)
	if err != nil {
		logger.Error("Failed to parse command", err)
		return c.Status(apperrors.HTTPStatus(err)).JSON(types.ApiResponse{
			Status:  apperrors.HTTPStatus(err),
			Message: err.Error(),
		})
	}

	logger.Info(fmt.Sprintf("Command parsed: action=%s", intent.Action))
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Command parsed successfully",
		Data:    intent,
	})
}
