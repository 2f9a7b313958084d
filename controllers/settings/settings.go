package settings

import (
	"hotel-booking/apperrors"
	"hotel-booking/logger"
	settingsModel "hotel-booking/models/settings"
	settingsService "hotel-booking/services/settings"
	"hotel-booking/types"

	"github.com/gofiber/fiber/v2"
)

// SettingsController handles front-desk settings HTTP requests
type SettingsController struct {
	Service *settingsService.Service
}

// NewSettingsController creates a new settings controller
func NewSettingsController(service *settingsService.Service) *SettingsController {
	return &SettingsController{Service: service}
}

// Show returns the current settings, falling back to defaults
func (sc *SettingsController) Show(c *fiber.Ctx) error {
	s, err := sc.Service.Get(c.Context())
	if err != nil {
		logger.Error("Failed to load settings", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to load settings",
		})
	}
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Settings retrieved successfully",
		Data:    s,
	})
}

// Update validates and stores new settings
func (sc *SettingsController) Update(c *fiber.Ctx) error {
	var req settingsModel.Settings
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	s, err := sc.Service.Update(c.Context(), req)
	if err != nil {
		logger.Error("Failed to update settings", err)
		return c.Status(apperrors.HTTPStatus(err)).JSON(types.ApiResponse{
			Status:  apperrors.HTTPStatus(err),
			Message: err.Error(),
		})
	}

	logger.Success("Settings updated")
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Settings updated successfully",
		Data:    s,
	})
}
