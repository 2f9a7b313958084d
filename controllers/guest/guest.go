package guest

import (
	"strconv"

	"hotel-booking/apperrors"
	"hotel-booking/logger"
	guestService "hotel-booking/services/guest"
	"hotel-booking/types"
	guestTypes "hotel-booking/types/guest"

	"github.com/gofiber/fiber/v2"
)

// GuestController handles guest registry HTTP requests
type GuestController struct {
	Registry *guestService.Registry
}

// NewGuestController creates a new guest controller
func NewGuestController(registry *guestService.Registry) *GuestController {
	return &GuestController{Registry: registry}
}

// Index lists all registered guests
func (gc *GuestController) Index(c *fiber.Ctx) error {
	guests, err := gc.Registry.List(c.Context())
	if err != nil {
		logger.Error("Failed to list guests", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to list guests",
		})
	}
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Guests retrieved successfully",
		Data:    guests,
	})
}

// Store registers a guest, reusing any existing record with the same phone
func (gc *GuestController) Store(c *fiber.Ctx) error {
	var req guestTypes.GuestCreateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
		})
	}

	attrs := guestService.Attributes{FullName: req.FullName}
	if req.Email != "" {
		attrs.Email = &req.Email
	}
	if req.Nationality != "" {
		attrs.Nationality = &req.Nationality
	}

	g, err := gc.Registry.ResolveOrCreate(c.Context(), req.Phone, attrs)
	if err != nil {
		logger.Error("Failed to resolve guest", err)
		return c.Status(apperrors.HTTPStatus(err)).JSON(types.ApiResponse{
			Status:  apperrors.HTTPStatus(err),
			Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Guest registered successfully",
		Data:    g,
	})
}

// Update merges contact and identity-document fields into a guest
func (gc *GuestController) Update(c *fiber.Ctx) error {
	guestID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid guest id",
		})
	}

	var req guestTypes.GuestUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	attrs := guestService.Attributes{
		Email:       req.Email,
		Nationality: req.Nationality,
		IDType:      req.IDType,
		IDNumber:    req.IDNumber,
	}
	if req.FullName != nil {
		attrs.FullName = *req.FullName
	}

	g, err := gc.Registry.Update(c.Context(), uint(guestID), attrs)
	if err != nil {
		logger.Error("Failed to update guest", err)
		return c.Status(apperrors.HTTPStatus(err)).JSON(types.ApiResponse{
			Status:  apperrors.HTTPStatus(err),
			Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Guest updated successfully",
		Data:    g,
	})
}
