package room

import (
	"strconv"

	"hotel-booking/apperrors"
	"hotel-booking/logger"
	roomModel "hotel-booking/models/room"
	roomService "hotel-booking/services/room"
	"hotel-booking/types"
	roomTypes "hotel-booking/types/room"

	"github.com/gofiber/fiber/v2"
)

// RoomController handles room inventory HTTP requests
type RoomController struct {
	Inventory *roomService.Inventory
}

// NewRoomController creates a new room controller
func NewRoomController(inventory *roomService.Inventory) *RoomController {
	return &RoomController{Inventory: inventory}
}

// Index lists the whole room inventory
func (rc *RoomController) Index(c *fiber.Ctx) error {
	rooms, err := rc.Inventory.List(c.Context())
	if err != nil {
		logger.Error("Failed to list rooms", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to list rooms",
		})
	}
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Rooms retrieved successfully",
		Data:    rooms,
	})
}

// Store adds a room to the inventory
func (rc *RoomController) Store(c *fiber.Ctx) error {
	var req roomTypes.RoomCreateRequest
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

	created, err := rc.Inventory.Create(c.Context(),
		req.Number, roomModel.Category(req.Category), roomModel.Status(req.Status), req.Price)
	if err != nil {
		logger.Error("Failed to create room", err)
		return c.Status(apperrors.HTTPStatus(err)).JSON(types.ApiResponse{
			Status:  apperrors.HTTPStatus(err),
			Message: err.Error(),
		})
	}

	logger.Success("Room " + created.Number + " created")
	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Room created successfully",
		Data:    created,
	})
}

// Update applies a direct room edit
func (rc *RoomController) Update(c *fiber.Ctx) error {
	roomID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid room id",
		})
	}

	var req roomTypes.RoomUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	update := roomService.Update{Price: req.Price, Number: req.Number}
	if req.Category != nil {
		category := roomModel.Category(*req.Category)
		update.Category = &category
	}
	if req.Status != nil {
		status := roomModel.Status(*req.Status)
		update.Status = &status
	}

	updated, err := rc.Inventory.UpdateRoom(c.Context(), uint(roomID), update)
	if err != nil {
		logger.Error("Failed to update room", err)
		return c.Status(apperrors.HTTPStatus(err)).JSON(types.ApiResponse{
			Status:  apperrors.HTTPStatus(err),
			Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Room updated successfully",
		Data:    updated,
	})
}

// Destroy removes a room that no active booking references
func (rc *RoomController) Destroy(c *fiber.Ctx) error {
	roomID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid room id",
		})
	}

	if err := rc.Inventory.Delete(c.Context(), uint(roomID)); err != nil {
		logger.Error("Failed to delete room", err)
		return c.Status(apperrors.HTTPStatus(err)).JSON(types.ApiResponse{
			Status:  apperrors.HTTPStatus(err),
			Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Room deleted successfully",
	})
}
