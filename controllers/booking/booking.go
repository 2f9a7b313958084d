package booking

import (
	"strconv"

	"hotel-booking/apperrors"
	"hotel-booking/logger"
	bookingModel "hotel-booking/models/booking"
	roomModel "hotel-booking/models/room"
	"hotel-booking/services/lifecycle"
	"hotel-booking/storage"
	"hotel-booking/types"
	bookingTypes "hotel-booking/types/booking"
	"hotel-booking/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
)

// BookingController handles booking lifecycle HTTP requests
type BookingController struct {
	Engine *lifecycle.Engine
}

// NewBookingController creates a new booking controller
func NewBookingController(engine *lifecycle.Engine) *BookingController {
	return &BookingController{Engine: engine}
}

// Index lists bookings, optionally filtered by status, guest phone or room
func (bc *BookingController) Index(c *fiber.Ctx) error {
	filter := storage.BookingFilter{}
	if status := c.Query("status"); status != "" {
		s := bookingModel.Status(status)
		if !s.IsValid() {
			return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Unknown booking status: " + status,
			})
		}
		filter.Status = &s
	}
	if phone := c.Query("phone"); phone != "" {
		filter.GuestPhone = utils.NormalizePhone(phone)
	}
	if roomID := c.Query("room_id"); roomID != "" {
		id, err := strconv.ParseUint(roomID, 10, 32)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Invalid room_id",
			})
		}
		filter.RoomID = uint(id)
	}

	bookings, err := bc.Engine.List(c.Context(), filter)
	if err != nil {
		logger.Error("Failed to list bookings", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to list bookings",
		})
	}
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Bookings retrieved successfully",
		Data:    bookings,
	})
}

// Show returns a single booking by id
func (bc *BookingController) Show(c *fiber.Ctx) error {
	bookingID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid booking id",
		})
	}

	b, err := bc.Engine.Get(c.Context(), uint(bookingID))
	if err != nil {
		return c.Status(apperrors.HTTPStatus(err)).JSON(types.ApiResponse{
			Status:  apperrors.HTTPStatus(err),
			Message: err.Error(),
		})
	}
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Booking retrieved successfully",
		Data:    b,
	})
}

// Store creates a booking: resolves the guest, claims a room of the requested
// category and confirms the reservation in one unit of work
func (bc *BookingController) Store(c *fiber.Ctx) error {
	var req bookingTypes.BookingCreateRequest
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

	checkIn, err := now.Parse(req.CheckInDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid check_in_date: " + req.CheckInDate,
		})
	}
	checkOut, err := now.Parse(req.CheckOutDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid check_out_date: " + req.CheckOutDate,
		})
	}

	input := lifecycle.CreateBookingInput{
		GuestName:      req.FullName,
		GuestPhone:     req.Phone,
		Category:       roomModel.Category(req.RoomCategory),
		CheckInDate:    checkIn,
		CheckOutDate:   checkOut,
		NumberOfGuests: req.NumberOfGuests,
	}
	if req.Email != "" {
		input.GuestEmail = &req.Email
	}

	b, err := bc.Engine.CreateBooking(c.Context(), input)
	if err != nil {
		logger.Error("Failed to create booking", err)
		return c.Status(apperrors.HTTPStatus(err)).JSON(types.ApiResponse{
			Status:  apperrors.HTTPStatus(err),
			Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Booking confirmed successfully",
		Data:    b,
	})
}

// CheckIn records the identity document and moves the booking to Checked In
func (bc *BookingController) CheckIn(c *fiber.Ctx) error {
	bookingID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid booking id",
		})
	}

	var req bookingTypes.CheckInRequest
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

	b, err := bc.Engine.CheckIn(c.Context(), uint(bookingID), lifecycle.IdentityDocument{
		IDType:      req.IDType,
		IDNumber:    req.IDNumber,
		Nationality: req.Nationality,
	})
	if err != nil {
		logger.Error("Failed to check in booking", err)
		return c.Status(apperrors.HTTPStatus(err)).JSON(types.ApiResponse{
			Status:  apperrors.HTTPStatus(err),
			Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Guest checked in successfully",
		Data:    b,
	})
}

// CheckOut closes the stay, releases the room and returns the bill
func (bc *BookingController) CheckOut(c *fiber.Ctx) error {
	bookingID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid booking id",
		})
	}

	result, err := bc.Engine.CheckOut(c.Context(), uint(bookingID))
	if err != nil {
		logger.Error("Failed to check out booking", err)
		return c.Status(apperrors.HTTPStatus(err)).JSON(types.ApiResponse{
			Status:  apperrors.HTTPStatus(err),
			Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Guest checked out successfully",
		Data:    result,
	})
}

// Cancel voids a Confirmed booking and releases its room
func (bc *BookingController) Cancel(c *fiber.Ctx) error {
	bookingID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid booking id",
		})
	}

	b, err := bc.Engine.Cancel(c.Context(), uint(bookingID))
	if err != nil {
		logger.Error("Failed to cancel booking", err)
		return c.Status(apperrors.HTTPStatus(err)).JSON(types.ApiResponse{
			Status:  apperrors.HTTPStatus(err),
			Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Booking cancelled successfully",
		Data:    b,
	})
}
