package routes

import (
	assistantController "hotel-booking/controllers/assistant"
	bookingController "hotel-booking/controllers/booking"
	guestController "hotel-booking/controllers/guest"
	roomController "hotel-booking/controllers/room"
	settingsController "hotel-booking/controllers/settings"
	staylogController "hotel-booking/controllers/staylog"
	"hotel-booking/logger"
	"hotel-booking/middleware"
	assistantService "hotel-booking/services/assistant"
	guestService "hotel-booking/services/guest"
	"hotel-booking/services/lifecycle"
	roomService "hotel-booking/services/room"
	settingsService "hotel-booking/services/settings"
	"hotel-booking/storage"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	store := storage.NewGormStore(db)
	settingsStore := storage.NewSettingsStore(storage.Redis)

	engine := lifecycle.NewEngine(store)
	rooms := roomController.NewRoomController(roomService.NewInventory(store))
	guests := guestController.NewGuestController(guestService.NewRegistry(store))
	bookings := bookingController.NewBookingController(engine)
	stayLogs := staylogController.NewStayLogController(engine)
	settings := settingsController.NewSettingsController(settingsService.NewService(settingsStore))
	assistant := assistantController.NewAssistantController(assistantService.NewService())

	asyncLogger := logger.NewAsyncLogger(db)

	// Start the async logger processing goroutine
	go asyncLogger.ProcessLog()

	app.Use(middleware.RequestLogger(asyncLogger))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	api := app.Group("/api")

	/*=============================================================================
	| Room Inventory Routes
	===============================================================================*/
	roomGroup := api.Group("/rooms")
	roomGroup.Get("/", rooms.Index)
	roomGroup.Post("/", rooms.Store)
	roomGroup.Patch("/:id", rooms.Update)
	roomGroup.Delete("/:id", rooms.Destroy)

	/*=============================================================================
	| Guest Registry Routes
	===============================================================================*/
	guestGroup := api.Group("/guests")
	guestGroup.Get("/", guests.Index)
	guestGroup.Post("/", guests.Store)
	guestGroup.Patch("/:id", guests.Update)

	/*=============================================================================
	| Booking Lifecycle Routes
	===============================================================================*/
	bookingGroup := api.Group("/bookings")
	bookingGroup.Get("/", bookings.Index)
	bookingGroup.Post("/", bookings.Store)
	bookingGroup.Get("/:id", bookings.Show)
	bookingGroup.Post("/:id/check-in", bookings.CheckIn)
	bookingGroup.Post("/:id/check-out", bookings.CheckOut)
	bookingGroup.Post("/:id/cancel", bookings.Cancel)

	/*=============================================================================
	| Stay History Routes
	===============================================================================*/
	api.Get("/stay-logs", stayLogs.Index)

	/*=============================================================================
	| Settings Routes
	===============================================================================*/
	api.Get("/settings", settings.Show)
	api.Put("/settings", settings.Update)

	/*=============================================================================
	| Assistant Routes
	===============================================================================*/
	api.Post("/assistant/command", assistant.ParseCommand)
}
