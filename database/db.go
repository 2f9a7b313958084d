package database

import (
	"fmt"
	"os"

	"hotel-booking/logger"
	bookingModel "hotel-booking/models/booking"
	guestModel "hotel-booking/models/guest"
	logModel "hotel-booking/models/log"
	roomModel "hotel-booking/models/room"
	staylogModel "hotel-booking/models/staylog"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB opens the PostgreSQL connection, migrates the schema and creates
// supporting indexes.
func InitDB() (*gorm.DB, error) {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		logger.Error("Error loading .env file", err)
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	database := os.Getenv("DB_DATABASE")
	user := os.Getenv("DB_USERNAME")
	password := os.Getenv("DB_PASSWORD")
	sslmode := os.Getenv("DB_SSLMODE")

	if sslmode == "" {
		sslmode = "disable"
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, database, sslmode)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Error("Failed to connect to the database", err)
		return nil, err
	}
	logger.Success("Successfully connected to the database")

	if err := autoMigrate(); err != nil {
		logger.Error("Failed to run migrations", err)
		return nil, err
	}
	logger.Success("All migrations completed successfully")

	if err := createIndexes(); err != nil {
		logger.Error("Failed to create indexes", err)
		return nil, err
	}
	logger.Success("All indexes created successfully")

	return DB, nil
}

// autoMigrate runs auto migration for all models, dependencies first.
func autoMigrate() error {
	// Stage 1: entities with no foreign keys
	stage1Models := []interface{}{
		&guestModel.Guest{},
		&roomModel.Room{},
	}

	for _, model := range stage1Models {
		if err := DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	// Stage 2: entities referencing stage 1
	stage2Models := []interface{}{
		&bookingModel.Booking{},
		&bookingModel.StatusEvent{},
		&staylogModel.StayLog{},
	}

	for _, model := range stage2Models {
		if err := DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	// Logging
	if err := DB.AutoMigrate(&logModel.Log{}); err != nil {
		return fmt.Errorf("failed to migrate %T: %w", &logModel.Log{}, err)
	}

	return nil
}

// createIndexes creates additional indexes for better performance
func createIndexes() error {
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_guests_phone ON guests(phone)").Error; err != nil {
		return fmt.Errorf("failed to create guest phone index: %w", err)
	}

	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_rooms_category_status ON rooms(category, status)").Error; err != nil {
		return fmt.Errorf("failed to create room category/status index: %w", err)
	}

	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_bookings_room_status ON bookings(room_id, status)").Error; err != nil {
		return fmt.Errorf("failed to create booking room/status index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_bookings_created_at ON bookings(created_at)").Error; err != nil {
		return fmt.Errorf("failed to create booking created_at index: %w", err)
	}

	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_stay_logs_actual_check_out ON stay_logs(actual_check_out)").Error; err != nil {
		return fmt.Errorf("failed to create stay log actual_check_out index: %w", err)
	}

	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_logs_created_at ON logs(created_at)").Error; err != nil {
		return fmt.Errorf("failed to create log created_at index: %w", err)
	}

	return nil
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return DB
}
