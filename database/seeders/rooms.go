package seeders

import (
	"log"

	roomModel "hotel-booking/models/room"

	"gorm.io/gorm"
)

// SeedRooms loads the initial room inventory on an empty installation.
func SeedRooms(db *gorm.DB) {
	var count int64
	if err := db.Model(&roomModel.Room{}).Count(&count).Error; err != nil {
		log.Printf("❌ Failed to check room inventory: %v", err)
		return
	}
	if count > 0 {
		return
	}

	log.Printf("🔍 Room inventory is empty, seeding defaults...")

	rooms := []roomModel.Room{
		{Number: "101", Category: roomModel.CategoryStandard, Status: roomModel.StatusAvailable, Price: 80},
		{Number: "102", Category: roomModel.CategoryStandard, Status: roomModel.StatusAvailable, Price: 80},
		{Number: "103", Category: roomModel.CategoryStandard, Status: roomModel.StatusAvailable, Price: 85},
		{Number: "201", Category: roomModel.CategoryDeluxe, Status: roomModel.StatusAvailable, Price: 120},
		{Number: "202", Category: roomModel.CategoryDeluxe, Status: roomModel.StatusAvailable, Price: 120},
		{Number: "203", Category: roomModel.CategoryDeluxe, Status: roomModel.StatusAvailable, Price: 130},
		{Number: "301", Category: roomModel.CategoryLakeView, Status: roomModel.StatusAvailable, Price: 180},
		{Number: "302", Category: roomModel.CategoryLakeView, Status: roomModel.StatusAvailable, Price: 180},
	}

	for _, r := range rooms {
		if err := db.Create(&r).Error; err != nil {
			log.Printf("❌ Failed to seed room %s: %v", r.Number, err)
		}
	}

	log.Printf("✅ Seeded %d rooms", len(rooms))
}
