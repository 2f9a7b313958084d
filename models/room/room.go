package room

import (
	"time"
)

// Room represents a single hotel room in the inventory.
type Room struct {
	ID       uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	Number   string   `gorm:"type:varchar(20);not null;unique" json:"number"`
	Category Category `gorm:"type:varchar(30);not null" json:"category"`
	Status   Status   `gorm:"type:varchar(20);not null;default:Available" json:"status"`
	Price    float64  `gorm:"type:numeric(10,2);not null" json:"price"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName sets the table name for the Room model
func (Room) TableName() string {
	return "rooms"
}
