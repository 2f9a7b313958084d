package staylog

import (
	roomModel "hotel-booking/models/room"
	"time"
)

// StayLog is the permanent record of a completed stay, written exactly once
// when a booking checks out. It embeds guest and room snapshots so the record
// survives later edits, archival or pruning of the booking ledger. Rows are
// append-only: no update or delete path exists.
type StayLog struct {
	ID string `gorm:"type:varchar(36);primaryKey" json:"id"`

	BookingID uint `gorm:"not null;index" json:"booking_id"`

	GuestID          uint    `gorm:"not null;index" json:"guest_id"`
	GuestName        string  `gorm:"type:varchar(255);not null" json:"guest_name"`
	GuestPhone       string  `gorm:"type:varchar(20);not null" json:"guest_phone"`
	GuestEmail       *string `gorm:"type:varchar(255)" json:"guest_email,omitempty"`
	GuestNationality *string `gorm:"type:varchar(100)" json:"guest_nationality,omitempty"`
	GuestIDType      *string `gorm:"type:varchar(50)" json:"guest_id_type,omitempty"`
	GuestIDNumber    *string `gorm:"type:varchar(100)" json:"guest_id_number,omitempty"`

	RoomID       uint               `gorm:"not null;index" json:"room_id"`
	RoomNumber   string             `gorm:"type:varchar(20);not null" json:"room_number"`
	RoomCategory roomModel.Category `gorm:"type:varchar(30);not null" json:"room_category"`
	RoomPrice    float64            `gorm:"type:numeric(10,2);not null" json:"room_price"`

	CheckInDate  time.Time `gorm:"not null" json:"check_in_date"`
	CheckOutDate time.Time `gorm:"not null" json:"check_out_date"`

	ActualCheckIn  time.Time `gorm:"not null" json:"actual_check_in"`
	ActualCheckOut time.Time `gorm:"not null" json:"actual_check_out"`

	Nights int     `gorm:"not null" json:"nights"`
	Total  float64 `gorm:"type:numeric(10,2);not null" json:"total"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName sets the table name for the StayLog model
func (StayLog) TableName() string {
	return "stay_logs"
}
