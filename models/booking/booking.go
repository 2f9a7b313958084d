package booking

import (
	guestModel "hotel-booking/models/guest"
	roomModel "hotel-booking/models/room"
	"time"
)

// Booking represents a reservation tying one guest to one room.
//
// Guest and room attributes are denormalized into the booking at creation
// time so the record stays historically accurate even if the master guest or
// room rows are edited later. The foreign keys remain for live reads.
type Booking struct {
	ID            uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	ReferenceCode string `gorm:"type:varchar(36);not null;unique" json:"reference_code"`

	// Foreign key for guests relationship
	GuestID uint             `gorm:"not null;index" json:"guest_id"`
	Guest   guestModel.Guest `gorm:"foreignKey:GuestID" json:"guest"`

	// Guest snapshot taken at booking time
	GuestName  string  `gorm:"type:varchar(255);not null" json:"guest_name"`
	GuestPhone string  `gorm:"type:varchar(20);not null;index" json:"guest_phone"`
	GuestEmail *string `gorm:"type:varchar(255)" json:"guest_email,omitempty"`

	// Foreign key for rooms relationship
	RoomID uint           `gorm:"not null;index" json:"room_id"`
	Room   roomModel.Room `gorm:"foreignKey:RoomID" json:"room"`

	// Room snapshot taken at booking time
	RoomNumber   string             `gorm:"type:varchar(20);not null" json:"room_number"`
	RoomCategory roomModel.Category `gorm:"type:varchar(30);not null" json:"room_category"`
	RoomPrice    float64            `gorm:"type:numeric(10,2);not null" json:"room_price"`

	CheckInDate    time.Time `gorm:"not null" json:"check_in_date"`
	CheckOutDate   time.Time `gorm:"not null" json:"check_out_date"`
	NumberOfGuests int       `gorm:"not null;default:1" json:"number_of_guests"`

	Status Status `gorm:"type:varchar(20);not null;index" json:"status"`

	// ActualCheckInAt is recorded at the moment check-in runs, as opposed to
	// CreatedAt which is only the time the reservation was made.
	ActualCheckInAt *time.Time `json:"actual_check_in_at,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName sets the table name for the Booking model
func (Booking) TableName() string {
	return "bookings"
}

// IsTerminal reports whether the booking can no longer transition.
func (b *Booking) IsTerminal() bool {
	return b.Status.IsTerminal()
}
