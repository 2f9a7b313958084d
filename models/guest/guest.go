package guest

import (
	"time"
)

// Guest represents a registered hotel guest. The phone number is the natural
// dedup key: one registry record per phone, never duplicated and never deleted.
type Guest struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	FullName    string  `gorm:"type:varchar(255);not null" json:"full_name"`
	Phone       string  `gorm:"type:varchar(20);not null;unique" json:"phone"`
	Email       *string `gorm:"type:varchar(255)" json:"email,omitempty"`
	Nationality *string `gorm:"type:varchar(100)" json:"nationality,omitempty"`
	IDType      *string `gorm:"type:varchar(50)" json:"id_type,omitempty"`
	IDNumber    *string `gorm:"type:varchar(100)" json:"id_number,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName sets the table name for the Guest model
func (Guest) TableName() string {
	return "guests"
}
