package booking

import (
	"fmt"
)

// BookingCreateRequest is the payload for creating a booking. Dates are
// calendar dates in YYYY-MM-DD form.
type BookingCreateRequest struct {
	FullName       string `json:"full_name"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	RoomCategory   string `json:"room_category"`
	CheckInDate    string `json:"check_in_date"`
	CheckOutDate   string `json:"check_out_date"`
	NumberOfGuests int    `json:"number_of_guests"`
}

func (b BookingCreateRequest) Validate() error {
	if b.FullName == "" {
		return fmt.Errorf("full_name is required")
	}
	if b.Phone == "" {
		return fmt.Errorf("phone is required")
	}
	if b.RoomCategory == "" {
		return fmt.Errorf("room_category is required")
	}
	if b.CheckInDate == "" {
		return fmt.Errorf("check_in_date is required")
	}
	if b.CheckOutDate == "" {
		return fmt.Errorf("check_out_date is required")
	}
	if b.NumberOfGuests < 1 {
		return fmt.Errorf("number_of_guests must be at least 1")
	}
	return nil
}

// CheckInRequest carries the identity document recorded at the desk.
type CheckInRequest struct {
	IDType      string `json:"id_type"`
	IDNumber    string `json:"id_number"`
	Nationality string `json:"nationality"`
}

func (r CheckInRequest) Validate() error {
	if r.IDType == "" {
		return fmt.Errorf("id_type is required")
	}
	if r.IDNumber == "" {
		return fmt.Errorf("id_number is required")
	}
	if r.Nationality == "" {
		return fmt.Errorf("nationality is required")
	}
	return nil
}
