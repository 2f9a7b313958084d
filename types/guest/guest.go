package guest

import (
	"fmt"
)

// GuestCreateRequest registers a guest ahead of any booking.
type GuestCreateRequest struct {
	FullName    string `json:"full_name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Nationality string `json:"nationality"`
}

func (g GuestCreateRequest) Validate() error {
	if g.FullName == "" {
		return fmt.Errorf("full_name is required")
	}
	if g.Phone == "" {
		return fmt.Errorf("phone is required")
	}
	return nil
}

// GuestUpdateRequest merges fields into an existing guest; omitted fields
// are untouched.
type GuestUpdateRequest struct {
	FullName    *string `json:"full_name,omitempty"`
	Email       *string `json:"email,omitempty"`
	Nationality *string `json:"nationality,omitempty"`
	IDType      *string `json:"id_type,omitempty"`
	IDNumber    *string `json:"id_number,omitempty"`
}
