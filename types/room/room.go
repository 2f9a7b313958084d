package room

import (
	"fmt"
)

// RoomCreateRequest is the payload for adding a room to the inventory.
type RoomCreateRequest struct {
	Number   string  `json:"number"`
	Category string  `json:"category"`
	Status   string  `json:"status"`
	Price    float64 `json:"price"`
}

func (r RoomCreateRequest) Validate() error {
	if r.Number == "" {
		return fmt.Errorf("number is required")
	}
	if r.Category == "" {
		return fmt.Errorf("category is required")
	}
	if r.Price < 0 {
		return fmt.Errorf("price must not be negative")
	}
	return nil
}

// RoomUpdateRequest is a partial room edit; omitted fields are untouched.
type RoomUpdateRequest struct {
	Number   *string  `json:"number,omitempty"`
	Category *string  `json:"category,omitempty"`
	Status   *string  `json:"status,omitempty"`
	Price    *float64 `json:"price,omitempty"`
}
