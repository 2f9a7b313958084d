package room

// Category is the fixed room tier enumeration.
type Category string

const (
	CategoryStandard Category = "Standard"
	CategoryDeluxe   Category = "Deluxe"
	CategoryLakeView Category = "Lake View"
)

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryStandard, CategoryDeluxe, CategoryLakeView:
		return true
	default:
		return false
	}
}

// GetAllCategories returns all valid room categories
func GetAllCategories() []Category {
	return []Category{
		CategoryStandard,
		CategoryDeluxe,
		CategoryLakeView,
	}
}

// Status is the current occupancy status of a room.
type Status string

const (
	StatusAvailable Status = "Available"
	StatusBooked    Status = "Booked"
	StatusOccupied  Status = "Occupied"
	StatusCleaning  Status = "Cleaning"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusBooked, StatusOccupied, StatusCleaning:
		return true
	default:
		return false
	}
}

// IsEngineOwned reports whether the status may only be written by the
// booking lifecycle engine while a booking references the room.
func (s Status) IsEngineOwned() bool {
	return s == StatusBooked || s == StatusOccupied
}

// GetAllStatuses returns all valid room statuses
func GetAllStatuses() []Status {
	return []Status{
		StatusAvailable,
		StatusBooked,
		StatusOccupied,
		StatusCleaning,
	}
}
