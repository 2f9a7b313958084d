package booking

// Status is the lifecycle status of a booking. Transitions only ever move
// forward: Confirmed -> Checked In -> Checked Out, or Confirmed -> Cancelled.
type Status string

const (
	StatusConfirmed  Status = "Confirmed"
	StatusCheckedIn  Status = "Checked In"
	StatusCheckedOut Status = "Checked Out"
	StatusCancelled  Status = "Cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusCheckedIn, StatusCheckedOut, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition may leave the status.
func (s Status) IsTerminal() bool {
	return s == StatusCheckedOut || s == StatusCancelled
}

// HoldsRoom reports whether a booking in this status still holds its room
// out of general availability.
func (s Status) HoldsRoom() bool {
	return s == StatusConfirmed || s == StatusCheckedIn
}

// CanTransitionTo reports whether the state machine permits moving from s
// to next.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusConfirmed:
		return next == StatusCheckedIn || next == StatusCancelled
	case StatusCheckedIn:
		return next == StatusCheckedOut
	default:
		return false
	}
}

// GetAllStatuses returns all valid booking statuses
func GetAllStatuses() []Status {
	return []Status{
		StatusConfirmed,
		StatusCheckedIn,
		StatusCheckedOut,
		StatusCancelled,
	}
}
