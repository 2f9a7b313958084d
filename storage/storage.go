package storage

import (
	"context"

	bookingModel "hotel-booking/models/booking"
	guestModel "hotel-booking/models/guest"
	roomModel "hotel-booking/models/room"
	staylogModel "hotel-booking/models/staylog"
)

// GuestStore persists guest registry records. Lookups return (nil, nil) when
// no record matches; there is deliberately no delete operation.
type GuestStore interface {
	Get(ctx context.Context, id uint) (*guestModel.Guest, error)
	FindByPhone(ctx context.Context, phone string) (*guestModel.Guest, error)
	Insert(ctx context.Context, g *guestModel.Guest) error
	Save(ctx context.Context, g *guestModel.Guest) error
	List(ctx context.Context) ([]guestModel.Guest, error)
}

// RoomStore persists the room inventory. UpdateStatusIf is the conditional
// write that closes the select-then-book race: it flips the status only when
// the current status still equals expected, and reports whether it did.
type RoomStore interface {
	Get(ctx context.Context, id uint) (*roomModel.Room, error)
	FindByNumber(ctx context.Context, number string) (*roomModel.Room, error)
	FindAvailableByCategory(ctx context.Context, category roomModel.Category) (*roomModel.Room, error)
	Insert(ctx context.Context, r *roomModel.Room) error
	Save(ctx context.Context, r *roomModel.Room) error
	Delete(ctx context.Context, id uint) error
	UpdateStatusIf(ctx context.Context, id uint, expected, next roomModel.Status) (bool, error)
	List(ctx context.Context) ([]roomModel.Room, error)
}

// BookingFilter narrows booking list queries.
type BookingFilter struct {
	Status     *bookingModel.Status
	GuestPhone string
	RoomID     uint
}

// BookingStore persists the booking ledger and its status event audit trail.
type BookingStore interface {
	Get(ctx context.Context, id uint) (*bookingModel.Booking, error)
	Insert(ctx context.Context, b *bookingModel.Booking) error
	Save(ctx context.Context, b *bookingModel.Booking) error
	UpdateStatusIf(ctx context.Context, id uint, expected, next bookingModel.Status) (bool, error)
	List(ctx context.Context, filter BookingFilter) ([]bookingModel.Booking, error)
	CountHoldingRoom(ctx context.Context, roomID uint) (int64, error)
	AppendEvent(ctx context.Context, ev *bookingModel.StatusEvent) error
}

// StayLogStore is append-only: completed stays are recorded once and never
// updated or deleted.
type StayLogStore interface {
	Append(ctx context.Context, entry *staylogModel.StayLog) error
	List(ctx context.Context) ([]staylogModel.StayLog, error)
}

// Store aggregates the entity stores and provides the unit-of-work boundary
// the lifecycle engine runs its guarded multi-entity writes inside. A failed
// fn rolls back every write made through the Store it received.
type Store interface {
	Guests() GuestStore
	Rooms() RoomStore
	Bookings() BookingStore
	StayLogs() StayLogStore
	Atomically(ctx context.Context, fn func(Store) error) error
}
