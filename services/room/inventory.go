package room

import (
	"context"

	"hotel-booking/apperrors"
	roomModel "hotel-booking/models/room"
	"hotel-booking/storage"
)

// Update carries a partial room edit. Nil pointers leave fields untouched.
type Update struct {
	Number   *string
	Category *roomModel.Category
	Status   *roomModel.Status
	Price    *float64
}

// Inventory manages the room set. Direct edits here never touch a room that a
// non-terminal booking holds: the lifecycle engine is the only writer for
// booking-owned statuses.
type Inventory struct {
	store storage.Store
}

func NewInventory(store storage.Store) *Inventory {
	return &Inventory{store: store}
}

// Create adds a room to the inventory.
func (inv *Inventory) Create(ctx context.Context, number string, category roomModel.Category, status roomModel.Status, price float64) (*roomModel.Room, error) {
	if number == "" {
		return nil, apperrors.Validation("room number is required")
	}
	if price < 0 {
		return nil, apperrors.Validation("room price must not be negative")
	}
	if !category.IsValid() {
		return nil, apperrors.Validation("unknown room category %q", category)
	}
	if status == "" {
		status = roomModel.StatusAvailable
	}
	if !status.IsValid() {
		return nil, apperrors.Validation("unknown room status %q", status)
	}
	if status.IsEngineOwned() {
		return nil, apperrors.Validation("a new room cannot start as %s; that status is set by the booking lifecycle", status)
	}

	var created *roomModel.Room
	err := inv.store.Atomically(ctx, func(s storage.Store) error {
		existing, err := s.Rooms().FindByNumber(ctx, number)
		if err != nil {
			return err
		}
		if existing != nil {
			return apperrors.Conflict("room number %q already exists", number)
		}
		r := &roomModel.Room{
			Number:   number,
			Category: category,
			Status:   status,
			Price:    price,
		}
		if err := s.Rooms().Insert(ctx, r); err != nil {
			return err
		}
		created = r
		return nil
	})
	return created, err
}

// UpdateRoom applies a direct edit. Status edits are rejected while a
// non-terminal booking references the room, and the Booked/Occupied statuses
// can never be set here at all.
func (inv *Inventory) UpdateRoom(ctx context.Context, roomID uint, update Update) (*roomModel.Room, error) {
	var updated *roomModel.Room
	err := inv.store.Atomically(ctx, func(s storage.Store) error {
		r, err := s.Rooms().Get(ctx, roomID)
		if err != nil {
			return err
		}
		if r == nil {
			return apperrors.NotFound("room %d not found", roomID)
		}

		if update.Status != nil {
			if !update.Status.IsValid() {
				return apperrors.Validation("unknown room status %q", *update.Status)
			}
			if update.Status.IsEngineOwned() {
				return apperrors.Conflict("status %s is owned by the booking lifecycle and cannot be set directly", *update.Status)
			}
			active, err := s.Bookings().CountHoldingRoom(ctx, roomID)
			if err != nil {
				return err
			}
			if active > 0 {
				return apperrors.Conflict("room %s has an active booking; its status follows that booking", r.Number)
			}
			r.Status = *update.Status
		}
		if update.Number != nil {
			if *update.Number == "" {
				return apperrors.Validation("room number is required")
			}
			if *update.Number != r.Number {
				existing, err := s.Rooms().FindByNumber(ctx, *update.Number)
				if err != nil {
					return err
				}
				if existing != nil {
					return apperrors.Conflict("room number %q already exists", *update.Number)
				}
				r.Number = *update.Number
			}
		}
		if update.Category != nil {
			if !update.Category.IsValid() {
				return apperrors.Validation("unknown room category %q", *update.Category)
			}
			r.Category = *update.Category
		}
		if update.Price != nil {
			if *update.Price < 0 {
				return apperrors.Validation("room price must not be negative")
			}
			r.Price = *update.Price
		}

		if err := s.Rooms().Save(ctx, r); err != nil {
			return err
		}
		updated = r
		return nil
	})
	return updated, err
}

// Delete removes a room, refusing while any booking still holds it.
func (inv *Inventory) Delete(ctx context.Context, roomID uint) error {
	return inv.store.Atomically(ctx, func(s storage.Store) error {
		r, err := s.Rooms().Get(ctx, roomID)
		if err != nil {
			return err
		}
		if r == nil {
			return apperrors.NotFound("room %d not found", roomID)
		}
		active, err := s.Bookings().CountHoldingRoom(ctx, roomID)
		if err != nil {
			return err
		}
		if active > 0 {
			return apperrors.Conflict("room %s is referenced by an active booking and cannot be deleted", r.Number)
		}
		return s.Rooms().Delete(ctx, roomID)
	})
}

// FindAvailableByCategory returns some Available room of the category, or nil
// when the category is sold out. No hold is taken; booking creation re-checks
// with a conditional status update.
func (inv *Inventory) FindAvailableByCategory(ctx context.Context, category roomModel.Category) (*roomModel.Room, error) {
	if !category.IsValid() {
		return nil, apperrors.Validation("unknown room category %q", category)
	}
	return inv.store.Rooms().FindAvailableByCategory(ctx, category)
}

// List returns the whole inventory.
func (inv *Inventory) List(ctx context.Context) ([]roomModel.Room, error) {
	return inv.store.Rooms().List(ctx)
}

// Get returns one room by id.
func (inv *Inventory) Get(ctx context.Context, roomID uint) (*roomModel.Room, error) {
	r, err := inv.store.Rooms().Get(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, apperrors.NotFound("room %d not found", roomID)
	}
	return r, nil
}
