package room

import (
	"context"
	"testing"

	"hotel-booking/apperrors"
	bookingModel "hotel-booking/models/booking"
	roomModel "hotel-booking/models/room"
	"hotel-booking/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRoom(t *testing.T) {
	inv := NewInventory(storage.NewMemoryStore())
	ctx := context.Background()

	r, err := inv.Create(ctx, "101", roomModel.CategoryStandard, "", 80)
	require.NoError(t, err)
	assert.Equal(t, roomModel.StatusAvailable, r.Status, "status defaults to Available")

	_, err = inv.Create(ctx, "101", roomModel.CategoryDeluxe, roomModel.StatusAvailable, 120)
	assert.True(t, apperrors.Is(err, apperrors.KindConflict), "duplicate room number")

	_, err = inv.Create(ctx, "", roomModel.CategoryStandard, roomModel.StatusAvailable, 80)
	assert.True(t, apperrors.Is(err, apperrors.KindValidation))

	_, err = inv.Create(ctx, "102", roomModel.CategoryStandard, roomModel.StatusAvailable, -1)
	assert.True(t, apperrors.Is(err, apperrors.KindValidation))

	_, err = inv.Create(ctx, "102", "Penthouse", roomModel.StatusAvailable, 80)
	assert.True(t, apperrors.Is(err, apperrors.KindValidation))

	_, err = inv.Create(ctx, "102", roomModel.CategoryStandard, roomModel.StatusBooked, 80)
	assert.True(t, apperrors.Is(err, apperrors.KindValidation), "engine-owned initial status")
}

func TestUpdateRoomDirectEdits(t *testing.T) {
	store := storage.NewMemoryStore()
	inv := NewInventory(store)
	ctx := context.Background()

	r, err := inv.Create(ctx, "101", roomModel.CategoryStandard, roomModel.StatusAvailable, 80)
	require.NoError(t, err)

	price := 95.0
	cleaning := roomModel.StatusCleaning
	updated, err := inv.UpdateRoom(ctx, r.ID, Update{Price: &price, Status: &cleaning})
	require.NoError(t, err)
	assert.Equal(t, 95.0, updated.Price)
	assert.Equal(t, roomModel.StatusCleaning, updated.Status)

	booked := roomModel.StatusBooked
	_, err = inv.UpdateRoom(ctx, r.ID, Update{Status: &booked})
	assert.True(t, apperrors.Is(err, apperrors.KindConflict), "Booked is never directly settable")

	_, err = inv.UpdateRoom(ctx, 9999, Update{Price: &price})
	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))
}

func TestUpdateRoomStatusBlockedByActiveBooking(t *testing.T) {
	store := storage.NewMemoryStore()
	inv := NewInventory(store)
	ctx := context.Background()

	r, err := inv.Create(ctx, "101", roomModel.CategoryStandard, roomModel.StatusAvailable, 80)
	require.NoError(t, err)

	require.NoError(t, store.Bookings().Insert(ctx, &bookingModel.Booking{
		RoomID: r.ID,
		Status: bookingModel.StatusConfirmed,
	}))

	cleaning := roomModel.StatusCleaning
	_, err = inv.UpdateRoom(ctx, r.ID, Update{Status: &cleaning})
	assert.True(t, apperrors.Is(err, apperrors.KindConflict))

	// Non-status edits are still allowed.
	price := 90.0
	_, err = inv.UpdateRoom(ctx, r.ID, Update{Price: &price})
	require.NoError(t, err)
}

func TestDeleteRoomBlockedByActiveBooking(t *testing.T) {
	store := storage.NewMemoryStore()
	inv := NewInventory(store)
	ctx := context.Background()

	r, err := inv.Create(ctx, "101", roomModel.CategoryStandard, roomModel.StatusAvailable, 80)
	require.NoError(t, err)

	b := &bookingModel.Booking{RoomID: r.ID, Status: bookingModel.StatusCheckedIn}
	require.NoError(t, store.Bookings().Insert(ctx, b))

	err = inv.Delete(ctx, r.ID)
	assert.True(t, apperrors.Is(err, apperrors.KindConflict))

	// Once the booking reaches a terminal status the room can go.
	b.Status = bookingModel.StatusCheckedOut
	require.NoError(t, store.Bookings().Save(ctx, b))
	require.NoError(t, inv.Delete(ctx, r.ID))

	err = inv.Delete(ctx, r.ID)
	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))
}

func TestFindAvailableByCategory(t *testing.T) {
	store := storage.NewMemoryStore()
	inv := NewInventory(store)
	ctx := context.Background()

	_, err := inv.Create(ctx, "201", roomModel.CategoryDeluxe, roomModel.StatusAvailable, 120)
	require.NoError(t, err)

	r, err := inv.FindAvailableByCategory(ctx, roomModel.CategoryDeluxe)
	require.NoError(t, err)
	require.NotNil(t, r)
	assert.Equal(t, "201", r.Number)

	r, err = inv.FindAvailableByCategory(ctx, roomModel.CategoryLakeView)
	require.NoError(t, err)
	assert.Nil(t, r, "sold-out category returns nil, not an error")

	_, err = inv.FindAvailableByCategory(ctx, "Penthouse")
	assert.True(t, apperrors.Is(err, apperrors.KindValidation))
}
