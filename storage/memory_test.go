package storage

import (
	"context"
	"errors"
	"testing"

	bookingModel "hotel-booking/models/booking"
	guestModel "hotel-booking/models/guest"
	roomModel "hotel-booking/models/room"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRollsBackFailedTransaction(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	boom := errors.New("boom")
	err := store.Atomically(ctx, func(s Store) error {
		if err := s.Guests().Insert(ctx, &guestModel.Guest{FullName: "Amara", Phone: "+111"}); err != nil {
			return err
		}
		if err := s.Rooms().Insert(ctx, &roomModel.Room{Number: "101", Category: roomModel.CategoryStandard, Status: roomModel.StatusAvailable}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	guests, err := store.Guests().List(ctx)
	require.NoError(t, err)
	assert.Empty(t, guests, "failed transaction leaves no guest behind")

	rooms, err := store.Rooms().List(ctx)
	require.NoError(t, err)
	assert.Empty(t, rooms, "failed transaction leaves no room behind")
}

func TestMemoryStoreCommitsSuccessfulTransaction(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	err := store.Atomically(ctx, func(s Store) error {
		return s.Guests().Insert(ctx, &guestModel.Guest{FullName: "Amara", Phone: "+111"})
	})
	require.NoError(t, err)

	g, err := store.Guests().FindByPhone(ctx, "+111")
	require.NoError(t, err)
	require.NotNil(t, g)
	assert.Equal(t, "Amara", g.FullName)
}

func TestNestedAtomicallyContinuesSameUnitOfWork(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	boom := errors.New("boom")
	err := store.Atomically(ctx, func(s Store) error {
		if err := s.Guests().Insert(ctx, &guestModel.Guest{FullName: "Outer", Phone: "+1"}); err != nil {
			return err
		}
		return s.Atomically(ctx, func(inner Store) error {
			if err := inner.Guests().Insert(ctx, &guestModel.Guest{FullName: "Inner", Phone: "+2"}); err != nil {
				return err
			}
			return boom
		})
	})
	require.ErrorIs(t, err, boom)

	guests, err := store.Guests().List(ctx)
	require.NoError(t, err)
	assert.Empty(t, guests, "inner failure rolls back the whole unit of work")
}

func TestRoomUpdateStatusIf(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	r := &roomModel.Room{Number: "101", Category: roomModel.CategoryStandard, Status: roomModel.StatusAvailable}
	require.NoError(t, store.Rooms().Insert(ctx, r))

	ok, err := store.Rooms().UpdateStatusIf(ctx, r.ID, roomModel.StatusAvailable, roomModel.StatusBooked)
	require.NoError(t, err)
	assert.True(t, ok)

	// The expected status no longer matches, so the flip must not apply.
	ok, err = store.Rooms().UpdateStatusIf(ctx, r.ID, roomModel.StatusAvailable, roomModel.StatusBooked)
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := store.Rooms().Get(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, roomModel.StatusBooked, got.Status)

	ok, err = store.Rooms().UpdateStatusIf(ctx, 9999, roomModel.StatusAvailable, roomModel.StatusBooked)
	require.NoError(t, err)
	assert.False(t, ok, "missing room reports false, not an error")
}

func TestBookingUpdateStatusIf(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	b := &bookingModel.Booking{Status: bookingModel.StatusConfirmed}
	require.NoError(t, store.Bookings().Insert(ctx, b))

	ok, err := store.Bookings().UpdateStatusIf(ctx, b.ID, bookingModel.StatusConfirmed, bookingModel.StatusCheckedIn)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Bookings().UpdateStatusIf(ctx, b.ID, bookingModel.StatusConfirmed, bookingModel.StatusCancelled)
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := store.Bookings().Get(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, bookingModel.StatusCheckedIn, got.Status)
}

func TestMemoryStoreUniqueConstraints(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Guests().Insert(ctx, &guestModel.Guest{FullName: "A", Phone: "+1"}))
	err := store.Guests().Insert(ctx, &guestModel.Guest{FullName: "B", Phone: "+1"})
	assert.Error(t, err, "guest phone is unique")

	require.NoError(t, store.Rooms().Insert(ctx, &roomModel.Room{Number: "101", Category: roomModel.CategoryStandard, Status: roomModel.StatusAvailable}))
	err = store.Rooms().Insert(ctx, &roomModel.Room{Number: "101", Category: roomModel.CategoryDeluxe, Status: roomModel.StatusAvailable})
	assert.Error(t, err, "room number is unique")
}

func TestCountHoldingRoom(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Bookings().Insert(ctx, &bookingModel.Booking{RoomID: 1, Status: bookingModel.StatusConfirmed}))
	require.NoError(t, store.Bookings().Insert(ctx, &bookingModel.Booking{RoomID: 1, Status: bookingModel.StatusCheckedOut}))
	require.NoError(t, store.Bookings().Insert(ctx, &bookingModel.Booking{RoomID: 2, Status: bookingModel.StatusCheckedIn}))

	count, err := store.Bookings().CountHoldingRoom(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count, "terminal bookings do not hold the room")
}
