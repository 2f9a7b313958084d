package lifecycle

import (
	"context"
	"sync"
	"testing"
	"time"

	"hotel-booking/apperrors"
	bookingModel "hotel-booking/models/booking"
	roomModel "hotel-booking/models/room"
	"hotel-booking/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T, rooms ...roomModel.Room) (*Engine, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	for i := range rooms {
		require.NoError(t, store.Rooms().Insert(context.Background(), &rooms[i]))
	}
	return NewEngine(store), store
}

func standardRoom(number string, price float64) roomModel.Room {
	return roomModel.Room{
		Number:   number,
		Category: roomModel.CategoryStandard,
		Status:   roomModel.StatusAvailable,
		Price:    price,
	}
}

func testBookingInput() CreateBookingInput {
	return CreateBookingInput{
		GuestName:      "Amara Diallo",
		GuestPhone:     "+250 788 123 456",
		Category:       roomModel.CategoryStandard,
		CheckInDate:    time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		CheckOutDate:   time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC),
		NumberOfGuests: 2,
	}
}

func TestCreateBookingClaimsRoomAndConfirms(t *testing.T) {
	engine, store := newTestEngine(t, standardRoom("101", 80))
	ctx := context.Background()

	b, err := engine.CreateBooking(ctx, testBookingInput())
	require.NoError(t, err)

	assert.Equal(t, bookingModel.StatusConfirmed, b.Status)
	assert.NotEmpty(t, b.ReferenceCode)
	assert.Equal(t, "Amara Diallo", b.GuestName)
	assert.Equal(t, "+250788123456", b.GuestPhone)
	assert.Equal(t, "101", b.RoomNumber)
	assert.Equal(t, 80.0, b.RoomPrice)

	r, err := store.Rooms().Get(ctx, b.RoomID)
	require.NoError(t, err)
	assert.Equal(t, roomModel.StatusBooked, r.Status)

	g, err := store.Guests().FindByPhone(ctx, "+250788123456")
	require.NoError(t, err)
	require.NotNil(t, g)
	assert.Equal(t, g.ID, b.GuestID)
}

func TestCreateBookingReusesGuestByPhone(t *testing.T) {
	engine, store := newTestEngine(t, standardRoom("101", 80), standardRoom("102", 80))
	ctx := context.Background()

	first, err := engine.CreateBooking(ctx, testBookingInput())
	require.NoError(t, err)

	in := testBookingInput()
	in.GuestName = "A. Diallo" // same phone, different spelling
	second, err := engine.CreateBooking(ctx, in)
	require.NoError(t, err)

	assert.Equal(t, first.GuestID, second.GuestID)
	guests, err := store.Guests().List(ctx)
	require.NoError(t, err)
	assert.Len(t, guests, 1)
}

func TestCreateBookingValidation(t *testing.T) {
	engine, _ := newTestEngine(t, standardRoom("101", 80))
	ctx := context.Background()

	in := testBookingInput()
	in.CheckOutDate = in.CheckInDate
	_, err := engine.CreateBooking(ctx, in)
	assert.True(t, apperrors.Is(err, apperrors.KindValidation))

	in = testBookingInput()
	in.NumberOfGuests = 0
	_, err = engine.CreateBooking(ctx, in)
	assert.True(t, apperrors.Is(err, apperrors.KindValidation))

	in = testBookingInput()
	in.Category = "Penthouse"
	_, err = engine.CreateBooking(ctx, in)
	assert.True(t, apperrors.Is(err, apperrors.KindValidation))
}

func TestCreateBookingInventoryExhausted(t *testing.T) {
	engine, _ := newTestEngine(t, standardRoom("101", 80))
	ctx := context.Background()

	_, err := engine.CreateBooking(ctx, testBookingInput())
	require.NoError(t, err)

	_, err = engine.CreateBooking(ctx, testBookingInput())
	assert.True(t, apperrors.Is(err, apperrors.KindInventoryExhausted))
}

func TestConcurrentBookingsNeverShareARoom(t *testing.T) {
	engine, store := newTestEngine(t, standardRoom("101", 80))
	ctx := context.Background()

	const attempts = 8
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			in := testBookingInput()
			_, errs[i] = engine.CreateBooking(ctx, in)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.True(t, apperrors.Is(err, apperrors.KindInventoryExhausted) ||
				apperrors.Is(err, apperrors.KindConflict))
		}
	}
	assert.Equal(t, 1, succeeded, "exactly one booking may claim the single room")

	bookings, err := store.Bookings().List(ctx, storage.BookingFilter{})
	require.NoError(t, err)
	assert.Len(t, bookings, 1)
}

func TestCheckInRecordsDocumentAndOccupiesRoom(t *testing.T) {
	engine, store := newTestEngine(t, standardRoom("101", 80))
	ctx := context.Background()

	b, err := engine.CreateBooking(ctx, testBookingInput())
	require.NoError(t, err)

	checkedIn, err := engine.CheckIn(ctx, b.ID, IdentityDocument{
		IDType:      "Passport",
		IDNumber:    "PC1234567",
		Nationality: "Rwandan",
	})
	require.NoError(t, err)
	assert.Equal(t, bookingModel.StatusCheckedIn, checkedIn.Status)
	require.NotNil(t, checkedIn.ActualCheckInAt)

	r, err := store.Rooms().Get(ctx, b.RoomID)
	require.NoError(t, err)
	assert.Equal(t, roomModel.StatusOccupied, r.Status)

	g, err := store.Guests().Get(ctx, b.GuestID)
	require.NoError(t, err)
	require.NotNil(t, g.IDNumber)
	assert.Equal(t, "PC1234567", *g.IDNumber)
}

func TestCheckInRequiresConfirmed(t *testing.T) {
	engine, _ := newTestEngine(t, standardRoom("101", 80))
	ctx := context.Background()

	b, err := engine.CreateBooking(ctx, testBookingInput())
	require.NoError(t, err)

	_, err = engine.CheckIn(ctx, b.ID, IdentityDocument{})
	require.NoError(t, err)

	// A second check-in must be rejected.
	_, err = engine.CheckIn(ctx, b.ID, IdentityDocument{})
	assert.True(t, apperrors.Is(err, apperrors.KindInvalidState))

	_, err = engine.CheckIn(ctx, 9999, IdentityDocument{})
	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))
}

func TestCheckOutReleasesRoomAndLogsStay(t *testing.T) {
	engine, store := newTestEngine(t, roomModel.Room{
		Number: "301", Category: roomModel.CategoryLakeView,
		Status: roomModel.StatusAvailable, Price: 180,
	})
	ctx := context.Background()

	in := testBookingInput()
	in.Category = roomModel.CategoryLakeView
	b, err := engine.CreateBooking(ctx, in)
	require.NoError(t, err)
	_, err = engine.CheckIn(ctx, b.ID, IdentityDocument{IDType: "Passport", IDNumber: "PC1", Nationality: "Rwandan"})
	require.NoError(t, err)

	result, err := engine.CheckOut(ctx, b.ID)
	require.NoError(t, err)

	// Three planned nights at 180.
	assert.Equal(t, 3, result.Nights)
	assert.Equal(t, 540.0, result.Total)
	assert.Equal(t, "301", result.StayLog.RoomNumber)
	require.NotNil(t, result.StayLog.GuestIDNumber)
	assert.Equal(t, "PC1", *result.StayLog.GuestIDNumber)

	r, err := store.Rooms().Get(ctx, b.RoomID)
	require.NoError(t, err)
	assert.Equal(t, roomModel.StatusAvailable, r.Status)

	updated, err := store.Bookings().Get(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, bookingModel.StatusCheckedOut, updated.Status)

	logs, err := engine.StayLogs(ctx)
	require.NoError(t, err)
	assert.Len(t, logs, 1, "checkout writes exactly one stay log entry")

	// Checking out twice must fail and must not add a second entry.
	_, err = engine.CheckOut(ctx, b.ID)
	assert.True(t, apperrors.Is(err, apperrors.KindInvalidState))
	logs, err = engine.StayLogs(ctx)
	require.NoError(t, err)
	assert.Len(t, logs, 1)
}

func TestCheckOutRequiresCheckedIn(t *testing.T) {
	engine, _ := newTestEngine(t, standardRoom("101", 80))
	ctx := context.Background()

	b, err := engine.CreateBooking(ctx, testBookingInput())
	require.NoError(t, err)

	_, err = engine.CheckOut(ctx, b.ID)
	assert.True(t, apperrors.Is(err, apperrors.KindInvalidState))

	_, err = engine.CheckOut(ctx, 9999)
	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))
}

func TestCancelReleasesRoom(t *testing.T) {
	engine, store := newTestEngine(t, standardRoom("101", 80))
	ctx := context.Background()

	b, err := engine.CreateBooking(ctx, testBookingInput())
	require.NoError(t, err)

	cancelled, err := engine.Cancel(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, bookingModel.StatusCancelled, cancelled.Status)

	r, err := store.Rooms().Get(ctx, b.RoomID)
	require.NoError(t, err)
	assert.Equal(t, roomModel.StatusAvailable, r.Status)

	// The freed room can be booked again.
	_, err = engine.CreateBooking(ctx, testBookingInput())
	require.NoError(t, err)
}

func TestCancelOnlyFromConfirmed(t *testing.T) {
	engine, _ := newTestEngine(t, standardRoom("101", 80))
	ctx := context.Background()

	b, err := engine.CreateBooking(ctx, testBookingInput())
	require.NoError(t, err)
	_, err = engine.CheckIn(ctx, b.ID, IdentityDocument{})
	require.NoError(t, err)

	_, err = engine.Cancel(ctx, b.ID)
	assert.True(t, apperrors.Is(err, apperrors.KindInvalidState))
}

func TestListFiltersByStatusAndPhone(t *testing.T) {
	engine, _ := newTestEngine(t, standardRoom("101", 80), standardRoom("102", 80))
	ctx := context.Background()

	first, err := engine.CreateBooking(ctx, testBookingInput())
	require.NoError(t, err)

	in := testBookingInput()
	in.GuestName = "Jonas Weber"
	in.GuestPhone = "+49 151 000 1111"
	_, err = engine.CreateBooking(ctx, in)
	require.NoError(t, err)

	_, err = engine.Cancel(ctx, first.ID)
	require.NoError(t, err)

	confirmed := bookingModel.StatusConfirmed
	list, err := engine.List(ctx, storage.BookingFilter{Status: &confirmed})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Jonas Weber", list[0].GuestName)

	list, err = engine.List(ctx, storage.BookingFilter{GuestPhone: "+250788123456"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, bookingModel.StatusCancelled, list[0].Status)
}
