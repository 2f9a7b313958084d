package lifecycle

import (
	"context"
	"fmt"
	"time"

	"hotel-booking/apperrors"
	"hotel-booking/logger"
	bookingModel "hotel-booking/models/booking"
	roomModel "hotel-booking/models/room"
	staylogModel "hotel-booking/models/staylog"
	guestService "hotel-booking/services/guest"
	"hotel-booking/storage"

	"github.com/google/uuid"
)

// Engine orchestrates the booking lifecycle across the guest registry, the
// room inventory, the booking ledger and the stay history. Every operation
// runs as one atomic unit of work: either all of its writes land, or none do,
// so room status, booking status and guest identity can never be observed
// contradicting each other.
type Engine struct {
	store storage.Store
}

func NewEngine(store storage.Store) *Engine {
	return &Engine{store: store}
}

// CreateBookingInput is the request to reserve a room.
type CreateBookingInput struct {
	GuestName      string
	GuestPhone     string
	GuestEmail     *string
	Category       roomModel.Category
	CheckInDate    time.Time
	CheckOutDate   time.Time
	NumberOfGuests int
}

// IdentityDocument is the ID information recorded at check-in.
type IdentityDocument struct {
	IDType      string
	IDNumber    string
	Nationality string
}

// CheckOutResult is the outcome of a checkout: the permanent stay record plus
// the computed bill. The bill is returned to the caller but never written
// back onto the booking.
type CheckOutResult struct {
	StayLog *staylogModel.StayLog `json:"stay_log"`
	Nights  int                   `json:"nights"`
	Total   float64               `json:"total"`
}

// How many times room selection retries after losing the conditional
// Available -> Booked update to a concurrent booking.
const roomSelectRetries = 3

// CreateBooking resolves the guest by phone, claims an Available room of the
// requested category with a conditional status update, and records the
// booking as Confirmed with guest and room snapshots.
func (e *Engine) CreateBooking(ctx context.Context, in CreateBookingInput) (*bookingModel.Booking, error) {
	if !in.CheckOutDate.After(in.CheckInDate) {
		return nil, apperrors.Validation("check-out date must be after check-in date")
	}
	if in.NumberOfGuests < 1 {
		return nil, apperrors.Validation("number of guests must be at least 1")
	}
	if !in.Category.IsValid() {
		return nil, apperrors.Validation("unknown room category %q", in.Category)
	}

	var created *bookingModel.Booking
	err := e.store.Atomically(ctx, func(s storage.Store) error {
		g, err := guestService.ResolveOrCreateIn(ctx, s, in.GuestPhone, guestService.Attributes{
			FullName: in.GuestName,
			Email:    in.GuestEmail,
		})
		if err != nil {
			return err
		}

		// Claim a room: the find and the Available -> Booked flip are not
		// one statement, so the flip re-checks the status and we retry when
		// a concurrent booking wins the same room.
		var claimed *roomModel.Room
		for attempt := 0; attempt < roomSelectRetries; attempt++ {
			candidate, err := s.Rooms().FindAvailableByCategory(ctx, in.Category)
			if err != nil {
				return err
			}
			if candidate == nil {
				return apperrors.InventoryExhausted("no %s room is available", in.Category)
			}
			ok, err := s.Rooms().UpdateStatusIf(ctx, candidate.ID, roomModel.StatusAvailable, roomModel.StatusBooked)
			if err != nil {
				return err
			}
			if ok {
				claimed = candidate
				break
			}
		}
		if claimed == nil {
			return apperrors.Conflict("lost the room to a concurrent booking; retry")
		}

		b := &bookingModel.Booking{
			ReferenceCode:  uuid.NewString(),
			GuestID:        g.ID,
			GuestName:      g.FullName,
			GuestPhone:     g.Phone,
			GuestEmail:     g.Email,
			RoomID:         claimed.ID,
			RoomNumber:     claimed.Number,
			RoomCategory:   claimed.Category,
			RoomPrice:      claimed.Price,
			CheckInDate:    in.CheckInDate,
			CheckOutDate:   in.CheckOutDate,
			NumberOfGuests: in.NumberOfGuests,
			Status:         bookingModel.StatusConfirmed,
		}
		if err := s.Bookings().Insert(ctx, b); err != nil {
			return err
		}
		if err := s.Bookings().AppendEvent(ctx, &bookingModel.StatusEvent{
			BookingID: b.ID,
			Status:    bookingModel.StatusConfirmed,
			Note:      "booking created",
		}); err != nil {
			return err
		}
		created = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Success(fmt.Sprintf("Booking %s created: guest %s, room %s, %s - %s",
		created.ReferenceCode, created.GuestName, created.RoomNumber,
		created.CheckInDate.Format("2006-01-02"), created.CheckOutDate.Format("2006-01-02")))
	return created, nil
}

// CheckIn records the guest's identity document, moves the booking from
// Confirmed to Checked In and the room from Booked to Occupied. The three
// effects hold together or not at all.
func (e *Engine) CheckIn(ctx context.Context, bookingID uint, doc IdentityDocument) (*bookingModel.Booking, error) {
	var checkedIn *bookingModel.Booking
	err := e.store.Atomically(ctx, func(s storage.Store) error {
		b, err := s.Bookings().Get(ctx, bookingID)
		if err != nil {
			return err
		}
		if b == nil {
			return apperrors.NotFound("booking %d not found", bookingID)
		}
		if b.Status != bookingModel.StatusConfirmed {
			return apperrors.InvalidState("booking %s is %s; only Confirmed bookings can check in", b.ReferenceCode, b.Status)
		}

		attrs := guestService.Attributes{}
		if doc.IDType != "" {
			attrs.IDType = &doc.IDType
		}
		if doc.IDNumber != "" {
			attrs.IDNumber = &doc.IDNumber
		}
		if doc.Nationality != "" {
			attrs.Nationality = &doc.Nationality
		}
		if _, err := guestService.UpdateIn(ctx, s, b.GuestID, attrs); err != nil {
			return err
		}

		ok, err := s.Bookings().UpdateStatusIf(ctx, b.ID, bookingModel.StatusConfirmed, bookingModel.StatusCheckedIn)
		if err != nil {
			return err
		}
		if !ok {
			return apperrors.Conflict("booking %s changed concurrently during check-in", b.ReferenceCode)
		}

		now := time.Now()
		b.Status = bookingModel.StatusCheckedIn
		b.ActualCheckInAt = &now
		if err := s.Bookings().Save(ctx, b); err != nil {
			return err
		}

		ok, err = s.Rooms().UpdateStatusIf(ctx, b.RoomID, roomModel.StatusBooked, roomModel.StatusOccupied)
		if err != nil {
			return err
		}
		if !ok {
			return apperrors.Conflict("room %s is no longer held by booking %s", b.RoomNumber, b.ReferenceCode)
		}

		if err := s.Bookings().AppendEvent(ctx, &bookingModel.StatusEvent{
			BookingID: b.ID,
			Status:    bookingModel.StatusCheckedIn,
			Note:      "guest checked in",
		}); err != nil {
			return err
		}
		checkedIn = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Success(fmt.Sprintf("Booking %s checked in, room %s occupied", checkedIn.ReferenceCode, checkedIn.RoomNumber))
	return checkedIn, nil
}

// CheckOut moves the booking from Checked In to Checked Out, releases the
// room to Available, and appends the permanent stay log entry. The returned
// bill uses calendar-day ceiling: any fraction of a day counts as a night.
func (e *Engine) CheckOut(ctx context.Context, bookingID uint) (*CheckOutResult, error) {
	var result *CheckOutResult
	err := e.store.Atomically(ctx, func(s storage.Store) error {
		b, err := s.Bookings().Get(ctx, bookingID)
		if err != nil {
			return err
		}
		if b == nil {
			return apperrors.NotFound("booking %d not found", bookingID)
		}
		if b.Status != bookingModel.StatusCheckedIn {
			return apperrors.InvalidState("booking %s is %s; only Checked In bookings can check out", b.ReferenceCode, b.Status)
		}

		ok, err := s.Bookings().UpdateStatusIf(ctx, b.ID, bookingModel.StatusCheckedIn, bookingModel.StatusCheckedOut)
		if err != nil {
			return err
		}
		if !ok {
			return apperrors.Conflict("booking %s changed concurrently during check-out", b.ReferenceCode)
		}

		// The room goes back to Available whatever its current status says;
		// checkout is the recovery point for any drift.
		r, err := s.Rooms().Get(ctx, b.RoomID)
		if err != nil {
			return err
		}
		if r != nil && r.Status != roomModel.StatusAvailable {
			r.Status = roomModel.StatusAvailable
			if err := s.Rooms().Save(ctx, r); err != nil {
				return err
			}
		}

		guestRecord, err := s.Guests().Get(ctx, b.GuestID)
		if err != nil {
			return err
		}

		now := time.Now()
		actualCheckIn := b.CreatedAt
		if b.ActualCheckInAt != nil {
			actualCheckIn = *b.ActualCheckInAt
		}

		nights := StayNights(b.CheckInDate, b.CheckOutDate)
		entry := &staylogModel.StayLog{
			ID:           uuid.NewString(),
			BookingID:    b.ID,
			GuestID:      b.GuestID,
			GuestName:    b.GuestName,
			GuestPhone:   b.GuestPhone,
			GuestEmail:   b.GuestEmail,
			RoomID:       b.RoomID,
			RoomNumber:   b.RoomNumber,
			RoomCategory: b.RoomCategory,
			RoomPrice:    b.RoomPrice,
			CheckInDate:  b.CheckInDate,
			CheckOutDate: b.CheckOutDate,

			ActualCheckIn:  actualCheckIn,
			ActualCheckOut: now,
			Nights:         nights,
			Total:          float64(nights) * b.RoomPrice,
		}
		if guestRecord != nil {
			entry.GuestNationality = guestRecord.Nationality
			entry.GuestIDType = guestRecord.IDType
			entry.GuestIDNumber = guestRecord.IDNumber
		}
		if err := s.StayLogs().Append(ctx, entry); err != nil {
			return err
		}

		if err := s.Bookings().AppendEvent(ctx, &bookingModel.StatusEvent{
			BookingID: b.ID,
			Status:    bookingModel.StatusCheckedOut,
			Note:      "guest checked out",
		}); err != nil {
			return err
		}
		result = &CheckOutResult{StayLog: entry, Nights: entry.Nights, Total: entry.Total}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Success(fmt.Sprintf("Stay logged: room %s released, %d night(s), total %.2f",
		result.StayLog.RoomNumber, result.Nights, result.Total))
	return result, nil
}

// Cancel moves a Confirmed booking to Cancelled and releases the room, but
// only if the room is still Booked on behalf of this booking; a room that was
// reassigned or sent to cleaning in the meantime is left alone.
func (e *Engine) Cancel(ctx context.Context, bookingID uint) (*bookingModel.Booking, error) {
	var cancelled *bookingModel.Booking
	err := e.store.Atomically(ctx, func(s storage.Store) error {
		b, err := s.Bookings().Get(ctx, bookingID)
		if err != nil {
			return err
		}
		if b == nil {
			return apperrors.NotFound("booking %d not found", bookingID)
		}
		if b.Status != bookingModel.StatusConfirmed {
			return apperrors.InvalidState("booking %s is %s; only Confirmed bookings can be cancelled", b.ReferenceCode, b.Status)
		}

		ok, err := s.Bookings().UpdateStatusIf(ctx, b.ID, bookingModel.StatusConfirmed, bookingModel.StatusCancelled)
		if err != nil {
			return err
		}
		if !ok {
			return apperrors.Conflict("booking %s changed concurrently during cancellation", b.ReferenceCode)
		}
		b.Status = bookingModel.StatusCancelled

		if _, err := s.Rooms().UpdateStatusIf(ctx, b.RoomID, roomModel.StatusBooked, roomModel.StatusAvailable); err != nil {
			return err
		}

		if err := s.Bookings().AppendEvent(ctx, &bookingModel.StatusEvent{
			BookingID: b.ID,
			Status:    bookingModel.StatusCancelled,
			Note:      "booking cancelled",
		}); err != nil {
			return err
		}
		cancelled = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info(fmt.Sprintf("Booking %s cancelled, room %s released", cancelled.ReferenceCode, cancelled.RoomNumber))
	return cancelled, nil
}

// Get returns one booking by id.
func (e *Engine) Get(ctx context.Context, bookingID uint) (*bookingModel.Booking, error) {
	b, err := e.store.Bookings().Get(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, apperrors.NotFound("booking %d not found", bookingID)
	}
	return b, nil
}

// List returns bookings matching the filter.
func (e *Engine) List(ctx context.Context, filter storage.BookingFilter) ([]bookingModel.Booking, error) {
	return e.store.Bookings().List(ctx, filter)
}

// StayLogs returns the full stay history.
func (e *Engine) StayLogs(ctx context.Context) ([]staylogModel.StayLog, error) {
	return e.store.StayLogs().List(ctx)
}
