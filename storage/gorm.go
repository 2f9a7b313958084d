package storage

import (
	"context"
	"errors"

	bookingModel "hotel-booking/models/booking"
	guestModel "hotel-booking/models/guest"
	roomModel "hotel-booking/models/room"
	staylogModel "hotel-booking/models/staylog"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore is the PostgreSQL-backed Store implementation.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a Store on top of an open gorm connection.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Guests() GuestStore     { return &gormGuestStore{db: s.db} }
func (s *GormStore) Rooms() RoomStore       { return &gormRoomStore{db: s.db} }
func (s *GormStore) Bookings() BookingStore { return &gormBookingStore{db: s.db} }
func (s *GormStore) StayLogs() StayLogStore { return &gormStayLogStore{db: s.db} }

// Atomically runs fn inside a database transaction; any error rolls back
// every write fn made through the transactional Store.
func (s *GormStore) Atomically(ctx context.Context, fn func(Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}

type gormGuestStore struct {
	db *gorm.DB
}

func (s *gormGuestStore) Get(ctx context.Context, id uint) (*guestModel.Guest, error) {
	var g guestModel.Guest
	err := s.db.WithContext(ctx).First(&g, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (s *gormGuestStore) FindByPhone(ctx context.Context, phone string) (*guestModel.Guest, error) {
	var g guestModel.Guest
	err := s.db.WithContext(ctx).Where("phone = ?", phone).First(&g).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (s *gormGuestStore) Insert(ctx context.Context, g *guestModel.Guest) error {
	return s.db.WithContext(ctx).Create(g).Error
}

func (s *gormGuestStore) Save(ctx context.Context, g *guestModel.Guest) error {
	return s.db.WithContext(ctx).Save(g).Error
}

func (s *gormGuestStore) List(ctx context.Context) ([]guestModel.Guest, error) {
	var guests []guestModel.Guest
	err := s.db.WithContext(ctx).Order("full_name asc").Find(&guests).Error
	return guests, err
}

type gormRoomStore struct {
	db *gorm.DB
}

func (s *gormRoomStore) Get(ctx context.Context, id uint) (*roomModel.Room, error) {
	var r roomModel.Room
	err := s.db.WithContext(ctx).First(&r, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *gormRoomStore) FindByNumber(ctx context.Context, number string) (*roomModel.Room, error) {
	var r roomModel.Room
	err := s.db.WithContext(ctx).Where("number = ?", number).First(&r).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *gormRoomStore) FindAvailableByCategory(ctx context.Context, category roomModel.Category) (*roomModel.Room, error) {
	var r roomModel.Room
	err := s.db.WithContext(ctx).
		Where("category = ? AND status = ?", category, roomModel.StatusAvailable).
		Order("number asc").
		First(&r).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *gormRoomStore) Insert(ctx context.Context, r *roomModel.Room) error {
	return s.db.WithContext(ctx).Create(r).Error
}

func (s *gormRoomStore) Save(ctx context.Context, r *roomModel.Room) error {
	return s.db.WithContext(ctx).Save(r).Error
}

func (s *gormRoomStore) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&roomModel.Room{}, id).Error
}

// UpdateStatusIf flips the room status only when it still equals expected.
// Zero rows affected means the guard lost a concurrent update.
func (s *gormRoomStore) UpdateStatusIf(ctx context.Context, id uint, expected, next roomModel.Status) (bool, error) {
	res := s.db.WithContext(ctx).
		Model(&roomModel.Room{}).
		Where("id = ? AND status = ?", id, expected).
		Update("status", next)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (s *gormRoomStore) List(ctx context.Context) ([]roomModel.Room, error) {
	var rooms []roomModel.Room
	err := s.db.WithContext(ctx).Order("number asc").Find(&rooms).Error
	return rooms, err
}

type gormBookingStore struct {
	db *gorm.DB
}

func (s *gormBookingStore) Get(ctx context.Context, id uint) (*bookingModel.Booking, error) {
	var b bookingModel.Booking
	err := s.db.WithContext(ctx).Preload("Guest").Preload("Room").First(&b, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *gormBookingStore) Insert(ctx context.Context, b *bookingModel.Booking) error {
	// Guest and Room rows are managed by their own stores; never upsert them
	// through the booking's association fields.
	return s.db.WithContext(ctx).Omit(clause.Associations).Create(b).Error
}

func (s *gormBookingStore) Save(ctx context.Context, b *bookingModel.Booking) error {
	return s.db.WithContext(ctx).Omit(clause.Associations).Save(b).Error
}

func (s *gormBookingStore) UpdateStatusIf(ctx context.Context, id uint, expected, next bookingModel.Status) (bool, error) {
	res := s.db.WithContext(ctx).
		Model(&bookingModel.Booking{}).
		Where("id = ? AND status = ?", id, expected).
		Update("status", next)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (s *gormBookingStore) List(ctx context.Context, filter BookingFilter) ([]bookingModel.Booking, error) {
	q := s.db.WithContext(ctx).Preload("Guest").Preload("Room")
	if filter.Status != nil {
		q = q.Where("status = ?", *filter.Status)
	}
	if filter.GuestPhone != "" {
		q = q.Where("guest_phone = ?", filter.GuestPhone)
	}
	if filter.RoomID != 0 {
		q = q.Where("room_id = ?", filter.RoomID)
	}
	var bookings []bookingModel.Booking
	err := q.Order("created_at desc").Find(&bookings).Error
	return bookings, err
}

// CountHoldingRoom counts bookings that still hold the room out of general
// availability, i.e. Confirmed or Checked In.
func (s *gormBookingStore) CountHoldingRoom(ctx context.Context, roomID uint) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&bookingModel.Booking{}).
		Where("room_id = ? AND status IN ?", roomID, []bookingModel.Status{
			bookingModel.StatusConfirmed,
			bookingModel.StatusCheckedIn,
		}).
		Count(&count).Error
	return count, err
}

func (s *gormBookingStore) AppendEvent(ctx context.Context, ev *bookingModel.StatusEvent) error {
	return s.db.WithContext(ctx).Omit(clause.Associations).Create(ev).Error
}

type gormStayLogStore struct {
	db *gorm.DB
}

func (s *gormStayLogStore) Append(ctx context.Context, entry *staylogModel.StayLog) error {
	return s.db.WithContext(ctx).Create(entry).Error
}

func (s *gormStayLogStore) List(ctx context.Context) ([]staylogModel.StayLog, error) {
	var logs []staylogModel.StayLog
	err := s.db.WithContext(ctx).Order("actual_check_out desc").Find(&logs).Error
	return logs, err
}
