package storage

import (
	"context"
	"fmt"
	"sort"
	"sync"

	bookingModel "hotel-booking/models/booking"
	guestModel "hotel-booking/models/guest"
	roomModel "hotel-booking/models/room"
	staylogModel "hotel-booking/models/staylog"
)

// MemoryStore is an in-process Store used for development and tests. A single
// mutex serializes transactions, which makes Atomically fully serializable:
// the whole fn runs under the lock and a failed fn restores the pre-transaction
// snapshot.
type MemoryStore struct {
	mu   sync.Mutex
	data *memoryData
}

type memoryData struct {
	guests   map[uint]guestModel.Guest
	rooms    map[uint]roomModel.Room
	bookings map[uint]bookingModel.Booking
	events   []bookingModel.StatusEvent
	stayLogs []staylogModel.StayLog

	nextGuestID   uint
	nextRoomID    uint
	nextBookingID uint
	nextEventID   uint
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: &memoryData{
			guests:        make(map[uint]guestModel.Guest),
			rooms:         make(map[uint]roomModel.Room),
			bookings:      make(map[uint]bookingModel.Booking),
			nextGuestID:   1,
			nextRoomID:    1,
			nextBookingID: 1,
			nextEventID:   1,
		},
	}
}

func (d *memoryData) clone() *memoryData {
	c := &memoryData{
		guests:        make(map[uint]guestModel.Guest, len(d.guests)),
		rooms:         make(map[uint]roomModel.Room, len(d.rooms)),
		bookings:      make(map[uint]bookingModel.Booking, len(d.bookings)),
		events:        append([]bookingModel.StatusEvent(nil), d.events...),
		stayLogs:      append([]staylogModel.StayLog(nil), d.stayLogs...),
		nextGuestID:   d.nextGuestID,
		nextRoomID:    d.nextRoomID,
		nextBookingID: d.nextBookingID,
		nextEventID:   d.nextEventID,
	}
	for id, g := range d.guests {
		c.guests[id] = g
	}
	for id, r := range d.rooms {
		c.rooms[id] = r
	}
	for id, b := range d.bookings {
		c.bookings[id] = b
	}
	return c
}

func (m *MemoryStore) Guests() GuestStore     { return lockedGuests{m} }
func (m *MemoryStore) Rooms() RoomStore       { return lockedRooms{m} }
func (m *MemoryStore) Bookings() BookingStore { return lockedBookings{m} }
func (m *MemoryStore) StayLogs() StayLogStore { return lockedStayLogs{m} }

func (m *MemoryStore) Atomically(ctx context.Context, fn func(Store) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	backup := m.data.clone()
	if err := fn(&memStores{m.data}); err != nil {
		m.data = backup
		return err
	}
	return nil
}

// memStores operates on the data directly; it is only ever reached while the
// MemoryStore mutex is held.
type memStores struct {
	d *memoryData
}

func (t *memStores) Guests() GuestStore     { return memGuests{t.d} }
func (t *memStores) Rooms() RoomStore       { return memRooms{t.d} }
func (t *memStores) Bookings() BookingStore { return memBookings{t.d} }
func (t *memStores) StayLogs() StayLogStore { return memStayLogs{t.d} }

// Atomically inside an open transaction just continues the same unit of work.
func (t *memStores) Atomically(ctx context.Context, fn func(Store) error) error {
	return fn(t)
}

type memGuests struct{ d *memoryData }

func (s memGuests) Get(ctx context.Context, id uint) (*guestModel.Guest, error) {
	if g, ok := s.d.guests[id]; ok {
		return &g, nil
	}
	return nil, nil
}

func (s memGuests) FindByPhone(ctx context.Context, phone string) (*guestModel.Guest, error) {
	for _, g := range s.d.guests {
		if g.Phone == phone {
			g := g
			return &g, nil
		}
	}
	return nil, nil
}

func (s memGuests) Insert(ctx context.Context, g *guestModel.Guest) error {
	if existing, _ := s.FindByPhone(ctx, g.Phone); existing != nil {
		return fmt.Errorf("duplicate guest phone %q", g.Phone)
	}
	g.ID = s.d.nextGuestID
	s.d.nextGuestID++
	s.d.guests[g.ID] = *g
	return nil
}

func (s memGuests) Save(ctx context.Context, g *guestModel.Guest) error {
	if _, ok := s.d.guests[g.ID]; !ok {
		return fmt.Errorf("guest %d does not exist", g.ID)
	}
	s.d.guests[g.ID] = *g
	return nil
}

func (s memGuests) List(ctx context.Context) ([]guestModel.Guest, error) {
	out := make([]guestModel.Guest, 0, len(s.d.guests))
	for _, g := range s.d.guests {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FullName < out[j].FullName })
	return out, nil
}

type memRooms struct{ d *memoryData }

func (s memRooms) Get(ctx context.Context, id uint) (*roomModel.Room, error) {
	if r, ok := s.d.rooms[id]; ok {
		return &r, nil
	}
	return nil, nil
}

func (s memRooms) FindByNumber(ctx context.Context, number string) (*roomModel.Room, error) {
	for _, r := range s.d.rooms {
		if r.Number == number {
			r := r
			return &r, nil
		}
	}
	return nil, nil
}

func (s memRooms) FindAvailableByCategory(ctx context.Context, category roomModel.Category) (*roomModel.Room, error) {
	var candidates []roomModel.Room
	for _, r := range s.d.rooms {
		if r.Category == category && r.Status == roomModel.StatusAvailable {
			candidates = append(candidates, r)
		}
	}
	if len(candidates) == 0 {
		return nil, nil
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].Number < candidates[j].Number })
	return &candidates[0], nil
}

func (s memRooms) Insert(ctx context.Context, r *roomModel.Room) error {
	if existing, _ := s.FindByNumber(ctx, r.Number); existing != nil {
		return fmt.Errorf("duplicate room number %q", r.Number)
	}
	r.ID = s.d.nextRoomID
	s.d.nextRoomID++
	s.d.rooms[r.ID] = *r
	return nil
}

func (s memRooms) Save(ctx context.Context, r *roomModel.Room) error {
	if _, ok := s.d.rooms[r.ID]; !ok {
		return fmt.Errorf("room %d does not exist", r.ID)
	}
	s.d.rooms[r.ID] = *r
	return nil
}

func (s memRooms) Delete(ctx context.Context, id uint) error {
	delete(s.d.rooms, id)
	return nil
}

func (s memRooms) UpdateStatusIf(ctx context.Context, id uint, expected, next roomModel.Status) (bool, error) {
	r, ok := s.d.rooms[id]
	if !ok || r.Status != expected {
		return false, nil
	}
	r.Status = next
	s.d.rooms[id] = r
	return true, nil
}

func (s memRooms) List(ctx context.Context) ([]roomModel.Room, error) {
	out := make([]roomModel.Room, 0, len(s.d.rooms))
	for _, r := range s.d.rooms {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out, nil
}

type memBookings struct{ d *memoryData }

func (s memBookings) Get(ctx context.Context, id uint) (*bookingModel.Booking, error) {
	if b, ok := s.d.bookings[id]; ok {
		if g, ok := s.d.guests[b.GuestID]; ok {
			b.Guest = g
		}
		if r, ok := s.d.rooms[b.RoomID]; ok {
			b.Room = r
		}
		return &b, nil
	}
	return nil, nil
}

func (s memBookings) Insert(ctx context.Context, b *bookingModel.Booking) error {
	b.ID = s.d.nextBookingID
	s.d.nextBookingID++
	s.d.bookings[b.ID] = *b
	return nil
}

func (s memBookings) Save(ctx context.Context, b *bookingModel.Booking) error {
	if _, ok := s.d.bookings[b.ID]; !ok {
		return fmt.Errorf("booking %d does not exist", b.ID)
	}
	s.d.bookings[b.ID] = *b
	return nil
}

func (s memBookings) UpdateStatusIf(ctx context.Context, id uint, expected, next bookingModel.Status) (bool, error) {
	b, ok := s.d.bookings[id]
	if !ok || b.Status != expected {
		return false, nil
	}
	b.Status = next
	s.d.bookings[id] = b
	return true, nil
}

func (s memBookings) List(ctx context.Context, filter BookingFilter) ([]bookingModel.Booking, error) {
	var out []bookingModel.Booking
	for _, b := range s.d.bookings {
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		if filter.GuestPhone != "" && b.GuestPhone != filter.GuestPhone {
			continue
		}
		if filter.RoomID != 0 && b.RoomID != filter.RoomID {
			continue
		}
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s memBookings) CountHoldingRoom(ctx context.Context, roomID uint) (int64, error) {
	var count int64
	for _, b := range s.d.bookings {
		if b.RoomID == roomID && b.Status.HoldsRoom() {
			count++
		}
	}
	return count, nil
}

func (s memBookings) AppendEvent(ctx context.Context, ev *bookingModel.StatusEvent) error {
	ev.ID = s.d.nextEventID
	s.d.nextEventID++
	s.d.events = append(s.d.events, *ev)
	return nil
}

type memStayLogs struct{ d *memoryData }

func (s memStayLogs) Append(ctx context.Context, entry *staylogModel.StayLog) error {
	s.d.stayLogs = append(s.d.stayLogs, *entry)
	return nil
}

func (s memStayLogs) List(ctx context.Context) ([]staylogModel.StayLog, error) {
	return append([]staylogModel.StayLog(nil), s.d.stayLogs...), nil
}

// Locked wrappers serialize single operations issued outside a transaction.

type lockedGuests struct{ m *MemoryStore }

func (l lockedGuests) Get(ctx context.Context, id uint) (*guestModel.Guest, error) {
	l.m.mu.Lock()
	defer l.m.mu.Unlock()
	return memGuests{l.m.data}.Get(ctx, id)
}

func (l lockedGuests) FindByPhone(ctx context.Context, phone string) (*guestModel.Guest, error) {
	l.m.mu.Lock()
	defer l.m.mu.Unlock()
	return memGuests{l.m.data}.FindByPhone(ctx, phone)
}

func (l lockedGuests) Insert(ctx context.Context, g *guestModel.Guest) error {
	l.m.mu.Lock()
	defer l.m.mu.Unlock()
	return memGuests{l.m.data}.Insert(ctx, g)
}

func (l lockedGuests) Save(ctx context.Context, g *guestModel.Guest) error {
	l.m.mu.Lock()
	defer l.m.mu.Unlock()
	return memGuests{l.m.data}.Save(ctx, g)
}

func (l lockedGuests) List(ctx context.Context) ([]guestModel.Guest, error) {
	l.m.mu.Lock()
	defer l.m.mu.Unlock()
	return memGuests{l.m.data}.List(ctx)
}

type lockedRooms struct{ m *MemoryStore }

func (l lockedRooms) Get(ctx context.Context, id uint) (*roomModel.Room, error) {
	l.m.mu.Lock()
	defer l.m.mu.Unlock()
	return memRooms{l.m.data}.Get(ctx, id)
}

func (l lockedRooms) FindByNumber(ctx context.Context, number string) (*roomModel.Room, error) {
	l.m.mu.Lock()
	defer l.m.mu.Unlock()
	return memRooms{l.m.data}.FindByNumber(ctx, number)
}

func (l lockedRooms) FindAvailableByCategory(ctx context.Context, category roomModel.Category) (*roomModel.Room, error) {
	l.m.mu.Lock()
	defer l.m.mu.Unlock()
	return memRooms{l.m.data}.FindAvailableByCategory(ctx, category)
}

func (l lockedRooms) Insert(ctx context.Context, r *roomModel.Room) error {
	l.m.mu.Lock()
	defer l.m.mu.Unlock()
	return memRooms{l.m.data}.Insert(ctx, r)
}

func (l lockedRooms) Save(ctx context.Context, r *roomModel.Room) error {
	l.m.mu.Lock()
	defer l.m.mu.Unlock()
	return memRooms{l.m.data}.Save(ctx, r)
}

func (l lockedRooms) Delete(ctx context.Context, id uint) error {
	l.m.mu.Lock()
	defer l.m.mu.Unlock()
	return memRooms{l.m.data}.Delete(ctx, id)
}

func (l lockedRooms) UpdateStatusIf(ctx context.Context, id uint, expected, next roomModel.Status) (bool, error) {
	l.m.mu.Lock()
	defer l.m.mu.Unlock()
	return memRooms{l.m.data}.UpdateStatusIf(ctx, id, expected, next)
}

func (l lockedRooms) List(ctx context.Context) ([]roomModel.Room, error) {
	l.m.mu.Lock()
	defer l.m.mu.Unlock()
	return memRooms{l.m.data}.List(ctx)
}

type lockedBookings struct{ m *MemoryStore }

func (l lockedBookings) Get(ctx context.Context, id uint) (*bookingModel.Booking, error) {
	l.m.mu.Lock()
	defer l.m.mu.Unlock()
	return memBookings{l.m.data}.Get(ctx, id)
}

func (l lockedBookings) Insert(ctx context.Context, b *bookingModel.Booking) error {
	l.m.mu.Lock()
	defer l.m.mu.Unlock()
	return memBookings{l.m.data}.Insert(ctx, b)
}

func (l lockedBookings) Save(ctx context.Context, b *bookingModel.Booking) error {
	l.m.mu.Lock()
	defer l.m.mu.Unlock()
	return memBookings{l.m.data}.Save(ctx, b)
}

func (l lockedBookings) UpdateStatusIf(ctx context.Context, id uint, expected, next bookingModel.Status) (bool, error) {
	l.m.mu.Lock()
	defer l.m.mu.Unlock()
	return memBookings{l.m.data}.UpdateStatusIf(ctx, id, expected, next)
}

func (l lockedBookings) List(ctx context.Context, filter BookingFilter) ([]bookingModel.Booking, error) {
	l.m.mu.Lock()
	defer l.m.mu.Unlock()
	return memBookings{l.m.data}.List(ctx, filter)
}

func (l lockedBookings) CountHoldingRoom(ctx context.Context, roomID uint) (int64, error) {
	l.m.mu.Lock()
	defer l.m.mu.Unlock()
	return memBookings{l.m.data}.CountHoldingRoom(ctx, roomID)
}

func (l lockedBookings) AppendEvent(ctx context.Context, ev *bookingModel.StatusEvent) error {
	l.m.mu.Lock()
	defer l.m.mu.Unlock()
	return memBookings{l.m.data}.AppendEvent(ctx, ev)
}

type lockedStayLogs struct{ m *MemoryStore }

func (l lockedStayLogs) Append(ctx context.Context, entry *staylogModel.StayLog) error {
	l.m.mu.Lock()
	defer l.m.mu.Unlock()
	return memStayLogs{l.m.data}.Append(ctx, entry)
}

func (l lockedStayLogs) List(ctx context.Context) ([]staylogModel.StayLog, error) {
	l.m.mu.Lock()
	defer l.m.mu.Unlock()
	return memStayLogs{l.m.data}.List(ctx)
}
