package availability_test

import (
	"context"
	"errors"
	"hotel/internal/domains/availability"
	bookingModel "hotel/internal/domains/booking/model"
	roomModel "hotel/internal/domains/room/model"
	roomTypeModel "hotel/internal/domains/roomtype/model"
	"slices"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

const (
	guestID    = "g-1"
	economyID  = "rt-economy"
	standardID = "rt-standard"
	suiteID    = "rt-suite"
)

var errDatabaseDown = errors.New("connection refused")

type fixedClock time.Time

func (c fixedClock) Now() time.Time {
	return time.Time(c)
}

var now = time.Date(2026, 10, 16, 10, 30, 0, 0, time.UTC)

func inDays(days int) time.Time {
	return availability.AddDays(now, days)
}

type memDB struct {
	txLock sync.Mutex
	mu     sync.Mutex

	roomTypes []roomTypeModel.RoomType
	rooms     []roomModel.Room
	bookings  []bookingModel.Booking
	guests    map[string]bool

	listErr         error
	overlapErr      error
	failAfterInsert error
	overlapQueries  int
}

// memStore keeps bookings written inside Atomic in staged until fn succeeds.
type memStore struct {
	db     *memDB
	staged *[]bookingModel.Booking
}

func newMemStore() *memStore {
	return &memStore{
		db: &memDB{
			roomTypes: []roomTypeModel.RoomType{
				{ID: economyID, Name: "Economy", PricePerNight: decimal.NewFromInt(1500), MaxGuests: 1},
				{ID: standardID, Name: "Standard", PricePerNight: decimal.NewFromInt(2500), MaxGuests: 2},
				{ID: suiteID, Name: "Suite", PricePerNight: decimal.NewFromInt(5000), MaxGuests: 2},
			},
			rooms: []roomModel.Room{
				{ID: "room-101", RoomNumber: "101", RoomTypeID: economyID, Active: true},
				{ID: "room-201", RoomNumber: "201", RoomTypeID: standardID, Active: true},
				{ID: "room-301", RoomNumber: "301", RoomTypeID: suiteID, Active: true},
			},
			guests: map[string]bool{guestID: true},
		},
	}
}

func (s *memStore) occupy(roomID, roomTypeID string, checkIn, checkOut time.Time, status string) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	id := roomID
	s.db.bookings = append(s.db.bookings, bookingModel.Booking{
		ID:             "seed-" + roomID + checkIn.Format(time.DateOnly),
		GuestID:        guestID,
		RoomTypeID:     roomTypeID,
		AssignedRoomID: &id,
		CheckIn:        checkIn,
		CheckOut:       checkOut,
		Status:         status,
	})
}

func (s *memStore) committed() []bookingModel.Booking {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	return slices.Clone(s.db.bookings)
}

func (s *memStore) GetRoomType(_ context.Context, id string) (roomTypeModel.RoomType, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for _, roomType := range s.db.roomTypes {
		if roomType.ID == id {
			return roomType, nil
		}
	}

	return roomTypeModel.RoomType{}, nil
}

func (s *memStore) ListRoomTypes(_ context.Context) ([]roomTypeModel.RoomType, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	return slices.Clone(s.db.roomTypes), nil
}

func (s *memStore) ListActiveRooms(_ context.Context, roomTypeID string) ([]roomModel.Room, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if s.db.listErr != nil {
		return nil, s.db.listErr
	}

	var rooms []roomModel.Room

	for _, room := range s.db.rooms {
		if room.RoomTypeID == roomTypeID && room.Active {
			rooms = append(rooms, room)
		}
	}

	return rooms, nil
}

func (s *memStore) FindOverlappingBookings(_ context.Context, query bookingModel.OverlapQuery) ([]bookingModel.Booking, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	s.db.overlapQueries++

	if s.db.overlapErr != nil {
		return nil, s.db.overlapErr
	}

	all := slices.Clone(s.db.bookings)
	if s.staged != nil {
		all = append(all, *s.staged...)
	}

	stay := bookingModel.Interval{Start: query.CheckIn, End: query.CheckOut}

	var res []bookingModel.Booking

	for _, booking := range all {
		switch {
		case len(query.RoomIDs) > 0 && !slices.Contains(query.RoomIDs, booking.RoomID()):
			continue
		case len(query.RoomIDs) == 0 && query.RoomTypeID != "" && booking.RoomTypeID != query.RoomTypeID:
			continue
		case len(query.Statuses) > 0 && !slices.Contains(query.Statuses, booking.Status):
			continue
		case booking.ID == query.ExcludeID:
			continue
		case !booking.Stay().Overlaps(stay):
			continue
		}

		res = append(res, booking)
	}

	return res, nil
}

func (s *memStore) InsertBooking(_ context.Context, booking bookingModel.Booking) (string, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if s.staged != nil {
		*s.staged = append(*s.staged, booking)
	} else {
		s.db.bookings = append(s.db.bookings, booking)
	}

	if s.db.failAfterInsert != nil {
		return "", s.db.failAfterInsert
	}

	return booking.ID, nil
}

func (s *memStore) GuestExists(_ context.Context, id string) (bool, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	return s.db.guests[id], nil
}

func (s *memStore) Atomic(ctx context.Context, _ string, fn func(ctx context.Context, store availability.Store) error) error {
	if s.staged != nil {
		return fn(ctx, s)
	}

	s.db.txLock.Lock()
	defer s.db.txLock.Unlock()

	staged := []bookingModel.Booking{}
	if err := fn(ctx, &memStore{db: s.db, staged: &staged}); err != nil {
		return err
	}

	s.db.mu.Lock()
	s.db.bookings = append(s.db.bookings, staged...)
	s.db.mu.Unlock()

	return nil
}
