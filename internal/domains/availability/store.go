package availability

//go:generate go run go.uber.org/mock/mockgen -source=./store.go -destination=./mocks/store_mock.go -package=mocks

import (
	"context"
	bookingModel "hotel/internal/domains/booking/model"
	roomModel "hotel/internal/domains/room/model"
	roomTypeModel "hotel/internal/domains/roomtype/model"
)

// Store is the persistence the engine reads availability from and writes bookings to.
// GetRoomType returns a zero RoomType when the id is unknown.
type Store interface {
	GetRoomType(ctx context.Context, id string) (roomTypeModel.RoomType, error)
	ListRoomTypes(ctx context.Context) ([]roomTypeModel.RoomType, error)
	ListActiveRooms(ctx context.Context, roomTypeID string) ([]roomModel.Room, error)
	FindOverlappingBookings(ctx context.Context, query bookingModel.OverlapQuery) ([]bookingModel.Booking, error)
	InsertBooking(ctx context.Context, booking bookingModel.Booking) (string, error)
	GuestExists(ctx context.Context, guestID string) (bool, error)
	// Atomic runs fn against a Store bound to one transaction that holds the named lock.
	// Nothing fn wrote survives when it returns an error.
	Atomic(ctx context.Context, lockKey string, fn func(ctx context.Context, store Store) error) error
}
