package repository

import (
	"context"
	"fmt"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/availability"
	bookingModel "hotel/internal/domains/booking/model"
	bookingRepo "hotel/internal/domains/booking/repository"
	guestModel "hotel/internal/domains/guest/model"
	guestRepo "hotel/internal/domains/guest/repository"
	roomModel "hotel/internal/domains/room/model"
	roomRepo "hotel/internal/domains/room/repository"
	roomTypeModel "hotel/internal/domains/roomtype/model"
	roomTypeRepo "hotel/internal/domains/roomtype/repository"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"

	"github.com/jmoiron/sqlx"
)

// storeImpl reads through the read replica until Atomic binds it to a write transaction.
type storeImpl struct {
	tx           *sqlx.Tx
	transactor   postgres.Transactor
	roomTypeRepo roomTypeRepo.RoomType
	roomRepo     roomRepo.Room
	bookingRepo  bookingRepo.Booking
	guestRepo    guestRepo.Guest
	otel         otel.Otel
}

func New(
	transactor postgres.Transactor,
	roomTypeRepo roomTypeRepo.RoomType,
	roomRepo roomRepo.Room,
	bookingRepo bookingRepo.Booking,
	guestRepo guestRepo.Guest,
	otel otel.Otel,
) availability.Store {
	return &storeImpl{
		transactor:   transactor,
		roomTypeRepo: roomTypeRepo,
		roomRepo:     roomRepo,
		bookingRepo:  bookingRepo,
		guestRepo:    guestRepo,
		otel:         otel,
	}
}

func (s *storeImpl) GetRoomType(ctx context.Context, id string) (roomTypeModel.RoomType, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".availability.GetRoomType")
	defer scope.End()

	filter := shared.FilterByID(id, roomTypeModel.FieldID, roomTypeModel.TableName)

	if s.tx != nil {
		return s.roomTypeRepo.GetTx(ctx, s.tx, filter) //nolint:wrapcheck
	}

	return s.roomTypeRepo.Get(ctx, filter) //nolint:wrapcheck
}

func (s *storeImpl) ListRoomTypes(ctx context.Context) ([]roomTypeModel.RoomType, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".availability.ListRoomTypes")
	defer scope.End()

	params := gDto.QueryParams{
		SortBy:  roomTypeModel.TableName + "." + roomTypeModel.FieldPricePerNight,
		SortDir: gDto.SortDirAsc,
	}

	if s.tx != nil {
		return s.roomTypeRepo.GetAllTx(ctx, s.tx, params, gDto.FilterGroup{}) //nolint:wrapcheck
	}

	return s.roomTypeRepo.GetAll(ctx, params, gDto.FilterGroup{}) //nolint:wrapcheck
}

func (s *storeImpl) ListActiveRooms(ctx context.Context, roomTypeID string) ([]roomModel.Room, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".availability.ListActiveRooms")
	defer scope.End()

	if s.tx != nil {
		return s.roomRepo.ListActiveByTypeTx(ctx, s.tx, roomTypeID) //nolint:wrapcheck
	}

	return s.roomRepo.ListActiveByType(ctx, roomTypeID) //nolint:wrapcheck
}

func (s *storeImpl) FindOverlappingBookings(ctx context.Context, query bookingModel.OverlapQuery) ([]bookingModel.Booking, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".availability.FindOverlappingBookings")
	defer scope.End()

	if s.tx != nil {
		return s.bookingRepo.FindOverlappingTx(ctx, s.tx, query) //nolint:wrapcheck
	}

	return s.bookingRepo.FindOverlapping(ctx, query) //nolint:wrapcheck
}

func (s *storeImpl) InsertBooking(ctx context.Context, booking bookingModel.Booking) (id string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".availability.InsertBooking")
	defer scope.End()

	if s.tx != nil {
		err = s.bookingRepo.InsertTx(ctx, s.tx, booking)
	} else {
		err = s.bookingRepo.Insert(ctx, booking)
	}

	if err != nil {
		if shared.IsPqErrorCode(err, constant.PqErrorCodeExclusionViolation) {
			return constant.Empty, failure.ConflictFrom(fmt.Errorf("room is already booked for the requested dates: %w", err)) // nolint:wrapcheck
		}

		return constant.Empty, err //nolint:wrapcheck
	}

	return booking.ID, nil
}

func (s *storeImpl) GuestExists(ctx context.Context, guestID string) (bool, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".availability.GuestExists")
	defer scope.End()

	filter := shared.FilterByID(guestID, guestModel.FieldID, guestModel.TableName)

	if s.tx != nil {
		return s.guestRepo.ExistTx(ctx, s.tx, filter) //nolint:wrapcheck
	}

	return s.guestRepo.Exist(ctx, filter) //nolint:wrapcheck
}

// Atomic joins the current transaction when there is one.
func (s *storeImpl) Atomic(ctx context.Context, lockKey string, fn func(ctx context.Context, store availability.Store) error) error {
	if s.tx != nil {
		return fn(ctx, s)
	}

	return s.transactor.WithLock(ctx, lockKey, func(ctx context.Context, tx *sqlx.Tx) error { //nolint:wrapcheck
		bound := *s
		bound.tx = tx

		return fn(ctx, &bound)
	})
}
