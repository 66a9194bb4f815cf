package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"
	"fmt"
	"hotel/config"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/booking/repository"
	guestRepo "hotel/internal/domains/guest/repository"
	roomModel "hotel/internal/domains/room/model"
	roomRepo "hotel/internal/domains/room/repository"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/event"
	"hotel/shared/failure"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	CacheGetBooking    = "booking:get"
	CacheGetAllBooking = "booking:gets"
	CacheCountBooking  = "booking:count"
	CacheDashboard     = "booking:dashboard"
)

const (
	msgBookingNotFound = "booking not found"
	msgRoomOccupied    = "room is already booked for the requested dates"
)

type Booking interface {
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	UpdateStatus(ctx context.Context, req dto.UpdateBookingStatusRequest, id string) (dto.BookingResponse, error)
	AssignRoom(ctx context.Context, req dto.AssignRoomRequest, id string) (dto.BookingResponse, error)
	Dashboard(ctx context.Context) (dto.DashboardResponse, error)
}

type serviceImpl struct {
	repo       repository.Booking
	roomRepo   roomRepo.Room
	guestRepo  guestRepo.Guest
	transactor postgres.Transactor
	publisher  event.Publisher
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
}

func New(
	repo repository.Booking,
	roomRepo roomRepo.Room,
	guestRepo guestRepo.Guest,
	transactor postgres.Transactor,
	publisher event.Publisher,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:       repo,
		roomRepo:   roomRepo,
		guestRepo:  guestRepo,
		transactor: transactor,
		publisher:  publisher,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(CacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	details, err := s.repo.GetAllDetails(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromDetails(details, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(CacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(CacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	detail, err := s.repo.GetDetail(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if detail.ID == constant.Empty {
		return res, failure.NotFound(msgBookingNotFound) // nolint:wrapcheck
	}

	res.FromDetail(detail)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

// UpdateStatus moves a booking to any status. A move into a blocking status is refused when the
// assigned room is held by another blocking booking for an overlapping stay.
func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateBookingStatusRequest, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	updated, err := s.mutate(ctx, id, func(ctx context.Context, tx *sqlx.Tx, booking model.Booking) (model.Booking, error) {
		booking.Status = req.Status

		if booking.Blocks() {
			if err := s.ensureRoomFree(ctx, tx, booking); err != nil {
				return booking, err
			}
		}

		return booking, s.update(ctx, tx, shared.TransformFields(req, user), id)
	})
	if err != nil {
		return res, err
	}

	event.PublishAsync(ctx, s.publisher, dto.ToEvent(event.TypeBookingStatusChanged, updated))

	res.FromModel(updated)

	return res, nil
}

// AssignRoom attaches an active room of the booking's room type.
func (s *serviceImpl) AssignRoom(ctx context.Context, req dto.AssignRoomRequest, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AssignRoom")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	updated, err := s.mutate(ctx, id, func(ctx context.Context, tx *sqlx.Tx, booking model.Booking) (model.Booking, error) {
		room, err := s.roomRepo.GetTx(ctx, tx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to get room")

			return booking, fmt.Errorf("failed to get room: %w", err)
		}

		switch {
		case room.ID == constant.Empty:
			return booking, failure.NotFound("room not found") // nolint:wrapcheck
		case !room.Active:
			return booking, failure.BadRequestFromString("room is not active") // nolint:wrapcheck
		case room.RoomTypeID != booking.RoomTypeID:
			return booking, failure.BadRequestFromString("room does not belong to the booking's room type") // nolint:wrapcheck
		}

		booking.AssignedRoomID = &room.ID

		if booking.Blocks() {
			if err := s.ensureRoomFree(ctx, tx, booking); err != nil {
				return booking, err
			}
		}

		return booking, s.update(ctx, tx, shared.TransformFields(req, user), id)
	})
	if err != nil {
		return res, err
	}

	event.PublishAsync(ctx, s.publisher, dto.ToEvent(event.TypeBookingRoomAssigned, updated))

	res.FromModel(updated)

	return res, nil
}

func (s *serviceImpl) Dashboard(ctx context.Context) (res dto.DashboardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Dashboard")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.cache.Get(ctx, CacheDashboard, &res)
	if err == nil {
		log.Info().Str("cacheKey", CacheDashboard).Msg("cache hit for dashboard")

		return res, nil
	}

	if res.ConfirmedBookings, err = s.repo.Count(ctx, statusFilter(model.StatusConfirmed)); err != nil {
		log.Error().Err(err).Msg("failed to count confirmed bookings")

		return res, fmt.Errorf("failed to count confirmed bookings: %w", err)
	}

	if res.PendingBookings, err = s.repo.Count(ctx, statusFilter(model.StatusPending)); err != nil {
		log.Error().Err(err).Msg("failed to count pending bookings")

		return res, fmt.Errorf("failed to count pending bookings: %w", err)
	}

	activeRooms := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    roomModel.FieldActive,
				Value:    true,
				Operator: gDto.FilterOperatorEq,
				Table:    roomModel.TableName,
			},
		},
	}

	if res.ActiveRooms, err = s.roomRepo.Count(ctx, activeRooms); err != nil {
		log.Error().Err(err).Msg("failed to count active rooms")

		return res, fmt.Errorf("failed to count active rooms: %w", err)
	}

	if res.Guests, err = s.guestRepo.Count(ctx, gDto.FilterGroup{}); err != nil {
		log.Error().Err(err).Msg("failed to count guests")

		return res, fmt.Errorf("failed to count guests: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, CacheDashboard, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save dashboard to cache")
		}
	}()

	return res, nil
}

// mutate reloads the booking inside a transaction holding its room type's lock and applies fn.
func (s *serviceImpl) mutate(
	ctx context.Context,
	id string,
	fn func(ctx context.Context, tx *sqlx.Tx, booking model.Booking) (model.Booking, error),
) (model.Booking, error) {
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter, model.FieldID, model.FieldRoomTypeID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound(msgBookingNotFound) // nolint:wrapcheck
	}

	var updated model.Booking

	err = s.transactor.WithLock(ctx, model.LockKey(booking.RoomTypeID), func(ctx context.Context, tx *sqlx.Tx) error {
		current, err := s.repo.GetTx(ctx, tx, filter)
		if err != nil {
			log.Error().Err(err).Msg("failed to get booking")

			return fmt.Errorf("failed to get booking: %w", err)
		}

		if current.ID == constant.Empty {
			return failure.NotFound(msgBookingNotFound) // nolint:wrapcheck
		}

		updated, err = fn(ctx, tx, current)

		return err
	})
	if err != nil {
		if shared.IsPqErrorCode(err, constant.PqErrorCodeExclusionViolation) {
			return updated, failure.ConflictFrom(fmt.Errorf("%s: %w", msgRoomOccupied, err)) // nolint:wrapcheck
		}

		return updated, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		InvalidateCaches(c, s.cache, id)
	}()

	return updated, nil
}

func (s *serviceImpl) ensureRoomFree(ctx context.Context, tx *sqlx.Tx, booking model.Booking) error {
	overlapping, err := s.repo.FindOverlappingTx(ctx, tx, model.OverlapQuery{
		RoomIDs:   []string{booking.RoomID()},
		CheckIn:   booking.CheckIn,
		CheckOut:  booking.CheckOut,
		Statuses:  model.BlockingStatuses,
		ExcludeID: booking.ID,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to find overlapping bookings")

		return fmt.Errorf("failed to find overlapping bookings: %w", err)
	}

	if len(overlapping) > 0 {
		log.Warn().Str("booking", booking.ID).Str("conflict", overlapping[0].ID).Msg("room already booked")

		return failure.Conflict(msgRoomOccupied) // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) update(ctx context.Context, tx *sqlx.Tx, fields map[string]any, id string) error {
	if err := s.repo.UpdateTx(ctx, tx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return fmt.Errorf("failed to update booking: %w", err)
	}

	return nil
}

// InvalidateCaches drops the cached listings, counts and dashboard. The
// single booking entry is dropped too when id is set.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, id string) {
	if id != constant.Empty {
		if err := redisCache.Delete(ctx, shared.BuildCacheKey(CacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}
	}

	shared.InvalidateCaches(ctx, redisCache, CacheGetAllBooking)
	shared.InvalidateCaches(ctx, redisCache, CacheCountBooking)
	shared.InvalidateCaches(ctx, redisCache, CacheDashboard)
}

func statusFilter(status string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldStatus,
				Value:    status,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}
}
