package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Availability=MockAvailabilityService

import (
	"context"
	"fmt"
	"hotel/config"
	"hotel/infras/otel"
	"hotel/internal/domains/availability"
	"hotel/internal/domains/availability/model/dto"
	bookingService "hotel/internal/domains/booking/service"
	roomTypeModel "hotel/internal/domains/roomtype/model"
	roomTypeRepo "hotel/internal/domains/roomtype/repository"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	"hotel/shared/event"
	"hotel/shared/failure"

	"github.com/rs/zerolog/log"
)

type Availability interface {
	Intake(ctx context.Context, req dto.IntakeRequest) (dto.IntakeResponse, error)
	Check(ctx context.Context, req dto.StayRequest) (dto.AvailabilityResponse, error)
	Alternatives(ctx context.Context, req dto.StayRequest) (dto.AlternativesResponse, error)
}

type serviceImpl struct {
	engine       availability.Engine
	roomTypeRepo roomTypeRepo.RoomType
	publisher    event.Publisher
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(
	engine availability.Engine,
	roomTypeRepo roomTypeRepo.RoomType,
	publisher event.Publisher,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Availability {
	return &serviceImpl{
		engine:       engine,
		roomTypeRepo: roomTypeRepo,
		publisher:    publisher,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

func (s *serviceImpl) Intake(ctx context.Context, req dto.IntakeRequest) (res dto.IntakeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Intake")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == constant.Empty {
		user = constant.SystemUser
	}

	request, err := req.ToRequest(user)
	if err != nil {
		return res, err
	}

	out, err := s.engine.Decide(ctx, request)
	if err != nil {
		log.Error().Err(err).Str("roomType", req.RoomTypeID).Msg("failed to decide booking")

		return res, fmt.Errorf("failed to decide booking: %w", err)
	}

	res.FromOutcome(out)

	if out.Kind == availability.KindRejected {
		return res, nil
	}

	log.Info().Str("booking", out.BookingID).Str("status", string(out.Kind)).Msg("booking accepted")

	event.PublishAsync(ctx, s.publisher, dto.OutcomeEvent(out, req.GuestID))

	go func() {
		c := context.WithoutCancel(ctx)

		bookingService.InvalidateCaches(c, s.cache, constant.Empty)
	}()

	return res, nil
}

func (s *serviceImpl) Check(ctx context.Context, req dto.StayRequest) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Check")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	checkIn, checkOut, err := req.Dates()
	if err != nil {
		return res, err
	}

	roomType, err := s.roomTypeRepo.Get(ctx, shared.FilterByID(req.RoomTypeID, roomTypeModel.FieldID, roomTypeModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room type")

		return res, fmt.Errorf("failed to get room type: %w", err)
	}

	if roomType.ID == constant.Empty {
		return res, failure.NotFoundFrom(availability.ErrRoomTypeNotFound) // nolint:wrapcheck
	}

	price, err := availability.Quote(roomType.PricePerNight, checkIn, checkOut)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	room, err := s.engine.FindFreeRoom(ctx, roomType.ID, checkIn, checkOut)
	if err != nil {
		log.Error().Err(err).Msg("failed to find free room")

		return res, fmt.Errorf("failed to find free room: %w", err)
	}

	res.RoomTypeID = roomType.ID
	res.CheckInDate = checkIn.Format(constant.DayFormat)
	res.CheckOutDate = checkOut.Format(constant.DayFormat)
	res.Available = room != nil
	res.Room = dto.NewRoomSummary(room)
	res.Price.FromPrice(price)

	return res, nil
}

func (s *serviceImpl) Alternatives(ctx context.Context, req dto.StayRequest) (res dto.AlternativesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Alternatives")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	checkIn, checkOut, err := req.Dates()
	if err != nil {
		return res, err
	}

	alternatives, err := s.engine.Alternatives(ctx, req.RoomTypeID, checkIn, checkOut)
	if err != nil {
		log.Error().Err(err).Msg("failed to search alternatives")

		return res, fmt.Errorf("failed to search alternatives: %w", err)
	}

	res.FromAlternatives(alternatives)

	return res, nil
}
