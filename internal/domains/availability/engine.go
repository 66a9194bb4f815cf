package availability

//go:generate go run go.uber.org/mock/mockgen -source=./engine.go -destination=./mocks/engine_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotel/infras/otel"
	bookingModel "hotel/internal/domains/booking/model"
	roomModel "hotel/internal/domains/room/model"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/model"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Request struct {
	GuestID    string
	RoomTypeID string
	CheckIn    time.Time
	CheckOut   time.Time
	CreatedBy  string
}

// Engine decides booking requests against room availability.
type Engine interface {
	// Decide classifies the request as rejected, confirmed or pending. Confirmed and pending
	// outcomes insert exactly one booking.
	Decide(ctx context.Context, req Request) (Outcome, error)
	DecideBooking(ctx context.Context, guestID, roomTypeID string, checkIn time.Time, nights int) (Outcome, error)
	// FindFreeRoom returns the lowest numbered free room of the type, or nil.
	FindFreeRoom(ctx context.Context, roomTypeID string, checkIn, checkOut time.Time) (*roomModel.Room, error)
	SuggestDates(ctx context.Context, roomTypeID string, checkIn, checkOut time.Time) ([]DateSuggestion, error)
	SuggestRoomTypes(ctx context.Context, roomTypeID string, checkIn, checkOut time.Time) ([]RoomTypeSuggestion, error)
	Alternatives(ctx context.Context, roomTypeID string, checkIn, checkOut time.Time) (Alternatives, error)
}

type engineImpl struct {
	store  Store
	policy Policy
	clock  Clock
	otel   otel.Otel
}

func New(store Store, policy Policy, clock Clock, otel otel.Otel) Engine {
	return &engineImpl{
		store:  store,
		policy: policy,
		clock:  clock,
		otel:   otel,
	}
}

func (e *engineImpl) DecideBooking(ctx context.Context, guestID, roomTypeID string, checkIn time.Time, nights int) (Outcome, error) {
	return e.Decide(ctx, Request{
		GuestID:    guestID,
		RoomTypeID: roomTypeID,
		CheckIn:    checkIn,
		CheckOut:   AddDays(checkIn, nights),
		CreatedBy:  constant.SystemUser,
	})
}

func (e *engineImpl) Decide(ctx context.Context, req Request) (out Outcome, err error) {
	ctx, scope := e.otel.NewScope(ctx, constant.OtelEngineScopeName, constant.OtelEngineScopeName+".Decide")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	out.CheckIn, out.CheckOut = Day(req.CheckIn), Day(req.CheckOut)

	if _, err = Nights(out.CheckIn, out.CheckOut); err != nil {
		return out, failure.BadRequest(err) // nolint:wrapcheck
	}

	now := e.clock.Now()

	out.LeadTime = CheckLeadTime(out.CheckIn, now, e.policy.MinLeadDays)
	if !out.LeadTime.Allowed {
		log.Info().Int("gapDays", out.LeadTime.GapDays).Int("minLeadDays", e.policy.MinLeadDays).Msg("booking rejected, lead time too short")

		out.Kind = KindRejected
		out.Reason = ErrLeadTimeTooShort

		return out, nil
	}

	err = e.store.Atomic(ctx, bookingModel.LockKey(req.RoomTypeID), func(ctx context.Context, store Store) error {
		return e.decide(ctx, store, req, now, &out)
	})
	if err != nil {
		log.Error().Err(err).Str("roomType", req.RoomTypeID).Msg("failed to decide booking")

		return out, storeFailure(err)
	}

	scope.SetAttribute("booking.outcome", string(out.Kind))

	if out.Kind == KindPending && e.policy.SuggestOnPending {
		alternatives, altErr := e.Alternatives(ctx, req.RoomTypeID, out.CheckIn, out.CheckOut)
		if altErr != nil {
			log.Warn().Err(altErr).Str("booking", out.BookingID).Msg("failed to search alternatives for pending booking")
		} else {
			out.Alternatives = &alternatives
		}
	}

	return out, nil
}

// decide runs inside the room type's lock so the free room it picks cannot be taken before
// the booking is inserted.
func (e *engineImpl) decide(ctx context.Context, store Store, req Request, now time.Time, out *Outcome) error {
	exists, err := store.GuestExists(ctx, req.GuestID)
	if err != nil {
		return fmt.Errorf("failed to check guest: %w", err)
	}

	if !exists {
		return failure.NotFoundFrom(ErrGuestNotFound) // nolint:wrapcheck
	}

	roomType, err := store.GetRoomType(ctx, req.RoomTypeID)
	if err != nil {
		return fmt.Errorf("failed to get room type: %w", err)
	}

	if roomType.ID == constant.Empty {
		return failure.NotFoundFrom(ErrRoomTypeNotFound) // nolint:wrapcheck
	}

	price, err := Quote(roomType.PricePerNight, out.CheckIn, out.CheckOut)
	if err != nil {
		return failure.BadRequest(err) // nolint:wrapcheck
	}

	room, err := findFreeRoom(ctx, store, roomType.ID, out.CheckIn, out.CheckOut)
	if err != nil {
		return err
	}

	booking := bookingModel.Booking{
		ID:         uuid.NewString(),
		GuestID:    req.GuestID,
		RoomTypeID: roomType.ID,
		CheckIn:    out.CheckIn,
		CheckOut:   out.CheckOut,
		Status:     bookingModel.StatusPending,
		TotalPrice: price.Total,
		Metadata:   model.NewMetadata(req.CreatedBy, now),
	}

	if room != nil {
		booking.AssignedRoomID = &room.ID
		booking.Status = bookingModel.StatusConfirmed
	}

	id, err := store.InsertBooking(ctx, booking)
	if err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}

	out.Kind = KindPending
	if room != nil {
		out.Kind = KindConfirmed
	}

	out.BookingID = id
	out.Room = room
	out.RoomType = roomType
	out.Price = price

	return nil
}

func (e *engineImpl) FindFreeRoom(ctx context.Context, roomTypeID string, checkIn, checkOut time.Time) (room *roomModel.Room, err error) {
	ctx, scope := e.otel.NewScope(ctx, constant.OtelEngineScopeName, constant.OtelEngineScopeName+".FindFreeRoom")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	checkIn, checkOut = Day(checkIn), Day(checkOut)

	if _, err = Nights(checkIn, checkOut); err != nil {
		return nil, failure.BadRequest(err) // nolint:wrapcheck
	}

	room, err = findFreeRoom(ctx, e.store, roomTypeID, checkIn, checkOut)
	if err != nil {
		return nil, storeFailure(err)
	}

	return room, nil
}

func findFreeRoom(ctx context.Context, store Store, roomTypeID string, checkIn, checkOut time.Time) (*roomModel.Room, error) {
	rooms, err := store.ListActiveRooms(ctx, roomTypeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list active rooms: %w", err)
	}

	rooms = activeRooms(rooms)
	if len(rooms) == 0 {
		return nil, nil
	}

	occupied, err := loadOccupancy(ctx, store, rooms, checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	stay := bookingModel.Interval{Start: checkIn, End: checkOut}

	for i := range rooms {
		if occupied.free(rooms[i].ID, stay) {
			return &rooms[i], nil
		}
	}

	return nil, nil
}
