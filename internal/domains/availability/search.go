package availability

import (
	"context"
	"fmt"
	bookingModel "hotel/internal/domains/booking/model"
	roomModel "hotel/internal/domains/room/model"
	roomTypeModel "hotel/internal/domains/roomtype/model"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"slices"
	"strconv"
	"strings"
	"time"
)

func (e *engineImpl) Alternatives(ctx context.Context, roomTypeID string, checkIn, checkOut time.Time) (res Alternatives, err error) {
	ctx, scope := e.otel.NewScope(ctx, constant.OtelEngineScopeName, constant.OtelEngineScopeName+".Alternatives")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if res.Dates, err = e.SuggestDates(ctx, roomTypeID, checkIn, checkOut); err != nil {
		return res, err
	}

	if res.RoomTypes, err = e.SuggestRoomTypes(ctx, roomTypeID, checkIn, checkOut); err != nil {
		return res, err
	}

	return res, nil
}

// SuggestDates keeps the room type and the number of nights and moves check-in forward one
// day at a time, up to the search horizon.
func (e *engineImpl) SuggestDates(ctx context.Context, roomTypeID string, checkIn, checkOut time.Time) (res []DateSuggestion, err error) {
	ctx, scope := e.otel.NewScope(ctx, constant.OtelEngineScopeName, constant.OtelEngineScopeName+".SuggestDates")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	checkIn, checkOut = Day(checkIn), Day(checkOut)

	nights, err := Nights(checkIn, checkOut)
	if err != nil {
		return nil, failure.BadRequest(err) // nolint:wrapcheck
	}

	roomType, err := e.roomType(ctx, roomTypeID)
	if err != nil {
		return nil, err
	}

	rooms, err := e.store.ListActiveRooms(ctx, roomType.ID)
	if err != nil {
		return nil, storeFailure(fmt.Errorf("failed to list active rooms: %w", err))
	}

	rooms = activeRooms(rooms)
	if len(rooms) == 0 {
		return []DateSuggestion{}, nil
	}

	horizon := e.policy.SearchHorizonDays

	occupied, err := loadOccupancy(ctx, e.store, rooms, AddDays(checkIn, 1), AddDays(checkIn, horizon+nights))
	if err != nil {
		return nil, storeFailure(err)
	}

	now := e.clock.Now()
	res = []DateSuggestion{}

	for offset := 1; offset <= horizon && len(res) < e.policy.MaxSuggestions; offset++ {
		start := AddDays(checkIn, offset)
		stay := bookingModel.Interval{Start: start, End: AddDays(start, nights)}

		if !CheckLeadTime(start, now, e.policy.MinLeadDays).Allowed {
			continue
		}

		for i := range rooms {
			if !occupied.free(rooms[i].ID, stay) {
				continue
			}

			price, _ := Quote(roomType.PricePerNight, stay.Start, stay.End)
			res = append(res, DateSuggestion{
				CheckIn:  stay.Start,
				CheckOut: stay.End,
				Room:     rooms[i],
				Price:    price,
			})

			break
		}
	}

	return res, nil
}

// SuggestRoomTypes lists other room types holding at least as many guests, cheapest first.
// With VerifySubstitutes only types with a free room for the same stay are kept.
func (e *engineImpl) SuggestRoomTypes(ctx context.Context, roomTypeID string, checkIn, checkOut time.Time) (res []RoomTypeSuggestion, err error) {
	ctx, scope := e.otel.NewScope(ctx, constant.OtelEngineScopeName, constant.OtelEngineScopeName+".SuggestRoomTypes")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	checkIn, checkOut = Day(checkIn), Day(checkOut)

	if _, err = Nights(checkIn, checkOut); err != nil {
		return nil, failure.BadRequest(err) // nolint:wrapcheck
	}

	requested, err := e.roomType(ctx, roomTypeID)
	if err != nil {
		return nil, err
	}

	roomTypes, err := e.store.ListRoomTypes(ctx)
	if err != nil {
		return nil, storeFailure(fmt.Errorf("failed to list room types: %w", err))
	}

	candidates := make([]roomTypeModel.RoomType, 0, len(roomTypes))
	for _, candidate := range roomTypes {
		if candidate.ID != requested.ID && candidate.MaxGuests >= requested.MaxGuests {
			candidates = append(candidates, candidate)
		}
	}

	slices.SortStableFunc(candidates, func(a, b roomTypeModel.RoomType) int {
		if c := a.PricePerNight.Cmp(b.PricePerNight); c != 0 {
			return c
		}

		return strings.Compare(a.Name, b.Name)
	})

	res = []RoomTypeSuggestion{}

	for _, candidate := range candidates {
		price, _ := Quote(candidate.PricePerNight, checkIn, checkOut)
		suggestion := RoomTypeSuggestion{RoomType: candidate, Price: price}

		if e.policy.VerifySubstitutes {
			room, err := findFreeRoom(ctx, e.store, candidate.ID, checkIn, checkOut)
			if err != nil {
				return nil, storeFailure(err)
			}

			if room == nil {
				continue
			}

			suggestion.Room = room
		}

		res = append(res, suggestion)
	}

	return res, nil
}

func (e *engineImpl) roomType(ctx context.Context, id string) (roomTypeModel.RoomType, error) {
	roomType, err := e.store.GetRoomType(ctx, id)
	if err != nil {
		return roomType, storeFailure(fmt.Errorf("failed to get room type: %w", err))
	}

	if roomType.ID == constant.Empty {
		return roomType, failure.NotFoundFrom(ErrRoomTypeNotFound) // nolint:wrapcheck
	}

	return roomType, nil
}

// occupancy maps a room id to the stays that hold it.
type occupancy map[string][]bookingModel.Interval

func loadOccupancy(ctx context.Context, store Store, rooms []roomModel.Room, from, to time.Time) (occupancy, error) {
	ids := make([]string, len(rooms))
	for i, room := range rooms {
		ids[i] = room.ID
	}

	bookings, err := store.FindOverlappingBookings(ctx, bookingModel.OverlapQuery{
		RoomIDs:  ids,
		CheckIn:  from,
		CheckOut: to,
		Statuses: bookingModel.BlockingStatuses,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to find overlapping bookings: %w", err)
	}

	occupied := occupancy{}

	for _, booking := range bookings {
		if !booking.Blocks() {
			continue
		}

		occupied[booking.RoomID()] = append(occupied[booking.RoomID()], bookingModel.Interval{
			Start: Day(booking.CheckIn),
			End:   Day(booking.CheckOut),
		})
	}

	return occupied, nil
}

func (o occupancy) free(roomID string, stay bookingModel.Interval) bool {
	for _, held := range o[roomID] {
		if held.Overlaps(stay) {
			return false
		}
	}

	return true
}

// activeRooms drops inactive rooms and orders the rest by room number, numerically when both
// numbers are integers.
func activeRooms(rooms []roomModel.Room) []roomModel.Room {
	active := make([]roomModel.Room, 0, len(rooms))
	for _, room := range rooms {
		if room.Active {
			active = append(active, room)
		}
	}

	slices.SortStableFunc(active, func(a, b roomModel.Room) int {
		return compareRoomNumbers(a.RoomNumber, b.RoomNumber)
	})

	return active
}

func compareRoomNumbers(a, b string) int {
	left, errLeft := strconv.Atoi(a)
	right, errRight := strconv.Atoi(b)

	if errLeft == nil && errRight == nil {
		return left - right
	}

	return strings.Compare(a, b)
}
