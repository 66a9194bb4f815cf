package dto

import (
	"fmt"
	"hotel/internal/domains/availability"
	bookingModel "hotel/internal/domains/booking/model"
	roomModel "hotel/internal/domains/room/model"
	"hotel/shared/constant"
	"hotel/shared/event"
	"hotel/shared/failure"
	"hotel/shared/timezone"
	"net/http"
	"strconv"
	"time"
)

const (
	queryRoomTypeID   = "room_type_id"
	queryCheckInDate  = "check_in_date"
	queryCheckOutDate = "check_out_date"
	queryDuration     = "duration"
)

// StayRequest describes a stay by check-in and either check-out or a number of nights.
// CheckOutDate wins when both are given.
type StayRequest struct {
	RoomTypeID   string `json:"room_type_id"   validate:"required,uuid"`
	CheckInDate  string `json:"check_in_date"  validate:"required,datetime=2006-01-02"`
	CheckOutDate string `json:"check_out_date" validate:"required_without=Duration,omitempty,datetime=2006-01-02"`
	Duration     int    `json:"duration"       validate:"required_without=CheckOutDate,omitempty,min=1"`
}

func (s *StayRequest) FromRequest(r *http.Request) {
	query := r.URL.Query()

	s.RoomTypeID = query.Get(queryRoomTypeID)
	s.CheckInDate = query.Get(queryCheckInDate)
	s.CheckOutDate = query.Get(queryCheckOutDate)

	if duration, err := strconv.Atoi(query.Get(queryDuration)); err == nil {
		s.Duration = duration
	}
}

func (s StayRequest) Dates() (checkIn, checkOut time.Time, err error) {
	checkIn, err = timezone.ParseDate(s.CheckInDate)
	if err != nil {
		return checkIn, checkOut, failure.BadRequest(fmt.Errorf("invalid check_in_date: %w", err)) // nolint:wrapcheck
	}

	checkIn = availability.Day(checkIn)

	if s.CheckOutDate == constant.Empty {
		return checkIn, availability.AddDays(checkIn, s.Duration), nil
	}

	checkOut, err = timezone.ParseDate(s.CheckOutDate)
	if err != nil {
		return checkIn, checkOut, failure.BadRequest(fmt.Errorf("invalid check_out_date: %w", err)) // nolint:wrapcheck
	}

	return checkIn, availability.Day(checkOut), nil
}

type IntakeRequest struct {
	GuestID string `json:"guest_id" validate:"required,uuid"`
	StayRequest
}

func (i IntakeRequest) ToRequest(user string) (availability.Request, error) {
	checkIn, checkOut, err := i.Dates()
	if err != nil {
		return availability.Request{}, err
	}

	return availability.Request{
		GuestID:    i.GuestID,
		RoomTypeID: i.RoomTypeID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		CreatedBy:  user,
	}, nil
}

type PriceResponse struct {
	Nights        int    `json:"nights"`
	PricePerNight string `json:"price_per_night"`
	TotalPrice    string `json:"total_price"`
}

func (p *PriceResponse) FromPrice(price availability.Price) {
	p.Nights = price.Nights
	p.PricePerNight = price.PerNight.StringFixed(2)
	p.TotalPrice = price.Total.StringFixed(2)
}

type RoomSummary struct {
	ID         string `json:"id"`
	RoomNumber string `json:"room_number"`
	HasWifi    bool   `json:"has_wifi"`
	HasTV      bool   `json:"has_tv"`
}

func NewRoomSummary(room *roomModel.Room) *RoomSummary {
	if room == nil {
		return nil
	}

	return &RoomSummary{
		ID:         room.ID,
		RoomNumber: room.RoomNumber,
		HasWifi:    room.HasWifi,
		HasTV:      room.HasTV,
	}
}

type DateSuggestionResponse struct {
	CheckInDate  string        `json:"check_in_date"`
	CheckOutDate string        `json:"check_out_date"`
	Room         *RoomSummary  `json:"room"`
	Price        PriceResponse `json:"price"`
}

type RoomTypeSuggestionResponse struct {
	RoomTypeID string        `json:"room_type_id"`
	Name       string        `json:"name"`
	MaxGuests  int           `json:"max_guests"`
	Verified   bool          `json:"verified"`
	Room       *RoomSummary  `json:"room,omitempty"`
	Price      PriceResponse `json:"price"`
}

type AlternativesResponse struct {
	Dates     []DateSuggestionResponse     `json:"dates"`
	RoomTypes []RoomTypeSuggestionResponse `json:"room_types"`
}

func (a *AlternativesResponse) FromAlternatives(alternatives availability.Alternatives) {
	a.Dates = make([]DateSuggestionResponse, len(alternatives.Dates))
	for i, suggestion := range alternatives.Dates {
		a.Dates[i] = DateSuggestionResponse{
			CheckInDate:  suggestion.CheckIn.Format(constant.DayFormat),
			CheckOutDate: suggestion.CheckOut.Format(constant.DayFormat),
			Room:         NewRoomSummary(&suggestion.Room),
		}
		a.Dates[i].Price.FromPrice(suggestion.Price)
	}

	a.RoomTypes = make([]RoomTypeSuggestionResponse, len(alternatives.RoomTypes))
	for i, suggestion := range alternatives.RoomTypes {
		a.RoomTypes[i] = RoomTypeSuggestionResponse{
			RoomTypeID: suggestion.RoomType.ID,
			Name:       suggestion.RoomType.Name,
			MaxGuests:  suggestion.RoomType.MaxGuests,
			Verified:   suggestion.Room != nil,
			Room:       NewRoomSummary(suggestion.Room),
		}
		a.RoomTypes[i].Price.FromPrice(suggestion.Price)
	}
}

type IntakeResponse struct {
	Status       string                `json:"status"`
	BookingID    string                `json:"booking_id,omitempty"`
	Reason       string                `json:"reason,omitempty"`
	LeadTimeDays int                   `json:"lead_time_days"`
	CheckInDate  string                `json:"check_in_date"`
	CheckOutDate string                `json:"check_out_date"`
	RoomTypeID   string                `json:"room_type_id,omitempty"`
	Room         *RoomSummary          `json:"room,omitempty"`
	Price        *PriceResponse        `json:"price,omitempty"`
	Alternatives *AlternativesResponse `json:"alternatives,omitempty"`
}

func (r *IntakeResponse) FromOutcome(out availability.Outcome) {
	r.Status = string(out.Kind)
	r.BookingID = out.BookingID
	r.LeadTimeDays = out.LeadTime.GapDays
	r.CheckInDate = out.CheckIn.Format(constant.DayFormat)
	r.CheckOutDate = out.CheckOut.Format(constant.DayFormat)

	if out.Reason != nil {
		r.Reason = out.Reason.Error()
	}

	if out.Kind == availability.KindRejected {
		return
	}

	r.RoomTypeID = out.RoomType.ID
	r.Room = NewRoomSummary(out.Room)
	r.Price = &PriceResponse{}
	r.Price.FromPrice(out.Price)

	if out.Alternatives != nil {
		r.Alternatives = &AlternativesResponse{}
		r.Alternatives.FromAlternatives(*out.Alternatives)
	}
}

// HTTPStatus maps the outcome to 201 confirmed, 202 pending and 422 rejected.
func (r IntakeResponse) HTTPStatus() int {
	switch availability.Kind(r.Status) {
	case availability.KindConfirmed:
		return http.StatusCreated
	case availability.KindPending:
		return http.StatusAccepted
	default:
		return http.StatusUnprocessableEntity
	}
}

type AvailabilityResponse struct {
	RoomTypeID   string        `json:"room_type_id"`
	CheckInDate  string        `json:"check_in_date"`
	CheckOutDate string        `json:"check_out_date"`
	Available    bool          `json:"available"`
	Room         *RoomSummary  `json:"room,omitempty"`
	Price        PriceResponse `json:"price"`
}

// OutcomeEvent describes a confirmed or pending outcome for the booking topic.
func OutcomeEvent(out availability.Outcome, guestID string) event.Booking {
	evt := event.Booking{
		Type:       event.TypeBookingPending,
		BookingID:  out.BookingID,
		GuestID:    guestID,
		RoomTypeID: out.RoomType.ID,
		Status:     bookingModel.StatusPending,
		CheckIn:    out.CheckIn.Format(constant.DayFormat),
		CheckOut:   out.CheckOut.Format(constant.DayFormat),
		TotalPrice: out.Price.Total.StringFixed(2),
		OccurredAt: timezone.Now(),
	}

	if out.Kind == availability.KindConfirmed && out.Room != nil {
		evt.Type = event.TypeBookingConfirmed
		evt.Status = bookingModel.StatusConfirmed
		evt.RoomID = out.Room.ID
	}

	return evt
}
