package dto

import (
	"hotel/internal/domains/booking/model"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/event"
	"hotel/shared/timezone"
)

type UpdateBookingStatusRequest struct {
	Status string `db:"status" json:"status" validate:"required,oneof=pending confirmed checked-in checked-out cancelled"`
}

type AssignRoomRequest struct {
	RoomID string `db:"assigned_room_id" json:"room_id" validate:"required,uuid"`
}

type BookingResponse struct {
	ID             string  `json:"id"`
	GuestID        string  `json:"guest_id"`
	RoomTypeID     string  `json:"room_type_id"`
	AssignedRoomID *string `json:"assigned_room_id"`
	CheckInDate    string  `json:"check_in_date"`
	CheckOutDate   string  `json:"check_out_date"`
	Nights         int     `json:"nights"`
	Status         string  `json:"status"`
	TotalPrice     string  `json:"total_price"`
	Guest          *Guest  `json:"guest,omitempty"`
	RoomTypeName   string  `json:"room_type_name,omitempty"`
	RoomNumber     *string `json:"room_number,omitempty"`
	gDto.Metadata
}

type Guest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// FromDetail fills the response from a booking joined with its guest, room type and room.
func (r *BookingResponse) FromDetail(detail model.BookingDetail) {
	r.FromModel(detail.Booking)

	r.Guest = &Guest{
		FirstName: detail.GuestFirstName,
		LastName:  detail.GuestLastName,
		Email:     detail.GuestEmail,
	}
	r.RoomTypeName = detail.RoomTypeName
	r.RoomNumber = detail.RoomNumber
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.GuestID = model.GuestID
	r.RoomTypeID = model.RoomTypeID
	r.AssignedRoomID = model.AssignedRoomID
	r.CheckInDate = model.CheckIn.Format(constant.DayFormat)
	r.CheckOutDate = model.CheckOut.Format(constant.DayFormat)
	r.Nights = int(model.CheckOut.Sub(model.CheckIn) / constant.DayDuration)
	r.Status = model.Status
	r.TotalPrice = model.TotalPrice.StringFixed(2)
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromDetails(details []model.BookingDetail, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(details))
	for i, detail := range details {
		r.Bookings[i].FromDetail(detail)
	}
}

type DashboardResponse struct {
	ConfirmedBookings int `json:"confirmed_bookings"`
	PendingBookings   int `json:"pending_bookings"`
	ActiveRooms       int `json:"active_rooms"`
	Guests            int `json:"guests"`
}

func ToEvent(eventType string, booking model.Booking) event.Booking {
	return event.Booking{
		Type:       eventType,
		BookingID:  booking.ID,
		GuestID:    booking.GuestID,
		RoomTypeID: booking.RoomTypeID,
		RoomID:     booking.RoomID(),
		Status:     booking.Status,
		CheckIn:    booking.CheckIn.Format(constant.DayFormat),
		CheckOut:   booking.CheckOut.Format(constant.DayFormat),
		TotalPrice: booking.TotalPrice.StringFixed(2),
		OccurredAt: timezone.Now(),
	}
}
