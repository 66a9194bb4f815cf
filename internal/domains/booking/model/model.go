package model

import (
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/model"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID             = "id"
	FieldGuestID        = "guest_id"
	FieldRoomTypeID     = "room_type_id"
	FieldAssignedRoomID = "assigned_room_id"
	FieldCheckIn        = "check_in"
	FieldCheckOut       = "check_out"
	FieldStatus         = "status"
	FieldTotalPrice     = "total_price"
)

const (
	StatusPending    = "pending"
	StatusConfirmed  = "confirmed"
	StatusCheckedIn  = "checked-in"
	StatusCheckedOut = "checked-out"
	StatusCancelled  = "cancelled"
)

const lockKeyPrefix = "booking:room_type:"

// BlockingStatuses occupy the assigned room for the stay.
var BlockingStatuses = []string{StatusConfirmed, StatusCheckedIn}

type Booking struct {
	ID             string          `db:"id"`
	GuestID        string          `db:"guest_id"`
	RoomTypeID     string          `db:"room_type_id"`
	AssignedRoomID *string         `db:"assigned_room_id"`
	CheckIn        time.Time       `db:"check_in"`
	CheckOut       time.Time       `db:"check_out"`
	Status         string          `db:"status"`
	TotalPrice     decimal.Decimal `db:"total_price"`
	model.Metadata
}

// BookingDetail is the admin view of a booking with the guest, room type and room it refers to.
type BookingDetail struct {
	Booking
	GuestFirstName string  `db:"guest_first_name" table:"guests"     column:"first_name"`
	GuestLastName  string  `db:"guest_last_name"  table:"guests"     column:"last_name"`
	GuestEmail     string  `db:"guest_email"      table:"guests"     column:"email"`
	RoomTypeName   string  `db:"room_type_name"   table:"room_types" column:"name"`
	RoomNumber     *string `db:"room_number"      table:"rooms"      column:"room_number"`
}

func (BookingDetail) GetJoinQuery() string {
	return "JOIN guests ON guests.id = bookings.guest_id " +
		"JOIN room_types ON room_types.id = bookings.room_type_id " +
		"LEFT JOIN rooms ON rooms.id = bookings.assigned_room_id"
}

func (b Booking) RoomID() string {
	if b.AssignedRoomID == nil {
		return constant.Empty
	}

	return *b.AssignedRoomID
}

func (b Booking) Stay() Interval {
	return Interval{Start: b.CheckIn, End: b.CheckOut}
}

// Blocks reports whether the booking holds its assigned room.
func (b Booking) Blocks() bool {
	return b.AssignedRoomID != nil && IsBlocking(b.Status)
}

func IsBlocking(status string) bool {
	return slices.Contains(BlockingStatuses, status)
}

// LockKey names the advisory lock that serializes writers for one room type.
func LockKey(roomTypeID string) string {
	return lockKeyPrefix + roomTypeID
}

// Interval is a half-open stay [Start, End). The check-out day is not occupied.
type Interval struct {
	Start time.Time
	End   time.Time
}

func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && other.Start.Before(i.End)
}

// OverlapQuery selects bookings whose stay overlaps [CheckIn, CheckOut). RoomIDs takes
// precedence over RoomTypeID.
type OverlapQuery struct {
	RoomIDs    []string
	RoomTypeID string
	CheckIn    time.Time
	CheckOut   time.Time
	Statuses   []string
	ExcludeID  string
}

func (q OverlapQuery) Filter() gDto.FilterGroup {
	filters := []any{
		gDto.Filter{
			ArgName:  "overlap_check_out",
			Field:    FieldCheckIn,
			Value:    q.CheckOut.Format(constant.DayFormat),
			Operator: gDto.FilterOperatorLess,
			Table:    TableName,
		},
		gDto.Filter{
			ArgName:  "overlap_check_in",
			Field:    FieldCheckOut,
			Value:    q.CheckIn.Format(constant.DayFormat),
			Operator: gDto.FilterOperatorGreater,
			Table:    TableName,
		},
	}

	switch {
	case len(q.RoomIDs) > 0:
		filters = append(filters, gDto.Filter{
			Field:    FieldAssignedRoomID,
			Value:    q.RoomIDs,
			Operator: gDto.FilterOperatorIn,
			Table:    TableName,
		})
	case q.RoomTypeID != constant.Empty:
		filters = append(filters, gDto.Filter{
			Field:    FieldRoomTypeID,
			Value:    q.RoomTypeID,
			Operator: gDto.FilterOperatorEq,
			Table:    TableName,
		})
	}

	if len(q.Statuses) > 0 {
		filters = append(filters, gDto.Filter{
			Field:    FieldStatus,
			Value:    q.Statuses,
			Operator: gDto.FilterOperatorIn,
			Table:    TableName,
		})
	}

	if q.ExcludeID != constant.Empty {
		filters = append(filters, gDto.Filter{
			ArgName:  "exclude_id",
			Field:    FieldID,
			Value:    q.ExcludeID,
			Operator: gDto.FilterOperatorNotEq,
			Table:    TableName,
		})
	}

	return gDto.FilterGroup{
		Filters:  filters,
		Operator: gDto.FilterGroupOperatorAnd,
	}
}
