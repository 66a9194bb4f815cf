package availability

import (
	roomModel "hotel/internal/domains/room/model"
	roomTypeModel "hotel/internal/domains/roomtype/model"
	"time"
)

type Kind string

const (
	KindRejected  Kind = "rejected"
	KindConfirmed Kind = "confirmed"
	KindPending   Kind = "pending"
)

// Outcome is the result of one intake decision. Room is set only for confirmed outcomes and
// BookingID is empty for rejected ones.
type Outcome struct {
	Kind         Kind
	Reason       error
	LeadTime     LeadTimeDecision
	BookingID    string
	Room         *roomModel.Room
	RoomType     roomTypeModel.RoomType
	Price        Price
	CheckIn      time.Time
	CheckOut     time.Time
	Alternatives *Alternatives
}

type DateSuggestion struct {
	CheckIn  time.Time
	CheckOut time.Time
	Room     roomModel.Room
	Price    Price
}

type RoomTypeSuggestion struct {
	RoomType roomTypeModel.RoomType
	Price    Price
	// Room is the room that would be assigned. It is nil when availability was not verified.
	Room *roomModel.Room
}

type Alternatives struct {
	Dates     []DateSuggestion
	RoomTypes []RoomTypeSuggestion
}

func (a Alternatives) Empty() bool {
	return len(a.Dates) == 0 && len(a.RoomTypes) == 0
}
