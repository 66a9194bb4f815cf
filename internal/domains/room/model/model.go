package model

import "hotel/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID         = "id"
	FieldRoomNumber = "room_number"
	FieldRoomTypeID = "room_type_id"
	FieldActive     = "active"
	FieldHasWifi    = "has_wifi"
	FieldHasTV      = "has_tv"
)

type Room struct {
	ID         string `db:"id"`
	RoomNumber string `db:"room_number"`
	RoomTypeID string `db:"room_type_id"`
	Active     bool   `db:"active"`
	HasWifi    bool   `db:"has_wifi"`
	HasTV      bool   `db:"has_tv"`
	model.Metadata
}
