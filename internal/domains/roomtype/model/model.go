package model

import (
	"hotel/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "room_types"
	EntityName = "room_type"

	FieldID            = "id"
	FieldName          = "name"
	FieldDescription   = "description"
	FieldPricePerNight = "price_per_night"
	FieldMaxGuests     = "max_guests"
)

type RoomType struct {
	ID            string          `db:"id"`
	Name          string          `db:"name"`
	Description   string          `db:"description"`
	PricePerNight decimal.Decimal `db:"price_per_night"`
	MaxGuests     int             `db:"max_guests"`
	model.Metadata
}
