package dto

import (
	"hotel/internal/domains/room/model"
	"hotel/shared"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	RoomNumber string `json:"room_number"  validate:"required,max=10,roomnumber"`
	RoomTypeID string `json:"room_type_id" validate:"required,uuid"`
	Active     *bool  `json:"active"       validate:"omitempty"`
	HasWifi    bool   `json:"has_wifi"     validate:"omitempty"`
	HasTV      bool   `json:"has_tv"       validate:"omitempty"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Room{
		ID:         uuid.NewString(),
		RoomNumber: c.RoomNumber,
		RoomTypeID: c.RoomTypeID,
		Active:     active,
		HasWifi:    c.HasWifi,
		HasTV:      c.HasTV,
		Metadata:   gModel.NewMetadata(user, timezone.Now()),
	}
}

type UpdateRoomRequest struct {
	RoomTypeID string `db:"room_type_id" json:"room_type_id" validate:"omitempty,uuid"`
	Active     *bool  `db:"active"       json:"active"       validate:"omitempty"`
	HasWifi    *bool  `db:"has_wifi"     json:"has_wifi"     validate:"omitempty"`
	HasTV      *bool  `db:"has_tv"       json:"has_tv"       validate:"omitempty"`
}

type RoomResponse struct {
	ID         string `json:"id"`
	RoomNumber string `json:"room_number"`
	RoomTypeID string `json:"room_type_id"`
	Active     bool   `json:"active"`
	HasWifi    bool   `json:"has_wifi"`
	HasTV      bool   `json:"has_tv"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.RoomNumber = model.RoomNumber
	r.RoomTypeID = model.RoomTypeID
	r.Active = model.Active
	r.HasWifi = model.HasWifi
	r.HasTV = model.HasTV
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
