package room_test

import (
	otelMocks "hotel/infras/otel/mocks"
	"hotel/internal/domains/room/mocks"
	"hotel/internal/domains/room/model/dto"
	"hotel/internal/handlers/room"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const (
	roomTypeID = "8f2d3c1a-5b7e-4a10-9c3d-1e2f3a4b5c02"
	roomID     = "4c6e8a0b-2d4f-4b61-8a3c-5e7f9a1b3d02"
)

func newRouter(t *testing.T) (*mocks.MockRoomService, http.Handler) {
	t.Helper()

	svc := mocks.NewMockRoomService(gomock.NewController(t))
	handler := room.New(svc, otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return svc, router
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, target, strings.NewReader(body)))

	return rec
}

func TestCreateRoom(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		setup func(svc *mocks.MockRoomService)
		code  int
	}{
		{
			name: "created",
			body: `{"room_number":"204","room_type_id":"` + roomTypeID + `","has_wifi":true}`,
			setup: func(svc *mocks.MockRoomService) {
				svc.EXPECT().Create(gomock.Any(), dto.CreateRoomRequest{RoomNumber: "204", RoomTypeID: roomTypeID, HasWifi: true}).
					Return(dto.RoomResponse{ID: roomID}, nil)
			},
			code: http.StatusCreated,
		},
		{
			name: "duplicate room number",
			body: `{"room_number":"101","room_type_id":"` + roomTypeID + `"}`,
			setup: func(svc *mocks.MockRoomService) {
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dto.RoomResponse{}, failure.Conflict("room number already exists"))
			},
			code: http.StatusConflict,
		},
		{
			name: "room number with spaces",
			body: `{"room_number":"2 04","room_type_id":"` + roomTypeID + `"}`,
			code: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := newRouter(t)
			if tt.setup != nil {
				tt.setup(svc)
			}

			rec := serve(router, http.MethodPost, "/rooms", tt.body)

			assert.Equal(t, tt.code, rec.Code)
		})
	}
}

func TestGetRooms(t *testing.T) {
	svc, router := newRouter(t)

	svc.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRoomsResponse, error) {
			assert.Equal(t, "rooms.room_number", params.SortBy)
			assert.Equal(t, gDto.SortDirAsc, params.SortDir)

			where, args := filter.GetWhereClause()
			assert.Equal(t, "(rooms.room_type_id = :room_type_id AND rooms.active = :active)", where)
			assert.Equal(t, map[string]any{"room_type_id": roomTypeID, "active": false}, args)

			return dto.GetRoomsResponse{}, nil
		})

	rec := serve(router, http.MethodGet, "/rooms?room_type_id="+roomTypeID+"&active=false&sort_by=password", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetRoomByID(t *testing.T) {
	svc, router := newRouter(t)

	svc.EXPECT().Get(gomock.Any(), roomID).Return(dto.RoomResponse{}, failure.NotFound("room not found"))

	rec := serve(router, http.MethodGet, "/rooms/"+roomID, "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateRoom(t *testing.T) {
	svc, router := newRouter(t)

	inactive := false
	svc.EXPECT().Update(gomock.Any(), dto.UpdateRoomRequest{Active: &inactive}, roomID).Return(nil)

	rec := serve(router, http.MethodPatch, "/rooms/"+roomID, `{"active":false}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}
