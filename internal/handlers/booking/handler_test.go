package booking_test

import (
	"encoding/json"
	otelMocks "hotel/infras/otel/mocks"
	"hotel/internal/domains/availability/mocks"
	availabilityDto "hotel/internal/domains/availability/model/dto"
	bookingMocks "hotel/internal/domains/booking/mocks"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/handlers/booking"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	guestID    = "6f1c1c56-6b0e-4c43-9a4d-0f4d1f1b7a01"
	roomTypeID = "8f2d3c1a-5b7e-4a10-9c3d-1e2f3a4b5c02"
	roomID     = "4c6e8a0b-2d4f-4b61-8a3c-5e7f9a1b3d02"
	bookingID  = "0a4f2f44-2b0e-4a7e-8d1c-7c1b2f9e0b11"
)

type fixture struct {
	bookings     *bookingMocks.MockBookingService
	availability *mocks.MockAvailabilityService
	router       http.Handler
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := fixture{
		bookings:     bookingMocks.NewMockBookingService(ctrl),
		availability: mocks.NewMockAvailabilityService(ctrl),
	}

	handler := booking.New(f.bookings, f.availability, otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)
	f.router = router

	return f
}

func (f fixture) do(method, path, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))

	return rec
}

func TestCreateBooking(t *testing.T) {
	body := `{"guest_id":"` + guestID + `","room_type_id":"` + roomTypeID + `","check_in_date":"2026-12-01","duration":3}`

	tests := []struct {
		name   string
		status string
		code   int
	}{
		{name: "confirmed", status: "confirmed", code: http.StatusCreated},
		{name: "pending", status: "pending", code: http.StatusAccepted},
		{name: "rejected", status: "rejected", code: http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.availability.EXPECT().Intake(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ any, req availabilityDto.IntakeRequest) (availabilityDto.IntakeResponse, error) {
					assert.Equal(t, guestID, req.GuestID)
					assert.Equal(t, roomTypeID, req.RoomTypeID)
					assert.Equal(t, 3, req.Duration)

					return availabilityDto.IntakeResponse{Status: tt.status, CheckInDate: req.CheckInDate}, nil
				})

			rec := f.do(http.MethodPost, "/bookings", body)

			require.Equal(t, tt.code, rec.Code)

			var res struct {
				Data availabilityDto.IntakeResponse `json:"data"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
			assert.Equal(t, tt.status, res.Data.Status)
		})
	}
}

func TestCreateBooking_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"guest_id":`},
		{name: "missing stay length", body: `{"guest_id":"` + guestID + `","room_type_id":"` + roomTypeID + `","check_in_date":"2026-12-01"}`},
		{name: "bad date", body: `{"guest_id":"` + guestID + `","room_type_id":"` + roomTypeID + `","check_in_date":"01/12/2026","duration":2}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			rec := f.do(http.MethodPost, "/bookings", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestCreateBooking_StoreUnavailable(t *testing.T) {
	f := newFixture(t)

	f.availability.EXPECT().Intake(gomock.Any(), gomock.Any()).
		Return(availabilityDto.IntakeResponse{}, failure.ServiceUnavailable(assert.AnError))

	rec := f.do(http.MethodPost, "/bookings",
		`{"guest_id":"`+guestID+`","room_type_id":"`+roomTypeID+`","check_in_date":"2026-12-01","check_out_date":"2026-12-03"}`)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestGetBookings(t *testing.T) {
	f := newFixture(t)

	f.bookings.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error) {
			assert.Equal(t, "bookings.status", params.SortBy)
			assert.Equal(t, gDto.SortDirAsc, params.SortDir)
			require.Len(t, filter.Filters, 2)

			where, args := filter.GetWhereClause()
			assert.Equal(t, "(bookings.status = :status AND bookings.guest_id = :guest_id)", where)
			assert.Equal(t, map[string]any{"status": "pending", "guest_id": guestID}, args)

			return dto.GetBookingsResponse{}, nil
		})

	rec := f.do(http.MethodGet, "/bookings?status=pending&guest_id="+guestID+"&sort_by=status&sort_dir=asc", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetBookings_SortByRoomNumber(t *testing.T) {
	f := newFixture(t)

	f.bookings.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, params gDto.QueryParams, _ gDto.FilterGroup) (dto.GetBookingsResponse, error) {
			assert.Equal(t, "rooms.room_number", params.SortBy)
			assert.Equal(t, gDto.SortDirDesc, params.SortDir)

			return dto.GetBookingsResponse{}, nil
		})

	rec := f.do(http.MethodGet, "/bookings?sort_by=room_number&sort_dir=desc", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateBookingStatus(t *testing.T) {
	t.Run("valid transition", func(t *testing.T) {
		f := newFixture(t)

		f.bookings.EXPECT().UpdateStatus(gomock.Any(), dto.UpdateBookingStatusRequest{Status: "checked-in"}, bookingID).
			Return(dto.BookingResponse{ID: bookingID, Status: "checked-in"}, nil)

		rec := f.do(http.MethodPatch, "/bookings/"+bookingID+"/status", `{"status":"checked-in"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown status", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPatch, "/bookings/"+bookingID+"/status", `{"status":"teleported"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("illegal transition", func(t *testing.T) {
		f := newFixture(t)

		f.bookings.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), bookingID).
			Return(dto.BookingResponse{}, failure.Conflict("cannot move a cancelled booking"))

		rec := f.do(http.MethodPatch, "/bookings/"+bookingID+"/status", `{"status":"confirmed"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestAssignRoom(t *testing.T) {
	f := newFixture(t)

	f.bookings.EXPECT().AssignRoom(gomock.Any(), dto.AssignRoomRequest{RoomID: roomID}, bookingID).
		Return(dto.BookingResponse{ID: bookingID, AssignedRoomID: &[]string{roomID}[0]}, nil)

	rec := f.do(http.MethodPatch, "/bookings/"+bookingID+"/room", `{"room_id":"`+roomID+`"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDashboard(t *testing.T) {
	f := newFixture(t)

	f.bookings.EXPECT().Dashboard(gomock.Any()).Return(dto.DashboardResponse{}, nil)

	rec := f.do(http.MethodGet, "/admin/dashboard", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}
