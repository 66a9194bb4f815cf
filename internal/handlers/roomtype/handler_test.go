package roomtype_test

import (
	otelMocks "hotel/infras/otel/mocks"
	"hotel/internal/domains/roomtype/mocks"
	"hotel/internal/domains/roomtype/model/dto"
	"hotel/internal/handlers/roomtype"
	gDto "hotel/shared/dto"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (*mocks.MockRoomTypeService, http.Handler) {
	t.Helper()

	svc := mocks.NewMockRoomTypeService(gomock.NewController(t))
	handler := roomtype.New(svc, otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return svc, router
}

func TestGetRoomTypes(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		sortBy  string
		sortDir string
		where   string
	}{
		{name: "defaults to cheapest first", sortBy: "room_types.price_per_night", sortDir: gDto.SortDirAsc},
		{name: "sort by capacity", query: "?sort_by=max_guests&sort_dir=desc", sortBy: "room_types.max_guests", sortDir: gDto.SortDirDesc},
		{name: "name filter", query: "?name=suite", sortBy: "room_types.price_per_night", sortDir: gDto.SortDirAsc, where: "(LOWER(room_types.name) LIKE LOWER(:name) )"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := newRouter(t)

			svc.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ any, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRoomTypesResponse, error) {
					assert.Equal(t, tt.sortBy, params.SortBy)
					assert.Equal(t, tt.sortDir, params.SortDir)

					where, _ := filter.GetWhereClause()
					assert.Equal(t, tt.where, where)

					return dto.GetRoomTypesResponse{}, nil
				})

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/room-types"+tt.query, nil))

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestGetRoomTypeByID(t *testing.T) {
	svc, router := newRouter(t)

	svc.EXPECT().Get(gomock.Any(), "8f2d3c1a-5b7e-4a10-9c3d-1e2f3a4b5c03").Return(dto.RoomTypeResponse{Name: "Suite"}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/room-types/8f2d3c1a-5b7e-4a10-9c3d-1e2f3a4b5c03", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Suite")
}
