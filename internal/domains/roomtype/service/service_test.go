package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotel/config"
	"hotel/infras/otel/mocks"
	"hotel/internal/domains/roomtype/model"
	"hotel/internal/domains/roomtype/model/dto"
	rtMocks "hotel/internal/domains/roomtype/mocks"
	"hotel/internal/domains/roomtype/service"
	cacheMocks "hotel/shared/cache/mocks"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
)

func newService(t *testing.T) (service.RoomType, *rtMocks.MockRoomType, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	repo := rtMocks.NewMockRoomType(ctrl)
	redis := cacheMocks.NewMockRedisCache(ctrl)
	redis.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return service.New(repo, &config.Config{}, redis, mocks.NewOtel()), repo, redis
}

func TestRoomTypeService_Get(t *testing.T) {
	standard := model.RoomType{
		ID:            "rt-standard",
		Name:          "Standard",
		PricePerNight: decimal.NewFromInt(2500),
		MaxGuests:     2,
	}

	tests := []struct {
		name      string
		setupMock func(repo *rtMocks.MockRoomType, redis *cacheMocks.MockRedisCache)
		wantCode  int
		wantPrice string
	}{
		{
			name: "cache hit",
			setupMock: func(_ *rtMocks.MockRoomType, redis *cacheMocks.MockRedisCache) {
				redis.EXPECT().Get(gomock.Any(), "roomtype:get:rt-standard", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						res, _ := value.(*dto.RoomTypeResponse)
						res.ID = "rt-standard"
						res.PricePerNight = "2500.00"

						return nil
					})
			},
			wantPrice: "2500.00",
		},
		{
			name: "loaded from repository",
			setupMock: func(repo *rtMocks.MockRoomType, redis *cacheMocks.MockRedisCache) {
				redis.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(standard, nil)
			},
			wantPrice: "2500.00",
		},
		{
			name: "not found",
			setupMock: func(repo *rtMocks.MockRoomType, redis *cacheMocks.MockRedisCache) {
				redis.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.RoomType{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "repository error",
			setupMock: func(repo *rtMocks.MockRoomType, redis *cacheMocks.MockRedisCache) {
				redis.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.RoomType{}, errors.New("db down"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, redis := newService(t)
			tt.setupMock(repo, redis)

			res, err := svc.Get(context.Background(), "rt-standard")
			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "rt-standard", res.ID)
			assert.Equal(t, tt.wantPrice, res.PricePerNight)
		})
	}
}

func TestRoomTypeService_GetAll(t *testing.T) {
	svc, repo, redis := newService(t)

	redis.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
	repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(3, nil)
	repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.RoomType{
		{ID: "economy", PricePerNight: decimal.NewFromInt(1500), MaxGuests: 1},
		{ID: "standard", PricePerNight: decimal.NewFromInt(2500), MaxGuests: 2},
		{ID: "suite", PricePerNight: decimal.NewFromInt(5000), MaxGuests: 2},
	}, nil)

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 2}, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Len(t, res.RoomTypes, 3)
	assert.Equal(t, 3, res.TotalData)
	assert.Equal(t, 2, res.TotalPage)
	assert.Equal(t, "1500.00", res.RoomTypes[0].PricePerNight)
}
