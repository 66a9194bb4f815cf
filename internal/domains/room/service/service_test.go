package service_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotel/config"
	"hotel/infras/otel/mocks"
	roomMocks "hotel/internal/domains/room/mocks"
	"hotel/internal/domains/room/model"
	"hotel/internal/domains/room/model/dto"
	"hotel/internal/domains/room/service"
	rtMocks "hotel/internal/domains/roomtype/mocks"
	rtModel "hotel/internal/domains/roomtype/model"
	cacheMocks "hotel/shared/cache/mocks"
	"hotel/shared/failure"
)

const suiteTypeID = "3f9f2a3c-0f43-4b4c-9f33-000000000003"

type fixture struct {
	svc      service.Room
	repo     *roomMocks.MockRoom
	roomType *rtMocks.MockRoomType
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	repo := roomMocks.NewMockRoom(ctrl)
	roomType := rtMocks.NewMockRoomType(ctrl)
	redis := cacheMocks.NewMockRedisCache(ctrl)

	redis.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss")).AnyTimes()
	redis.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	redis.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	redis.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return fixture{
		svc:      service.New(repo, roomType, &config.Config{}, redis, mocks.NewOtel()),
		repo:     repo,
		roomType: roomType,
	}
}

func TestRoomService_Create(t *testing.T) {
	req := dto.CreateRoomRequest{
		RoomNumber: "302",
		RoomTypeID: suiteTypeID,
		HasWifi:    true,
	}

	tests := []struct {
		name      string
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name: "success",
			setupMock: func(f fixture) {
				f.roomType.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(rtModel.RoomType{ID: suiteTypeID}, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, room model.Room) error {
						assert.Equal(t, "302", room.RoomNumber)
						assert.True(t, room.Active)
						assert.True(t, room.HasWifi)
						assert.NotEmpty(t, room.ID)

						return nil
					})
			},
		},
		{
			name: "unknown room type",
			setupMock: func(f fixture) {
				f.roomType.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(rtModel.RoomType{}, nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "duplicate room number",
			setupMock: func(f fixture) {
				f.roomType.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(rtModel.RoomType{ID: suiteTypeID}, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
					Return(fmt.Errorf("failed to insert data (room): %w", &pq.Error{Code: "23505"}))
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "room type removed before insert",
			setupMock: func(f fixture) {
				f.roomType.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(rtModel.RoomType{ID: suiteTypeID}, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
					Return(fmt.Errorf("failed to insert data (room): %w", &pq.Error{Code: "23503"}))
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "insert error",
			setupMock: func(f fixture) {
				f.roomType.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(rtModel.RoomType{ID: suiteTypeID}, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Create(context.Background(), req)
			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "302", res.RoomNumber)
		})
	}
}

func TestRoomService_Update(t *testing.T) {
	inactive := false

	tests := []struct {
		name      string
		req       dto.UpdateRoomRequest
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name:      "empty request",
			req:       dto.UpdateRoomRequest{},
			setupMock: func(_ fixture) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "room not found",
			req:  dto.UpdateRoomRequest{Active: &inactive},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "deactivate room",
			req:  dto.UpdateRoomRequest{Active: &inactive},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
						assert.Equal(t, &inactive, fields[model.FieldActive])

						return nil
					})
			},
		},
		{
			name: "move to unknown room type",
			req:  dto.UpdateRoomRequest{RoomTypeID: suiteTypeID},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.roomType.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(rtModel.RoomType{}, nil)
			},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			err := f.svc.Update(context.Background(), tt.req, "room-1")
			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestRoomService_Get(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{ID: "room-1", RoomNumber: "101", Active: true}, nil)

	res, err := f.svc.Get(context.Background(), "room-1")

	assert.NoError(t, err)
	assert.Equal(t, "101", res.RoomNumber)
	assert.True(t, res.Active)
}
