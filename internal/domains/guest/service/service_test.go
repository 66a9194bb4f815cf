package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotel/config"
	"hotel/infras/otel/mocks"
	guestMocks "hotel/internal/domains/guest/mocks"
	"hotel/internal/domains/guest/model"
	"hotel/internal/domains/guest/model/dto"
	"hotel/internal/domains/guest/service"
	cacheMocks "hotel/shared/cache/mocks"
	"hotel/shared/constant"
	"hotel/shared/failure"
)

func TestGuestService_Create(t *testing.T) {
	req := dto.CreateGuestRequest{
		FirstName: " Anna ",
		LastName:  "Petrova",
		Email:     "Anna@Example.com",
		Phone:     "+7 900 000 00 00",
		Passport:  "4500 123456",
	}

	tests := []struct {
		name      string
		setupMock func(repo *guestMocks.MockGuest)
		wantCode  int
	}{
		{
			name: "success",
			setupMock: func(repo *guestMocks.MockGuest) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, guest model.Guest) error {
						assert.Equal(t, "Anna", guest.FirstName)
						assert.Equal(t, "anna@example.com", guest.Email)
						assert.Equal(t, constant.SystemUser, guest.CreatedBy)

						return nil
					})
			},
		},
		{
			name: "email taken",
			setupMock: func(repo *guestMocks.MockGuest) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "exist check fails",
			setupMock: func(repo *guestMocks.MockGuest) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, errors.New("db down"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := guestMocks.NewMockGuest(ctrl)
			redis := cacheMocks.NewMockRedisCache(ctrl)

			tt.setupMock(repo)

			svc := service.New(repo, &config.Config{}, redis, mocks.NewOtel())
			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, constant.SystemUser)

			res, err := svc.Create(ctx, req)
			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, res.ID)
			assert.Equal(t, "Petrova", res.LastName)
		})
	}
}

func TestGuestService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := guestMocks.NewMockGuest(ctrl)
	redis := cacheMocks.NewMockRedisCache(ctrl)

	redis.EXPECT().Get(gomock.Any(), "guest:get:missing", gomock.Any()).Return(errors.New("miss"))
	repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Guest{}, nil)

	svc := service.New(repo, &config.Config{}, redis, mocks.NewOtel())

	_, err := svc.Get(context.Background(), "missing")

	assert.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}
