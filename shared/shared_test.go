package shared_test

import (
	"context"
	"errors"
	"fmt"
	"hotel/shared"
	"hotel/shared/cache/mocks"
	"hotel/shared/constant"
	"hotel/shared/dto"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		input    string
		expected *bool
	}{
		{input: "", expected: nil},
		{input: "true", expected: boolPtr(true)},
		{input: "false", expected: boolPtr(false)},
		{input: "1", expected: boolPtr(true)},
		{input: "0", expected: boolPtr(false)},
		{input: "active", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.ConvertStringToBool(tt.input))
		})
	}
}

func TestConvertStringToInt(t *testing.T) {
	nights, err := shared.ConvertStringToInt(" 3 ")
	assert.NoError(t, err)
	assert.Equal(t, 3, nights)

	_, err = shared.ConvertStringToInt("three")
	assert.Error(t, err)
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{name: "no rows", total: 0, limit: 10, expected: 1},
		{name: "exact pages", total: 20, limit: 10, expected: 2},
		{name: "partial last page", total: 21, limit: 10, expected: 3},
		{name: "invalid limit", total: 5, limit: 0, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestTransformFields(t *testing.T) {
	type roomPatch struct {
		RoomTypeID string `db:"room_type_id"`
		Active     *bool  `db:"active"`
		HasTV      *bool  `db:"has_tv"`
		Note       string
	}

	inactive := false

	result := shared.TransformFields(roomPatch{
		RoomTypeID: "rt-2",
		Active:     &inactive,
		Note:       "no db tag",
	}, "desk-1")

	assert.Equal(t, "rt-2", result["room_type_id"])
	assert.Equal(t, &inactive, result["active"])
	assert.NotContains(t, result, "has_tv")
	assert.NotContains(t, result, "Note")
	assert.Equal(t, "desk-1", result[constant.FieldModifiedBy])
	assert.IsType(t, time.Time{}, result[constant.FieldModifiedAt])
	assert.Len(t, result, 4)
}

func TestFilterByID(t *testing.T) {
	result := shared.FilterByID("b-1", "id", "bookings")

	assert.Equal(t, dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    "id",
				Value:    "b-1",
				Operator: dto.FilterOperatorEq,
				Table:    "bookings",
			},
		},
	}, result)
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "booking:dashboard", shared.BuildCacheKey("booking:dashboard"))
	assert.Equal(t, "booking:get:b-1", shared.BuildCacheKey("booking:get", "b-1"))
	assert.Equal(t, "limiter:1.2.3.4:curl", shared.BuildCacheKey("limiter", "1.2.3.4", "curl"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10}

	statusFilter := func(status string) dto.FilterGroup {
		return dto.FilterGroup{
			Filters: []any{
				dto.Filter{Field: "status", Value: status, Operator: dto.FilterOperatorEq, Table: "bookings"},
			},
		}
	}

	pending := shared.BuildCacheKeyWithQuery("booking:gets", params, statusFilter("pending"))

	assert.Equal(t, pending, shared.BuildCacheKeyWithQuery("booking:gets", params, statusFilter("pending")))
	assert.NotEqual(t, pending, shared.BuildCacheKeyWithQuery("booking:gets", params, statusFilter("confirmed")))
	assert.NotEqual(t, pending, shared.BuildCacheKeyWithQuery("booking:gets", dto.QueryParams{Page: 2, Limit: 10}, statusFilter("pending")))
	assert.Regexp(t, `^booking:gets:[0-9a-f]+$`, pending)
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	redisCache := mocks.NewMockRedisCache(ctrl)

	redisCache.EXPECT().Clear(gomock.Any(), "booking:gets*").Return(nil)
	redisCache.EXPECT().Clear(gomock.Any(), "booking:count*").Return(errors.New("redis down"))

	shared.InvalidateCaches(context.Background(), redisCache, "booking:gets")
	shared.InvalidateCaches(context.Background(), redisCache, "booking:count")
}

func TestIsPqErrorCode(t *testing.T) {
	exclusion := &pq.Error{Code: pq.ErrorCode(constant.PqErrorCodeExclusionViolation)}

	assert.True(t, shared.IsPqErrorCode(exclusion, constant.PqErrorCodeExclusionViolation))
	assert.True(t, shared.IsPqErrorCode(fmt.Errorf("insert booking: %w", exclusion), constant.PqErrorCodeExclusionViolation))
	assert.False(t, shared.IsPqErrorCode(exclusion, constant.PqErrorCodeUniqueViolation))
	assert.False(t, shared.IsPqErrorCode(errors.New("plain"), constant.PqErrorCodeExclusionViolation))
	assert.False(t, shared.IsPqErrorCode(nil, constant.PqErrorCodeExclusionViolation))
}

func boolPtr(b bool) *bool {
	return &b
}
