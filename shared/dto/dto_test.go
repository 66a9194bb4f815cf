package dto_test

import (
	"hotel/shared/constant"
	"hotel/shared/dto"
	"hotel/shared/model"
	"hotel/shared/timezone"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadata_FromModel(t *testing.T) {
	require.NoError(t, timezone.Setup("Asia/Jakarta"))
	t.Cleanup(func() { _ = timezone.Setup("UTC") })

	metadata := &dto.Metadata{}
	metadata.FromModel(model.NewMetadata("desk-1", time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)))

	assert.Equal(t, "2026-10-01T19:00:00+07:00", metadata.CreatedAt)
	assert.Equal(t, metadata.CreatedAt, metadata.ModifiedAt)
	assert.Equal(t, "desk-1", metadata.CreatedBy)
	assert.Equal(t, "desk-1", metadata.ModifiedBy)

	empty := &dto.Metadata{}
	empty.FromModel(model.Metadata{CreatedBy: constant.SystemUser})

	assert.Empty(t, empty.CreatedAt)
	assert.Equal(t, constant.SystemUser, empty.CreatedBy)
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		queryParams    map[string]string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name: "with all valid parameters",
			queryParams: map[string]string{
				"page":     "2",
				"limit":    "20",
				"sort_by":  "check_in",
				"sort_dir": "asc",
			},
			expected: dto.QueryParams{Page: 2, Limit: 20, SortBy: "check_in", SortDir: dto.SortDirAsc},
		},
		{
			name:           "with default request enabled and no parameters",
			queryParams:    map[string]string{},
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name: "with invalid numbers and sort direction",
			queryParams: map[string]string{
				"page":     "-1",
				"limit":    "ten",
				"sort_dir": "sideways",
			},
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:           "limit is capped",
			queryParams:    map[string]string{"limit": "5000"},
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: dto.MaxValueLimit},
		},
		{
			name:        "without defaults keeps zero values",
			queryParams: map[string]string{"sort_dir": "DESC"},
			expected:    dto.QueryParams{SortDir: dto.SortDirDesc},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := url.Values{}
			for key, value := range tt.queryParams {
				values.Set(key, value)
			}

			req := &http.Request{URL: &url.URL{RawQuery: values.Encode()}}

			queryParams := dto.QueryParams{}
			queryParams.FromRequest(req, tt.defaultRequest)

			assert.Equal(t, tt.expected.Page, queryParams.Page)
			assert.Equal(t, tt.expected.Limit, queryParams.Limit)
			assert.Equal(t, tt.expected.SortBy, queryParams.SortBy)
			assert.Equal(t, tt.expected.SortDir, queryParams.SortDir)
		})
	}
}

func TestQueryParams_SortWithin(t *testing.T) {
	sortable := map[string]string{
		"check_in": "bookings.check_in",
		"status":   "bookings.status",
	}

	tests := []struct {
		name     string
		params   dto.QueryParams
		expected dto.QueryParams
	}{
		{
			name:     "known key keeps direction",
			params:   dto.QueryParams{SortBy: "status", SortDir: dto.SortDirDesc},
			expected: dto.QueryParams{SortBy: "bookings.status", SortDir: dto.SortDirDesc},
		},
		{
			name:     "known key defaults to ascending",
			params:   dto.QueryParams{SortBy: "check_in"},
			expected: dto.QueryParams{SortBy: "bookings.check_in", SortDir: dto.SortDirAsc},
		},
		{
			name:     "unknown key falls back",
			params:   dto.QueryParams{SortBy: "id; DROP TABLE bookings", SortDir: dto.SortDirAsc},
			expected: dto.QueryParams{SortBy: "bookings.check_in", SortDir: dto.SortDirDesc},
		},
		{
			name:     "missing key falls back",
			expected: dto.QueryParams{SortBy: "bookings.check_in", SortDir: dto.SortDirDesc},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := tt.params
			params.SortWithin(sortable, "bookings.check_in", dto.SortDirDesc)

			assert.Equal(t, tt.expected, params)
		})
	}
}

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "eq",
			filter:    dto.Filter{Field: "status", Value: "pending", Operator: dto.FilterOperatorEq, Table: "bookings"},
			wantWhere: "bookings.status = :status",
			wantArgs:  map[string]any{"status": "pending"},
		},
		{
			name:      "like",
			filter:    dto.Filter{Field: "room_number", Value: "10", Operator: dto.FilterOperatorLike},
			wantWhere: "LOWER(room_number) LIKE LOWER(:room_number) ",
			wantArgs:  map[string]any{"room_number": "%10%"},
		},
		{
			name:      "in slice",
			filter:    dto.Filter{Field: "status", Value: []string{"confirmed", "checked-in"}, Operator: dto.FilterOperatorIn, Table: "bookings"},
			wantWhere: "bookings.status IN (:status_0, :status_1) ",
			wantArgs:  map[string]any{"status_0": "confirmed", "status_1": "checked-in"},
		},
		{
			name:      "strict less with arg name",
			filter:    dto.Filter{ArgName: "stay_end", Field: "check_in", Value: "2026-11-03", Operator: dto.FilterOperatorLess, Table: "bookings"},
			wantWhere: "bookings.check_in < :stay_end",
			wantArgs:  map[string]any{"stay_end": "2026-11-03"},
		},
		{
			name:      "strict greater",
			filter:    dto.Filter{Field: "check_out", Value: "2026-11-01", Operator: dto.FilterOperatorGreater},
			wantWhere: "check_out > :check_out",
			wantArgs:  map[string]any{"check_out": "2026-11-01"},
		},
		{
			name:      "not eq",
			filter:    dto.Filter{Field: "id", Value: "b-1", Operator: dto.FilterOperatorNotEq},
			wantWhere: "id != :id",
			wantArgs:  map[string]any{"id": "b-1"},
		},
		{
			name:      "less eq and greater eq",
			filter:    dto.Filter{Field: "max_guests", Value: 2, Operator: dto.FilterOperatorGreaterEq},
			wantWhere: "max_guests >= :max_guests",
			wantArgs:  map[string]any{"max_guests": 2},
		},
		{
			name:      "is null",
			filter:    dto.Filter{Field: "assigned_room_id", Operator: dto.FilterIsNull, Table: "bookings"},
			wantWhere: "bookings.assigned_room_id IS NULL",
			wantArgs:  map[string]any{},
		},
		{
			name:      "unknown operator",
			filter:    dto.Filter{Field: "id", Value: "x", Operator: "between"},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: "room_type_id", Value: "rt-1", Operator: dto.FilterOperatorEq},
			dto.FilterGroup{
				Operator: dto.FilterGroupOperatorOr,
				Filters: []any{
					dto.Filter{Field: "status", Value: "confirmed", Operator: dto.FilterOperatorEq},
					dto.Filter{ArgName: "status_alt", Field: "status", Value: "checked-in", Operator: dto.FilterOperatorEq},
				},
			},
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(room_type_id = :room_type_id AND (status = :status OR status = :status_alt))", where)
	assert.Equal(t, map[string]any{"room_type_id": "rt-1", "status": "confirmed", "status_alt": "checked-in"}, args)

	empty := dto.FilterGroup{}
	where, args = empty.GetWhereClause()

	assert.Empty(t, where)
	assert.Empty(t, args)
}
