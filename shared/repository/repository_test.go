package repository

import (
	otelMocks "hotel/infras/otel/mocks"
	bookingModel "hotel/internal/domains/booking/model"
	"hotel/shared/dto"
	"hotel/shared/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roomRow struct {
	ID         string `db:"id"`
	RoomNumber string `db:"room_number"`
	TypeName   string `db:"type_name"   table:"room_types" column:"name"`
	model.Metadata
}

type stayRow struct {
	ID      string    `db:"id"`
	CheckIn time.Time `db:"check_in"`
	Notes   string    `db:"-"`
}

func newRoomRepo() Repository[roomRow] {
	return NewRepository[roomRow]("room", "rooms", "id", nil, otelMocks.NewOtel())
}

func TestGetColumns(t *testing.T) {
	repo := newRoomRepo()

	assert.Equal(t, []string{"id", "room_number", "created_at", "modified_at", "created_by", "modified_by"}, repo.InsertColumns)
	assert.Equal(t,
		"rooms.id, rooms.room_number, room_types.name AS type_name, rooms.created_at, rooms.modified_at, rooms.created_by, rooms.modified_by",
		repo.selectList(),
	)
	assert.Equal(t, "rooms.id, room_types.name AS type_name", repo.selectList("id", "name"))

	stays := NewRepository[stayRow]("booking", "bookings", "id", nil, otelMocks.NewOtel())
	assert.Equal(t, []string{"id", "check_in"}, stays.InsertColumns)
}

func TestJoinedColumns(t *testing.T) {
	repo := NewRepository[bookingModel.BookingDetail]("booking_detail", "bookings", "id", nil, otelMocks.NewOtel())

	assert.NotContains(t, repo.InsertColumns, "guest_email")
	assert.Contains(t, repo.InsertColumns, "assigned_room_id")
	assert.Contains(t, repo.join, "LEFT JOIN rooms ON rooms.id = bookings.assigned_room_id")

	selected := repo.selectList()
	assert.Contains(t, selected, "bookings.id, bookings.guest_id")
	assert.Contains(t, selected, "guests.email AS guest_email")
	assert.Contains(t, selected, "room_types.name AS room_type_name")
	assert.Contains(t, selected, "rooms.room_number AS room_number")
	assert.Contains(t, selected, "bookings.created_at")
}

func TestOrderBy(t *testing.T) {
	repo := newRoomRepo()

	tests := []struct {
		name     string
		params   dto.QueryParams
		expected string
	}{
		{name: "no sort", expected: ""},
		{name: "qualified column", params: dto.QueryParams{SortBy: "rooms.room_number", SortDir: "DESC"}, expected: "ORDER BY rooms.room_number DESC"},
		{name: "bare column defaults to ascending", params: dto.QueryParams{SortBy: "created_at"}, expected: "ORDER BY created_at ASC"},
		{name: "alias", params: dto.QueryParams{SortBy: "type_name", SortDir: "asc"}, expected: "ORDER BY type_name ASC"},
		{name: "unknown column is dropped", params: dto.QueryParams{SortBy: "1; DROP TABLE rooms", SortDir: "ASC"}, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, repo.orderBy(tt.params))
		})
	}
}

func TestBuildUpdate(t *testing.T) {
	repo := newRoomRepo()
	byID := dto.FilterGroup{Filters: []any{
		dto.Filter{Field: "id", Operator: dto.FilterOperatorEq, Value: "room-101", Table: "rooms"},
	}}

	t.Run("set values do not collide with filter args", func(t *testing.T) {
		query, args, err := repo.buildUpdate(map[string]any{"room_number": "102", "id": "room-102"}, byID)

		require.NoError(t, err)
		assert.Equal(t, "UPDATE rooms SET id = :set_id, room_number = :set_room_number  WHERE (rooms.id = :id) ", query)
		assert.Equal(t, map[string]any{"id": "room-101", "set_id": "room-102", "set_room_number": "102"}, args)
	})

	t.Run("requires a filter", func(t *testing.T) {
		_, _, err := repo.buildUpdate(map[string]any{"room_number": "102"}, dto.FilterGroup{})

		assert.ErrorIs(t, err, errRequiredFilter)
	})

	t.Run("requires values", func(t *testing.T) {
		_, _, err := repo.buildUpdate(map[string]any{}, byID)

		assert.ErrorIs(t, err, errEmptyUpdate)
	})
}

func TestBuildWhereClause(t *testing.T) {
	repo := newRoomRepo()

	where, args := repo.BuildWhereClause(dto.FilterGroup{})
	assert.Empty(t, where)
	assert.Empty(t, args)

	where, args = repo.BuildWhereClause(dto.FilterGroup{Filters: []any{
		dto.Filter{Field: "room_number", Operator: dto.FilterOperatorEq, Value: "101"},
	}})
	assert.Equal(t, " WHERE (room_number = :room_number) ", where)
	assert.Equal(t, map[string]any{"room_number": "101"}, args)
}
