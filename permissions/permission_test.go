package permissions_test

import (
	"hotel/permissions"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)
	assert.NotEmpty(t, data.Endpoints)
}

func TestPermissionData_FindPermissions(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	dashboard := data.FindPermissions("/v1/admin/dashboard", http.MethodGet)
	assert.Equal(t, []string{"admin"}, dashboard.Permissions)

	roomTypes := data.FindPermissions("/v1/room-types/", http.MethodGet)
	assert.True(t, roomTypes.Skip)

	intake := data.FindPermissions("/v1/bookings", http.MethodPost)
	assert.Contains(t, intake.Permissions, "guest")

	unknown := data.FindPermissions("/v1/unknown", http.MethodDelete)
	assert.Equal(t, permissions.Permission{}, unknown)
}

func TestParse(t *testing.T) {
	t.Run("indexes endpoints case-insensitively on method", func(t *testing.T) {
		data, err := permissions.Parse([]byte(`{"endpoints":[{"path":"/v1/rooms/","method":"get","permissions":["admin"]}]}`))
		require.NoError(t, err)

		rule := data.FindPermissions("/v1/rooms", http.MethodGet)
		assert.True(t, rule.Found())
		assert.True(t, rule.Allows("admin"))
		assert.False(t, rule.Allows("guest"))
	})

	t.Run("rejects duplicates", func(t *testing.T) {
		_, err := permissions.Parse([]byte(`{"endpoints":[
			{"path":"/v1/rooms","method":"GET","permissions":["admin"]},
			{"path":"/v1/rooms/","method":"GET","permissions":["frontdesk"]}
		]}`))

		assert.ErrorContains(t, err, "duplicate permission for GET /v1/rooms")
	})

	t.Run("rejects malformed json", func(t *testing.T) {
		_, err := permissions.Parse([]byte(`{"endpoints":`))

		assert.Error(t, err)
	})
}

func TestPermission_Allows(t *testing.T) {
	assert.True(t, permissions.Permission{Skip: true}.Allows(""))
	assert.False(t, permissions.Permission{Path: "/v1/rooms", Method: http.MethodGet}.Allows("admin"))
	assert.True(t, permissions.Permission{Permissions: []string{"admin", "frontdesk"}}.Allows("frontdesk"))
}
