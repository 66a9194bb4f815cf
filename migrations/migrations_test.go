package migrations_test

import (
	"hotel/migrations"
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedRoomAmenities(t *testing.T) {
	raw, err := fs.ReadFile(migrations.Postgres, migrations.PostgresDir+"/000001_init.up.sql")
	require.NoError(t, err)

	// room number -> active, has_wifi, has_tv
	expected := map[string]string{
		"'101'": "TRUE, FALSE, FALSE)",
		"'201'": "TRUE, FALSE, TRUE)",
		"'301'": "TRUE, TRUE, TRUE)",
	}

	found := 0

	for _, line := range strings.Split(string(raw), "\n") {
		for number, flags := range expected {
			if strings.Contains(line, number) {
				found++

				assert.True(t, strings.HasSuffix(strings.TrimRight(strings.TrimSpace(line), ","), flags), "room %s: %s", number, line)
			}
		}
	}

	assert.Equal(t, len(expected), found)
}
