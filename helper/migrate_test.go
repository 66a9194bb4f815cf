package helper

import (
	"hotel/config"
	"hotel/migrations"
	"io/fs"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.DB.Postgres.Prefix = "staging_"
	cfg.DB.Postgres.Write.Host = "db.internal"
	cfg.DB.Postgres.Write.Port = "5432"
	cfg.DB.Postgres.Write.Username = "hotel"
	cfg.DB.Postgres.Write.Password = "p@ss/word"
	cfg.DB.Postgres.Write.Name = "hotel"

	return cfg
}

func TestDatabaseURL(t *testing.T) {
	parsed, err := url.Parse(databaseURL(testConfig()))
	require.NoError(t, err)

	password, _ := parsed.User.Password()

	assert.Equal(t, "postgres", parsed.Scheme)
	assert.Equal(t, "db.internal:5432", parsed.Host)
	assert.Equal(t, "/staging_hotel", parsed.Path)
	assert.Equal(t, "p@ss/word", password)
	assert.Equal(t, "disable", parsed.Query().Get("sslmode"))
	assert.Equal(t, "schema_migrations", parsed.Query().Get("x-migrations-table"))
}

func TestDatabaseURL_ExplicitSettings(t *testing.T) {
	cfg := testConfig()
	cfg.DB.Postgres.Write.SSLMode = "require"
	cfg.DB.Postgres.MigrationTable = "hotel_migrations"

	parsed, err := url.Parse(databaseURL(cfg))
	require.NoError(t, err)

	assert.Equal(t, "require", parsed.Query().Get("sslmode"))
	assert.Equal(t, "hotel_migrations", parsed.Query().Get("x-migrations-table"))
}

func TestRunner_UnknownAction(t *testing.T) {
	err := Runner(testConfig(), Action("sideways"))

	assert.ErrorContains(t, err, "unknown migration action")
}

func TestEmbeddedMigrations(t *testing.T) {
	files, err := fs.Glob(migrations.Postgres, migrations.PostgresDir+"/*.sql")
	require.NoError(t, err)

	assert.Contains(t, files, "postgres/000001_init.up.sql")
	assert.Contains(t, files, "postgres/000001_init.down.sql")
}
