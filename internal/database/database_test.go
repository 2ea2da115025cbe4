package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect_SQLiteDriverIsRegistered(t *testing.T) {
	db, err := Connect(":memory:")
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	defer sqlDB.Close()

	assert.NoError(t, sqlDB.Ping())
}

func TestMigrate_SQLite(t *testing.T) {
	db, err := Connect(":memory:")
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	defer sqlDB.Close()
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, Migrate(db))

	for _, table := range []string{"rooms", "guests", "bookings"} {
		assert.True(t, db.Migrator().HasTable(table), "table %s should exist", table)
	}
}
