package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medbot/internal/models"
)

func TestConnectMigrateSeed_SQLite(t *testing.T) {
	db, err := Connect(Config{
		Driver: "sqlite",
		Path:   filepath.Join(t.TempDir(), "data", "medbot.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections, "sqlite runs on a single connection")

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db), "migrations must be re-runnable")

	n, err := Seed(db)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	n, err = Seed(db)
	require.NoError(t, err)
	assert.Zero(t, n, "seed only fills an empty cache")

	var aspirin models.Drug
	require.NoError(t, db.First(&aspirin, "drug_id = ?", "aspirin-001").Error)
	assert.Equal(t, "Bayer", aspirin.Manufacturer)
	assert.False(t, aspirin.FetchedAt.IsZero())
}

func TestConnect_UnknownDriver(t *testing.T) {
	_, err := Connect(Config{Driver: "oracle"})
	assert.Error(t, err)
}
