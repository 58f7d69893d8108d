package database

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studydesk/internal/models"
)

func TestInit_CreatesDirAndMigrates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "studydesk.db")

	db, err := Init(Config{Path: path})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	_, err = os.Stat(path)
	assert.NoError(t, err)
	assert.True(t, db.Migrator().HasTable(&models.Preference{}))
	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
}

func TestInit_ReopenKeepsRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "studydesk.db")

	db, err := Init(Config{Path: path})
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.Preference{Key: models.PrefFavorites, Value: []byte(`[]`)}).Error)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	db, err = Init(Config{Path: path})
	require.NoError(t, err)
	sqlDB, err = db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	var got models.Preference
	require.NoError(t, db.Where("key = ?", models.PrefFavorites).Take(&got).Error)
	assert.JSONEq(t, `[]`, string(got.Value))
}
