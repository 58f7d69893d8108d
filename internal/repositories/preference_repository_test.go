package repositories_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studydesk/internal/database"
	"studydesk/internal/models"
	"studydesk/internal/repositories"
)

func newSQLiteRepo(t *testing.T) repositories.PreferenceRepository {
	t.Helper()
	db, err := database.Init(database.Config{Path: filepath.Join(t.TempDir(), "prefs.db")})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return repositories.NewPreferenceRepository(db)
}

func newKeyringRepo(t *testing.T) repositories.PreferenceRepository {
	t.Helper()
	ring, err := repositories.OpenFileKeyring(filepath.Join(t.TempDir(), "keyring"), "test-password")
	require.NoError(t, err)
	return repositories.NewKeyringPreferenceRepository(ring)
}

func backends(t *testing.T) map[string]func(t *testing.T) repositories.PreferenceRepository {
	return map[string]func(t *testing.T) repositories.PreferenceRepository{
		"sqlite": newSQLiteRepo,
		"file": func(t *testing.T) repositories.PreferenceRepository {
			return repositories.NewFilePreferenceRepository(filepath.Join(t.TempDir(), "prefs"))
		},
		"keyring": newKeyringRepo,
	}
}

func TestPreferenceRepository_Contract(t *testing.T) {
	for name, open := range backends(t) {
		t.Run(name, func(t *testing.T) {
			repo := open(t)
			ctx := context.Background()

			_, err := repo.Get(ctx, models.PrefFavorites)
			assert.ErrorIs(t, err, repositories.ErrPreferenceNotFound)

			require.NoError(t, repo.Set(ctx, models.PrefFavorites, `[{"id":"dsa-0"}]`))
			got, err := repo.Get(ctx, models.PrefFavorites)
			require.NoError(t, err)
			assert.Equal(t, `[{"id":"dsa-0"}]`, got)

			// Whole-value replace.
			require.NoError(t, repo.Set(ctx, models.PrefFavorites, `[]`))
			got, err = repo.Get(ctx, models.PrefFavorites)
			require.NoError(t, err)
			assert.Equal(t, `[]`, got)

			// Keys are independent.
			_, err = repo.Get(ctx, models.PrefChatHistory)
			assert.ErrorIs(t, err, repositories.ErrPreferenceNotFound)
		})
	}
}

func TestPreferenceRepository_StoresUnparsableValues(t *testing.T) {
	for name, open := range backends(t) {
		t.Run(name, func(t *testing.T) {
			repo := open(t)
			ctx := context.Background()

			require.NoError(t, repo.Set(ctx, models.PrefUserSettings, "{not json"))
			got, err := repo.Get(ctx, models.PrefUserSettings)
			require.NoError(t, err)
			assert.Equal(t, "{not json", got)
		})
	}
}

func TestSQLitePreferenceRepository_Validation(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := context.Background()

	assert.EqualError(t, repo.Set(ctx, "", "{}"), "key is required")
	assert.EqualError(t, repo.Set(ctx, models.PrefFavorites, ""), "value is required")
	_, err := repo.Get(ctx, "")
	assert.EqualError(t, err, "key is required")
}

func TestFilePreferenceRepository_RejectsPathKeys(t *testing.T) {
	repo := repositories.NewFilePreferenceRepository(t.TempDir())
	ctx := context.Background()

	assert.Error(t, repo.Set(ctx, "../escape", "{}"))
	_, err := repo.Get(ctx, "a/b")
	assert.Error(t, err)
}

func TestSQLitePreferenceRepository_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.db")
	ctx := context.Background()

	db, err := database.Init(database.Config{Path: path})
	require.NoError(t, err)
	require.NoError(t, repositories.NewPreferenceRepository(db).Set(ctx, models.PrefChatHistory, `[{"type":"user","text":"hi"}]`))
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	db, err = database.Init(database.Config{Path: path})
	require.NoError(t, err)
	got, err := repositories.NewPreferenceRepository(db).Get(ctx, models.PrefChatHistory)
	require.NoError(t, err)
	assert.Equal(t, `[{"type":"user","text":"hi"}]`, got)
	sqlDB, _ = db.DB()
	_ = sqlDB.Close()
}
