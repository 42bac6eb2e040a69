package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"medbot/internal/models"
)

func TestUserRepository_RecordSearchCounts(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewUserRepository(db)

	require.NoError(t, repo.RecordSearch(ctx, 42, "aspirin"))
	require.NoError(t, repo.RecordSearch(ctx, 42, "ASPIRIN"))
	require.NoError(t, repo.RecordSearch(ctx, 7, "tylenol"))

	count, err := repo.GetSearchCount(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	var rows int64
	require.NoError(t, db.Model(&models.Search{}).Where("caller_id = ?", 42).Count(&rows).Error)
	assert.Equal(t, count, rows)

	users, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), users)

	recent, err := repo.RecentSearches(ctx, 42, 5)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	for _, s := range recent {
		assert.NotEqual(t, "", s.ID.String())
		assert.Equal(t, int64(42), s.CallerID)
	}
}

func TestUserRepository_UnknownCallerHasZeroCount(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	count, err := repo.GetSearchCount(context.Background(), 999)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestUserRepository_UpsertKeepsCounter(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	require.NoError(t, repo.Upsert(ctx, 5, "alice"))
	require.NoError(t, repo.RecordSearch(ctx, 5, "advil"))
	require.NoError(t, repo.Upsert(ctx, 5, "alice_renamed"))

	count, err := repo.GetSearchCount(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	users, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), users)
}

func TestUserRepository_RecordSearchRollsBack(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewUserRepository(db)

	errInjected := errors.New("injected update failure")
	require.NoError(t, db.Callback().Update().Before("gorm:update").Register("test:fail_update", func(tx *gorm.DB) {
		_ = tx.AddError(errInjected)
	}))

	err := repo.RecordSearch(ctx, 42, "aspirin")
	require.Error(t, err)
	assert.ErrorIs(t, err, errInjected)

	var searches, users int64
	require.NoError(t, db.Model(&models.Search{}).Count(&searches).Error)
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	assert.Zero(t, searches)
	assert.Zero(t, users)
}
