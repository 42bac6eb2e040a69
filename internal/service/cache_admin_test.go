package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"medbot/internal/cache"
	"medbot/internal/mocks"
	"medbot/internal/models"
	"medbot/pkg/logger"
)

func TestCacheAdminService_PurgeDropsHotEntries(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockDrugRepository(ctrl)
	hot := mocks.NewMockCacheRepository(ctrl)

	store.EXPECT().PurgeOlderThan(gomock.Any(), 48*time.Hour).Return(int64(4), nil)
	hot.EXPECT().DeletePrefix(gomock.Any(), cache.DrugPrefix()).Return(2, nil)

	svc := NewCacheAdminService(store, hot, logger.Nop())
	removed, err := svc.Purge(context.Background(), 48*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(4), removed)
}

func TestCacheAdminService_PurgeKeepsHotEntriesWhenNothingRemoved(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockDrugRepository(ctrl)
	hot := mocks.NewMockCacheRepository(ctrl)

	store.EXPECT().PurgeOlderThan(gomock.Any(), time.Hour).Return(int64(0), nil)
	hot.EXPECT().DeletePrefix(gomock.Any(), gomock.Any()).Times(0)

	svc := NewCacheAdminService(store, hot, logger.Nop())
	removed, err := svc.Purge(context.Background(), time.Hour)
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestCacheAdminService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockDrugRepository(ctrl)
	drug := &models.Drug{ID: "advil-1", BrandName: "Advil"}

	store.EXPECT().GetByID(gomock.Any(), "advil-1").Return(drug, nil)
	store.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, nil)

	svc := NewCacheAdminService(store, nil, logger.Nop())

	got, err := svc.Get(context.Background(), "advil-1")
	require.NoError(t, err)
	assert.Equal(t, drug, got)

	got, err = svc.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCacheAdminService_PurgeRejectsNonPositiveAge(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewCacheAdminService(mocks.NewMockDrugRepository(ctrl), nil, logger.Nop())

	_, err := svc.Purge(context.Background(), 0)
	assert.Error(t, err)
}

func TestCacheAdminService_Lookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockDrugRepository(ctrl)
	stale := &models.Drug{ID: "tylenol-1", BrandName: "Tylenol"}

	store.EXPECT().FindByNameFragment(gomock.Any(), "tylenol").Return(nil, nil)
	store.EXPECT().FindAnyByNameFragment(gomock.Any(), "tylenol").Return(stale, nil)

	svc := NewCacheAdminService(store, nil, logger.Nop())

	got, err := svc.Lookup(context.Background(), "tylenol", false)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = svc.Lookup(context.Background(), "tylenol", true)
	require.NoError(t, err)
	assert.Equal(t, stale, got)
}

func TestCacheAdminService_Stats(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockDrugRepository(ctrl)
	store.EXPECT().Count(gomock.Any()).Return(int64(12), nil)
	store.EXPECT().TTL().Return(24 * time.Hour)

	svc := NewCacheAdminService(store, cache.NewMemoryRepository(time.Minute, time.Minute), logger.Nop())
	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(12), stats.CachedDrugs)
	assert.Equal(t, "24h0m0s", stats.TTL)
	assert.Equal(t, "memory", stats.HotBackend)
}
