package service

import (
	"context"
	"fmt"
	"time"

	"medbot/internal/cache"
	"medbot/internal/models"
	"medbot/internal/repository"
	"medbot/pkg/logger"
)

type CacheStats struct {
	CachedDrugs int64  `json:"cached_drugs"`
	TTL         string `json:"ttl"`
	HotBackend  string `json:"hot_backend,omitempty"`
}

// CacheAdminService holds the maintenance operations on the drug cache.
type CacheAdminService interface {
	Purge(ctx context.Context, olderThan time.Duration) (int64, error)
	Clear(ctx context.Context) (int64, error)
	Lookup(ctx context.Context, term string, includeStale bool) (*models.Drug, error)
	Get(ctx context.Context, id string) (*models.Drug, error)
	Stats(ctx context.Context) (*CacheStats, error)
}

type cacheAdminService struct {
	store repository.DrugRepository
	hot   cache.CacheRepository
	log   *logger.Logger
}

func NewCacheAdminService(store repository.DrugRepository, hot cache.CacheRepository, log *logger.Logger) CacheAdminService {
	return &cacheAdminService{
		store: store,
		hot:   hot,
		log:   log.With("component", "cache_admin"),
	}
}

func (s *cacheAdminService) Purge(ctx context.Context, olderThan time.Duration) (int64, error) {
	if olderThan <= 0 {
		return 0, fmt.Errorf("purge age must be positive, got %s", olderThan)
	}
	removed, err := s.store.PurgeOlderThan(ctx, olderThan)
	if err != nil {
		return 0, fmt.Errorf("failed to purge drug cache: %w", err)
	}
	if removed > 0 {
		s.dropHot(ctx)
	}
	s.log.Info("drug cache purged", "older_than", olderThan.String(), "removed", removed)
	return removed, nil
}

func (s *cacheAdminService) Clear(ctx context.Context) (int64, error) {
	removed, err := s.store.Clear(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to clear drug cache: %w", err)
	}
	s.dropHot(ctx)
	s.log.Info("drug cache cleared", "removed", removed)
	return removed, nil
}

// Lookup reads the store only. includeStale serves records past the TTL.
func (s *cacheAdminService) Lookup(ctx context.Context, term string, includeStale bool) (*models.Drug, error) {
	if includeStale {
		return s.store.FindAnyByNameFragment(ctx, term)
	}
	return s.store.FindByNameFragment(ctx, term)
}

// Get returns the stored record with the given id regardless of age, or nil.
func (s *cacheAdminService) Get(ctx context.Context, id string) (*models.Drug, error) {
	return s.store.GetByID(ctx, id)
}

func (s *cacheAdminService) Stats(ctx context.Context) (*CacheStats, error) {
	count, err := s.store.Count(ctx)
	if err != nil {
		return nil, err
	}
	stats := &CacheStats{CachedDrugs: count, TTL: s.store.TTL().String()}
	if s.hot != nil {
		stats.HotBackend = s.hot.Backend()
	}
	return stats, nil
}

func (s *cacheAdminService) dropHot(ctx context.Context) {
	if s.hot == nil {
		return
	}
	if _, err := s.hot.DeletePrefix(ctx, cache.DrugPrefix()); err != nil {
		s.log.Warn(err, "failed to drop hot cache entries")
	}
}
