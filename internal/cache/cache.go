package cache

import (
	"context"
	"errors"
	"strings"
	"time"
)

// ErrMiss is returned by GetJSON when the key is absent or expired.
var ErrMiss = errors.New("cache miss")

const keyPrefix = "medbot:"

//go:generate mockgen -destination=../mocks/mock_cache_repository.go -package=mocks medbot/internal/cache CacheRepository
type CacheRepository interface {
	GetJSON(ctx context.Context, key string, dest interface{}) error
	SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	DeletePrefix(ctx context.Context, prefix string) (int, error)
	Backend() string
}

// DrugKey normalises a search term into the hot-cache key for it.
func DrugKey(term string) string {
	return keyPrefix + "drug:" + strings.ToLower(strings.TrimSpace(term))
}

// DrugPrefix covers every key produced by DrugKey.
func DrugPrefix() string {
	return keyPrefix + "drug:"
}
