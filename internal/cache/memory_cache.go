package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// memoryRepository backs the hot cache when Redis is disabled. Values are
// stored as JSON so both backends decode the same way.
type memoryRepository struct {
	store *gocache.Cache
}

func NewMemoryRepository(defaultExpiration, cleanupInterval time.Duration) CacheRepository {
	return &memoryRepository{store: gocache.New(defaultExpiration, cleanupInterval)}
}

func (m *memoryRepository) Backend() string {
	return "memory"
}

func (m *memoryRepository) GetJSON(_ context.Context, key string, dest interface{}) error {
	v, ok := m.store.Get(key)
	if !ok {
		return ErrMiss
	}
	return json.Unmarshal(v.([]byte), dest)
}

func (m *memoryRepository) SetJSON(_ context.Context, key string, value interface{}, expiration time.Duration) error {
	jsonData, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}
	m.store.Set(key, jsonData, expiration)
	return nil
}

func (m *memoryRepository) DeletePrefix(_ context.Context, prefix string) (int, error) {
	deleted := 0
	for key := range m.store.Items() {
		if strings.HasPrefix(key, prefix) {
			m.store.Delete(key)
			deleted++
		}
	}
	return deleted, nil
}
