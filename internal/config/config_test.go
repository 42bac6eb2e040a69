package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://api.fda.gov", cfg.FDA.BaseURL)
	assert.Equal(t, 10, cfg.FDA.DrugLimit)
	assert.Equal(t, 20, cfg.FDA.RecallLimit)
	assert.Equal(t, 10, cfg.FDA.RecentRecalls)
	assert.Equal(t, "MedBot/1.0", cfg.FDA.UserAgent)
	assert.Equal(t, 24*time.Hour, cfg.CacheTTL())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("CACHE_TTL_HOURS", "6")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("FDA_TIMEOUT", "3s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 6*time.Hour, cfg.CacheTTL())
	assert.Equal(t, "sqlite", cfg.DB.Driver)
	assert.Equal(t, 3*time.Second, cfg.FDA.Timeout)
}

func TestCacheTTL_NonPositiveFallsBack(t *testing.T) {
	cfg := &Config{}
	cfg.Cache.TTLHours = 0
	assert.Equal(t, 24*time.Hour, cfg.CacheTTL())

	cfg.Cache.TTLHours = -3
	assert.Equal(t, 24*time.Hour, cfg.CacheTTL())
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("FDA_DRUG_LIMIT", "ten")

	_, err := Load()
	assert.Error(t, err)
}
