package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestMemoryRepository_JSONRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository(time.Minute, time.Minute)

	require.NoError(t, repo.SetJSON(ctx, "k", entry{Name: "aspirin", Count: 3}, time.Minute))

	var got entry
	require.NoError(t, repo.GetJSON(ctx, "k", &got))
	assert.Equal(t, entry{Name: "aspirin", Count: 3}, got)
}

func TestMemoryRepository_MissAndExpiry(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository(time.Minute, time.Minute)

	var got entry
	assert.ErrorIs(t, repo.GetJSON(ctx, "absent", &got), ErrMiss)

	require.NoError(t, repo.SetJSON(ctx, "short", entry{Name: "x"}, 10*time.Millisecond))
	time.Sleep(30 * time.Millisecond)
	assert.ErrorIs(t, repo.GetJSON(ctx, "short", &got), ErrMiss)
}

func TestMemoryRepository_DeletePrefix(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository(time.Minute, time.Minute)

	require.NoError(t, repo.SetJSON(ctx, DrugKey("Aspirin"), entry{}, time.Minute))
	require.NoError(t, repo.SetJSON(ctx, DrugKey("tylenol"), entry{}, time.Minute))
	require.NoError(t, repo.SetJSON(ctx, "other", entry{Name: "keep"}, time.Minute))

	n, err := repo.DeletePrefix(ctx, DrugPrefix())
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	var kept entry
	require.NoError(t, repo.GetJSON(ctx, "other", &kept))
	assert.Equal(t, "keep", kept.Name)

	var gone entry
	assert.ErrorIs(t, repo.GetJSON(ctx, DrugKey("aspirin"), &gone), ErrMiss)
}

func TestDrugKey(t *testing.T) {
	assert.Equal(t, DrugKey("aspirin"), DrugKey("  ASPIRIN "))
	assert.NotEqual(t, DrugKey("aspirin"), DrugKey("tylenol"))
}
