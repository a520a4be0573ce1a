package eventlog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeededRepository(t *testing.T) *MemoryRepository {
	t.Helper()
	repo := NewMemoryRepository(0)
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	repo.now = func() time.Time { return fixed }

	ctx := context.Background()
	require.NoError(t, repo.LogEvent(ctx, "drink.purchased", "s1", map[string]interface{}{"n": 1}))
	require.NoError(t, repo.LogEvent(ctx, "combat.resolved", "s1", map[string]interface{}{"n": 2}))
	require.NoError(t, repo.LogEvent(ctx, "drink.purchased", "s2", map[string]interface{}{"n": 3}))
	return repo
}

func TestMemoryRepository_GetEvents(t *testing.T) {
	repo := newSeededRepository(t)
	ctx := context.Background()

	tests := []struct {
		name        string
		filter      Filter
		expectedIDs []int64
	}{
		{"all", Filter{}, []int64{1, 2, 3}},
		{"by type", Filter{EventType: "drink.purchased"}, []int64{1, 3}},
		{"by session", Filter{SessionID: "s1"}, []int64{1, 2}},
		{"type and session", Filter{EventType: "drink.purchased", SessionID: "s2"}, []int64{3}},
		{"limit", Filter{Limit: 2}, []int64{1, 2}},
		{"no match", Filter{EventType: "loot.granted"}, []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := repo.GetEvents(ctx, tt.filter)
			require.NoError(t, err)

			ids := make([]int64, 0, len(entries))
			for _, e := range entries {
				ids = append(ids, e.ID)
			}
			assert.Equal(t, tt.expectedIDs, ids)
		})
	}
}

func TestMemoryRepository_CreatedAt(t *testing.T) {
	repo := newSeededRepository(t)

	entries, err := repo.GetEvents(context.Background(), Filter{Limit: 1})

	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), entries[0].CreatedAt)
}

func TestMemoryRepository_Prune(t *testing.T) {
	tests := []struct {
		name            string
		keep            int
		expectedDropped int64
		expectedIDs     []int64
	}{
		{"keep more than stored", 10, 0, []int64{1, 2, 3}},
		{"keep exactly stored", 3, 0, []int64{1, 2, 3}},
		{"drop oldest", 1, 2, []int64{3}},
		{"keep none", 0, 3, []int64{}},
		{"negative keep empties", -1, 3, []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newSeededRepository(t)
			ctx := context.Background()

			dropped, err := repo.Prune(ctx, tt.keep)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedDropped, dropped)

			entries, _ := repo.GetEvents(ctx, Filter{})
			ids := make([]int64, 0, len(entries))
			for _, e := range entries {
				ids = append(ids, e.ID)
			}
			assert.Equal(t, tt.expectedIDs, ids)
		})
	}
}

func TestMemoryRepository_IDsKeepIncreasingAfterPrune(t *testing.T) {
	repo := newSeededRepository(t)
	ctx := context.Background()

	_, err := repo.Prune(ctx, 0)
	require.NoError(t, err)
	require.NoError(t, repo.LogEvent(ctx, "loot.granted", "s3", nil))

	entries, err := repo.GetEvents(ctx, Filter{})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, int64(4), entries[0].ID)
}

func TestMemoryRepository_BoundedDropsOldest(t *testing.T) {
	repo := NewMemoryRepository(2)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		require.NoError(t, repo.LogEvent(ctx, "loot.granted", "s1", map[string]interface{}{"n": i}))
	}

	entries, err := repo.GetEvents(ctx, Filter{})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, int64(4), entries[0].ID)
	assert.Equal(t, int64(5), entries[1].ID)
}
