package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) *Store {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	store, err := Init(context.Background(), mr.Addr(), "")
	require.NoError(t, err)
	return store
}

type row struct {
	ID    string
	Title string
}

func TestSetAndGet(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	expected := []row{{ID: "t1", Title: "Lakers vs Warriors"}}
	require.NoError(t, store.Set(ctx, KeyTips, expected))

	var actual []row
	found, err := store.Get(ctx, KeyTips, &actual)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, expected, actual)
}

func TestGetMiss(t *testing.T) {
	store := setupTestStore(t)

	var out []row
	found, err := store.Get(context.Background(), KeyUsers, &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestInvalidateDropsKeys(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, KeyTips, []row{{ID: "t1"}}))
	require.NoError(t, store.Set(ctx, KeyStats, map[string]int{"total_tips": 1}))

	require.NoError(t, store.Invalidate(ctx, KeyTips, KeyStats))

	var out []row
	found, err := store.Get(ctx, KeyTips, &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestNilStoreIsSafe(t *testing.T) {
	var s *Store
	ctx := context.Background()

	var out []row
	found, err := s.Get(ctx, KeyUsers, &out)
	require.NoError(t, err)
	assert.False(t, found)

	assert.NoError(t, s.Set(ctx, KeyUsers, []row{}))
	assert.NoError(t, s.Invalidate(ctx, KeyUsers))
}
