package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"foto-go/internal/api/dto"
	"foto-go/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeFeedCache 内存版最新评论缓存
type fakeFeedCache struct {
	items []dto.CommentInfo
	has   bool
	sets  int
}

func (c *fakeFeedCache) Get(ctx context.Context) ([]dto.CommentInfo, bool) {
	return c.items, c.has
}

func (c *fakeFeedCache) Set(ctx context.Context, items []dto.CommentInfo) error {
	c.items = items
	c.has = true
	c.sets++
	return nil
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, FeedDefaultLimit, ClampLimit(0))
	assert.Equal(t, FeedDefaultLimit, ClampLimit(-3))
	assert.Equal(t, 1, ClampLimit(1))
	assert.Equal(t, FeedMaxLimit, ClampLimit(FeedMaxLimit))
	assert.Equal(t, FeedMaxLimit, ClampLimit(25))
}

func seedComments(store *memStore, n int) {
	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		store.addComment(model.Comment{
			ID:        fmt.Sprintf("c%d", i+1),
			PhotoID:   "p1",
			Author:    "alice",
			Text:      fmt.Sprintf("comment %d", i+1),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
	}
}

func TestLatestReturnsNewestFirst(t *testing.T) {
	store := newMemStore()
	seedComments(store, 10)
	svc := NewFeedService(store, nil)

	items, err := svc.Latest(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, "c10", items[0].ID)
	assert.Equal(t, "c9", items[1].ID)
	assert.Equal(t, "c8", items[2].ID)
}

func TestLatestDefaultAndMaxLimit(t *testing.T) {
	store := newMemStore()
	seedComments(store, 30)
	svc := NewFeedService(store, nil)

	items, err := svc.Latest(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, items, FeedDefaultLimit)

	items, err = svc.Latest(context.Background(), 100)
	require.NoError(t, err)
	assert.Len(t, items, FeedMaxLimit)
}

func TestLatestServesFromCache(t *testing.T) {
	store := newMemStore()
	seedComments(store, 5)

	cache := &fakeFeedCache{
		items: []dto.CommentInfo{{ID: "cached1"}, {ID: "cached2"}},
		has:   true,
	}
	svc := NewFeedService(store, cache)

	items, err := svc.Latest(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "cached1", items[0].ID)

	// 命中缓存时不落库
	assert.Zero(t, store.listLatestCalls)
}

func TestLatestFillsCacheOnMiss(t *testing.T) {
	store := newMemStore()
	seedComments(store, 10)

	cache := &fakeFeedCache{}
	svc := NewFeedService(store, cache)

	items, err := svc.Latest(context.Background(), 3)
	require.NoError(t, err)
	assert.Len(t, items, 3)

	// 缓存里存的是完整的前 FeedMaxLimit 条快照，不是截断后的结果
	assert.Equal(t, 1, cache.sets)
	assert.Len(t, cache.items, 10)
	assert.Equal(t, "c10", cache.items[0].ID)
}

func TestRefreshCache(t *testing.T) {
	store := newMemStore()
	seedComments(store, 3)

	cache := &fakeFeedCache{}
	svc := NewFeedService(store, cache)

	require.NoError(t, svc.RefreshCache(context.Background()))
	assert.True(t, cache.has)
	assert.Len(t, cache.items, 3)
}
