package service

import (
	"context"

	"foto-go/internal/api/dto"
)

// 最新评论流的条数限制
const (
	FeedDefaultLimit = 5
	FeedMaxLimit     = 20
)

// FeedCache 最新评论流缓存，保存完整的前 FeedMaxLimit 条快照
type FeedCache interface {
	Get(ctx context.Context) ([]dto.CommentInfo, bool)
	Set(ctx context.Context, items []dto.CommentInfo) error
}

type FeedService struct {
	commentStore CommentStore
	cache        FeedCache
}

// NewFeedService 创建最新评论流服务，cache 传 nil 则每次直读数据库
func NewFeedService(commentStore CommentStore, cache FeedCache) *FeedService {
	return &FeedService{commentStore: commentStore, cache: cache}
}

// ClampLimit 归一化条数：非正值取默认值，超过上限截断到上限
func ClampLimit(limit int) int {
	if limit <= 0 {
		return FeedDefaultLimit
	}
	if limit > FeedMaxLimit {
		return FeedMaxLimit
	}
	return limit
}

// Latest 返回跨照片的最新 limit 条评论，时间倒序，带完整回应集合
// 缓存命中直接切片返回；未命中时单事务读库，评论与回应来自同一快照
func (s *FeedService) Latest(ctx context.Context, limit int) ([]dto.CommentInfo, error) {
	limit = ClampLimit(limit)

	if s.cache != nil {
		if items, ok := s.cache.Get(ctx); ok {
			return truncateFeed(items, limit), nil
		}
	}

	items, err := s.fetchLatest()
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.Set(ctx, items)
	}

	return truncateFeed(items, limit), nil
}

// RefreshCache 重建缓存快照，worker 在收到评论动态后调用
func (s *FeedService) RefreshCache(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}

	items, err := s.fetchLatest()
	if err != nil {
		return err
	}

	return s.cache.Set(ctx, items)
}

func (s *FeedService) fetchLatest() ([]dto.CommentInfo, error) {
	comments, reactions, err := s.commentStore.ListLatest(FeedMaxLimit)
	if err != nil {
		return nil, err
	}
	return assembleCommentInfos(comments, reactions), nil
}

func truncateFeed(items []dto.CommentInfo, limit int) []dto.CommentInfo {
	if len(items) > limit {
		return items[:limit]
	}
	return items
}
