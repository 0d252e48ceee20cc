package service

import (
	"context"
	"encoding/json"
	"time"

	"foto-go/internal/api/dto"
	"foto-go/pkg/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// 最新评论流缓存键
const feedCacheKey = "feed:latest"

// RedisFeedCache 基于 Redis 的最新评论流缓存，整个快照序列化成一个值
type RedisFeedCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisFeedCache(client *redis.Client, ttl time.Duration) *RedisFeedCache {
	return &RedisFeedCache{client: client, ttl: ttl}
}

// Get 读取缓存快照，未命中或数据损坏返回 false
func (c *RedisFeedCache) Get(ctx context.Context) ([]dto.CommentInfo, bool) {
	payload, err := c.client.Get(ctx, feedCacheKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.Warn("Feed cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var items []dto.CommentInfo
	if err := json.Unmarshal(payload, &items); err != nil {
		logger.Warn("Feed cache payload corrupted", zap.Error(err))
		return nil, false
	}

	return items, true
}

// Set 写入缓存快照
func (c *RedisFeedCache) Set(ctx context.Context, items []dto.CommentInfo) error {
	payload, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, feedCacheKey, payload, c.ttl).Err()
}
