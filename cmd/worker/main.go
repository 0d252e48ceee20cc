package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"foto-go/internal/config"
	"foto-go/internal/infra/database"
	infraKafka "foto-go/internal/infra/kafka"
	infraRedis "foto-go/internal/infra/redis"
	"foto-go/internal/repository"
	"foto-go/internal/service"
	"foto-go/pkg/logger"

	"go.uber.org/zap"
)

// 缓存刷新 worker：消费评论动态，重建最新评论缓存快照。
// API 端发评论、删评论、切换回应时各发一条动态，worker 收到后
// 整快照重算，保证缓存里评论和回应来自同一时刻。
func main() {
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output, cfg.Log.FilePath); err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer logger.Sync()

	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("Failed to init database", zap.Error(err))
	}
	defer database.Close()

	if err := infraRedis.Init(&cfg.Redis); err != nil {
		logger.Fatal("Failed to init redis", zap.Error(err))
	}
	defer infraRedis.Close()

	commentRepo := repository.NewCommentRepository(database.Get())
	feedCache := service.NewRedisFeedCache(infraRedis.Get(), cfg.Feed.CacheTTLDuration())
	feedService := service.NewFeedService(commentRepo, feedCache)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 监听系统信号，优雅退出
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		logger.Info("Received signal, shutting down", zap.String("signal", sig.String()))
		cancel()
	}()

	topic, ok := cfg.Kafka.Topics["comment_activity"]
	if !ok {
		logger.Fatal("Missing kafka topic", zap.String("key", "comment_activity"))
	}
	groupID := "foto-go-feed-worker"

	// 启动时先重建一次，避免冷缓存
	refreshCtx, refreshCancel := context.WithTimeout(ctx, 10*time.Second)
	if err := feedService.RefreshCache(refreshCtx); err != nil {
		logger.Warn("Initial feed cache refresh failed", zap.Error(err))
	}
	refreshCancel()

	logger.Info("Feed cache worker started",
		zap.String("topic", topic),
		zap.String("group", groupID),
		zap.Strings("brokers", cfg.Kafka.Brokers),
	)

	handler := func(activity *infraKafka.CommentActivity) error {
		logger.Info("Refreshing feed cache",
			zap.String("type", activity.Type),
			zap.String("comment_id", activity.CommentID),
		)

		refreshCtx, refreshCancel := context.WithTimeout(ctx, 10*time.Second)
		defer refreshCancel()
		return feedService.RefreshCache(refreshCtx)
	}

	infraKafka.StartCommentActivityConsumer(ctx, cfg.Kafka.Brokers, topic, groupID, handler)
}
