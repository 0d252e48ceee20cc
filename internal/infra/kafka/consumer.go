package kafka

import (
	"context"
	"encoding/json"
	"time"

	"foto-go/pkg/logger"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ActivityHandler 处理评论动态的回调函数
type ActivityHandler func(activity *CommentActivity) error

// StartCommentActivityConsumer 启动评论动态消费者（阻塞，需在 goroutine 中运行）
// ctx 取消后会自动停止
func StartCommentActivityConsumer(ctx context.Context, brokers []string, topic, groupID string, handler ActivityHandler) {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        brokers,
		Topic:          topic,
		GroupID:        groupID,
		MinBytes:       1,
		MaxBytes:       10e6,
		CommitInterval: time.Second,
		StartOffset:    kafka.LastOffset,
	})

	defer func() {
		if err := reader.Close(); err != nil {
			logger.Error("Failed to close kafka consumer", zap.Error(err))
		}
		logger.Info("Kafka comment activity consumer stopped")
	}()

	logger.Info("Kafka comment activity consumer started",
		zap.String("topic", topic),
		zap.String("group", groupID),
	)

	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.Error("Failed to read kafka message", zap.Error(err))
			time.Sleep(time.Second)
			continue
		}

		var activity CommentActivity
		if err := json.Unmarshal(msg.Value, &activity); err != nil {
			logger.Error("Failed to unmarshal comment activity",
				zap.Error(err),
				zap.ByteString("value", msg.Value),
			)
			continue
		}

		if err := handler(&activity); err != nil {
			logger.Error("Failed to handle comment activity",
				zap.String("comment_id", activity.CommentID),
				zap.Error(err),
			)
		}
	}
}
