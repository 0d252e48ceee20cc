package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"foto-go/internal/config"
	"foto-go/pkg/logger"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

var producer *kafka.Writer

// 评论动态类型
const (
	ActivityPosted  = "posted"
	ActivityDeleted = "deleted"
	ActivityReacted = "reacted"
)

// CommentActivity 评论动态消息体
// worker 消费该消息刷新最新评论缓存
type CommentActivity struct {
	Type      string `json:"type"`
	CommentID string `json:"comment_id"`
	PhotoID   string `json:"photo_id,omitempty"`
	Emoji     string `json:"emoji,omitempty"`
	UserID    string `json:"user_id,omitempty"`
	Deleted   int    `json:"deleted,omitempty"` // 级联删除条数
}

// InitProducer 初始化 Kafka 生产者
func InitProducer(cfg *config.KafkaConfig) error {
	producer = &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}

	logger.Info("Kafka producer initialized",
		zap.Strings("brokers", cfg.Brokers),
	)

	return nil
}

// SendCommentActivity 发送评论动态到 Kafka
func SendCommentActivity(ctx context.Context, topic string, activity *CommentActivity) error {
	payload, err := json.Marshal(activity)
	if err != nil {
		return fmt.Errorf("failed to marshal comment activity: %w", err)
	}

	msg := kafka.Message{
		Topic: topic,
		Key:   []byte("comment-" + activity.CommentID),
		Value: payload,
	}

	if err := producer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to send comment activity: %w", err)
	}

	logger.Info("Comment activity sent",
		zap.String("type", activity.Type),
		zap.String("comment_id", activity.CommentID),
		zap.String("topic", topic),
	)

	return nil
}

// CloseProducer 关闭生产者
func CloseProducer() error {
	if producer == nil {
		return nil
	}
	logger.Info("Kafka producer closed")
	return producer.Close()
}
