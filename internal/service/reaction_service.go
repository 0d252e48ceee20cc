package service

import (
	"errors"

	"foto-go/internal/infra/kafka"

	"gorm.io/gorm"
)

type ReactionService struct {
	reactionStore ReactionStore
	commentStore  CommentStore
	publish       ActivityPublisher
}

func NewReactionService(reactionStore ReactionStore, commentStore CommentStore, publish ActivityPublisher) *ReactionService {
	return &ReactionService{
		reactionStore: reactionStore,
		commentStore:  commentStore,
		publish:       publish,
	}
}

// Toggle 切换 (评论, 表情, 用户) 三元组的回应状态
// 已存在则移除，不存在则添加，同参数连调两次回到原状态；
// 翻转在存储层单个原子操作里完成，并发同参切换不会落到唯一索引报错，
// 只改动目标三元组，其他评论和表情不受影响
func (s *ReactionService) Toggle(commentID, emoji, userID string) error {
	comment, err := s.commentStore.GetByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return err
	}

	if err := s.reactionStore.Toggle(commentID, emoji, userID); err != nil {
		return err
	}

	publishBestEffort(s.publish, &kafka.CommentActivity{
		Type:      kafka.ActivityReacted,
		CommentID: commentID,
		PhotoID:   comment.PhotoID,
		Emoji:     emoji,
		UserID:    userID,
	})

	return nil
}
