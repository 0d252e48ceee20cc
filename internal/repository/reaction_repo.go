package repository

import (
	"foto-go/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReactionRepository struct {
	db *gorm.DB
}

func NewReactionRepository(db *gorm.DB) *ReactionRepository {
	return &ReactionRepository{db: db}
}

// ListByComments 批量查询多条评论的回应
func (r *ReactionRepository) ListByComments(commentIDs []string) ([]model.CommentReaction, error) {
	if len(commentIDs) == 0 {
		return nil, nil
	}
	var reactions []model.CommentReaction
	err := r.db.Where("comment_id IN ?", commentIDs).Find(&reactions).Error
	return reactions, err
}

// Toggle 原子切换 (评论, 表情, 用户) 三元组：存在则删除，不存在则插入，
// 单事务执行。先删，按 RowsAffected 判断是否需要插入；
// 插入带 ON CONFLICT DO NOTHING，并发同参切换输掉唯一索引竞争时不报错
func (r *ReactionRepository) Toggle(commentID, emoji, userID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.
			Where("comment_id = ? AND emoji = ? AND user_id = ?", commentID, emoji, userID).
			Delete(&model.CommentReaction{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected > 0 {
			return nil
		}

		reaction := &model.CommentReaction{
			CommentID: commentID,
			Emoji:     emoji,
			UserID:    userID,
		}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(reaction).Error
	})
}
