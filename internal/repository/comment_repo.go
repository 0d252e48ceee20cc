package repository

import (
	"foto-go/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// Create 创建评论，ID 为空时自动生成
func (r *CommentRepository) Create(comment *model.Comment) error {
	if comment.ID == "" {
		comment.ID = uuid.NewString()
	}
	return r.db.Create(comment).Error
}

// GetByID 根据 ID 查询评论
func (r *CommentRepository) GetByID(id string) (*model.Comment, error) {
	var comment model.Comment
	err := r.db.Where("id = ?", id).First(&comment).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListByPhoto 返回照片下的全部评论，按时间正序
func (r *CommentRepository) ListByPhoto(photoID string) ([]model.Comment, error) {
	var comments []model.Comment
	err := r.db.Where("photo_id = ?", photoID).Order("created_at ASC").Find(&comments).Error
	return comments, err
}

// ListChildIDs 返回 parent_id 命中给定集合的评论 ID，级联删除的一层扩展
func (r *CommentRepository) ListChildIDs(parentIDs []string) ([]string, error) {
	if len(parentIDs) == 0 {
		return nil, nil
	}
	var ids []string
	err := r.db.Model(&model.Comment{}).Where("parent_id IN ?", parentIDs).Pluck("id", &ids).Error
	return ids, err
}

// ListLatest 返回全站最新的 limit 条评论及其回应，单事务读取保证快照一致
func (r *CommentRepository) ListLatest(limit int) ([]model.Comment, []model.CommentReaction, error) {
	var comments []model.Comment
	var reactions []model.CommentReaction

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Order("created_at DESC").Limit(limit).Find(&comments).Error; err != nil {
			return err
		}

		if len(comments) == 0 {
			return nil
		}

		ids := make([]string, 0, len(comments))
		for i := range comments {
			ids = append(ids, comments[i].ID)
		}
		return tx.Where("comment_id IN ?", ids).Find(&reactions).Error
	})
	if err != nil {
		return nil, nil, err
	}

	return comments, reactions, nil
}

// DeleteCascade 删除闭包内的全部评论和回应
// 先删回应再删评论，整个闭包在一个事务里，任何一步失败全部回滚
func (r *CommentRepository) DeleteCascade(ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("comment_id IN ?", ids).Delete(&model.CommentReaction{}).Error; err != nil {
			return err
		}
		return tx.Where("id IN ?", ids).Delete(&model.Comment{}).Error
	})
}
