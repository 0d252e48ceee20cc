package repository

import (
	"foto-go/internal/model"

	"gorm.io/gorm"
)

type TagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) *TagRepository {
	return &TagRepository{db: db}
}

// ListByPhoto 返回照片的标签
func (r *TagRepository) ListByPhoto(photoID string) ([]string, error) {
	var tags []string
	err := r.db.Model(&model.PhotoTag{}).Where("photo_id = ?", photoID).
		Order("tag ASC").Pluck("tag", &tags).Error
	return tags, err
}

// ListByPhotos 批量查询多张照片的标签
func (r *TagRepository) ListByPhotos(photoIDs []string) (map[string][]string, error) {
	result := make(map[string][]string, len(photoIDs))
	if len(photoIDs) == 0 {
		return result, nil
	}

	var rows []model.PhotoTag
	err := r.db.Where("photo_id IN ?", photoIDs).Order("tag ASC").Find(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		result[row.PhotoID] = append(result[row.PhotoID], row.Tag)
	}
	return result, nil
}

// ListDistinct 返回去重排序后的全部标签，自动补全的数据源
func (r *TagRepository) ListDistinct() ([]string, error) {
	var tags []string
	err := r.db.Model(&model.PhotoTag{}).Distinct("tag").Order("tag ASC").Pluck("tag", &tags).Error
	return tags, err
}

// ReplaceForPhoto 整体替换照片标签，旧标签全删后重建，单事务执行
func (r *TagRepository) ReplaceForPhoto(photoID string, tags []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("photo_id = ?", photoID).Delete(&model.PhotoTag{}).Error; err != nil {
			return err
		}

		if len(tags) == 0 {
			return nil
		}

		rows := make([]model.PhotoTag, 0, len(tags))
		for _, tag := range tags {
			rows = append(rows, model.PhotoTag{PhotoID: photoID, Tag: tag})
		}
		return tx.Create(&rows).Error
	})
}
