package repository

import (
	"foto-go/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PhotoRepository struct {
	db *gorm.DB
}

func NewPhotoRepository(db *gorm.DB) *PhotoRepository {
	return &PhotoRepository{db: db}
}

// GetByID 根据 ID 查询照片
func (r *PhotoRepository) GetByID(id string) (*model.Photo, error) {
	var photo model.Photo
	err := r.db.Where("id = ?", id).First(&photo).Error
	if err != nil {
		return nil, err
	}
	return &photo, nil
}

// Exists 判断照片是否存在
func (r *PhotoRepository) Exists(id string) (bool, error) {
	var count int64
	err := r.db.Model(&model.Photo{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// ListByAlbum 返回相册下的全部照片
func (r *PhotoRepository) ListByAlbum(albumID string) ([]model.Photo, error) {
	var photos []model.Photo
	err := r.db.Where("album_id = ?", albumID).Order("created_at ASC").Find(&photos).Error
	return photos, err
}

// ListPathsByAlbum 返回相册下已入库的对象路径，索引时用来跳过已有照片
func (r *PhotoRepository) ListPathsByAlbum(albumID string) ([]string, error) {
	var paths []string
	err := r.db.Model(&model.Photo{}).Where("album_id = ?", albumID).Pluck("path", &paths).Error
	return paths, err
}

// Create 创建照片记录，ID 为空时自动生成
func (r *PhotoRepository) Create(photo *model.Photo) error {
	if photo.ID == "" {
		photo.ID = uuid.NewString()
	}
	return r.db.Create(photo).Error
}
