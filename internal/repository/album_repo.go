package repository

import (
	"foto-go/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AlbumRepository struct {
	db *gorm.DB
}

func NewAlbumRepository(db *gorm.DB) *AlbumRepository {
	return &AlbumRepository{db: db}
}

// List 返回全部相册
func (r *AlbumRepository) List() ([]model.Album, error) {
	var albums []model.Album
	err := r.db.Order("name ASC").Find(&albums).Error
	return albums, err
}

// GetByID 根据 ID 查询相册
func (r *AlbumRepository) GetByID(id string) (*model.Album, error) {
	var album model.Album
	err := r.db.Where("id = ?", id).First(&album).Error
	if err != nil {
		return nil, err
	}
	return &album, nil
}

// GetByName 根据名称查询相册
func (r *AlbumRepository) GetByName(name string) (*model.Album, error) {
	var album model.Album
	err := r.db.Where("name = ?", name).First(&album).Error
	if err != nil {
		return nil, err
	}
	return &album, nil
}

// Create 创建相册，ID 为空时自动生成
func (r *AlbumRepository) Create(album *model.Album) error {
	if album.ID == "" {
		album.ID = uuid.NewString()
	}
	return r.db.Create(album).Error
}

// SetCoverIfEmpty 相册还没有封面时设置封面
func (r *AlbumRepository) SetCoverIfEmpty(id, coverPath string) error {
	return r.db.Model(&model.Album{}).
		Where("id = ? AND cover_path IS NULL", id).
		Update("cover_path", coverPath).Error
}
