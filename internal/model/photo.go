package model

import "time"

// Photo 照片模型
type Photo struct {
	ID        string    `gorm:"primaryKey;size:36;comment:照片标识" json:"id"`
	Path      string    `gorm:"size:500;not null;uniqueIndex;comment:对象存储路径" json:"path"`
	AlbumID   string    `gorm:"size:36;not null;index:idx_photos_album_id;comment:所属相册" json:"album_id"`
	CreatedAt time.Time `gorm:"not null;index:idx_photos_created_at;comment:拍摄/入库时间" json:"created_at"`

	Album Album      `gorm:"foreignKey:AlbumID" json:"album,omitempty"`
	Tags  []PhotoTag `gorm:"foreignKey:PhotoID" json:"tags,omitempty"`
}

func (Photo) TableName() string {
	return "photos"
}

// PhotoTag 照片标签，(photo_id, tag) 唯一
type PhotoTag struct {
	ID      int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	PhotoID string `gorm:"size:36;not null;uniqueIndex:idx_photo_tag;comment:照片标识" json:"photo_id"`
	Tag     string `gorm:"size:255;not null;uniqueIndex:idx_photo_tag;index:idx_photo_tags_tag;comment:标签" json:"tag"`
}

func (PhotoTag) TableName() string {
	return "photo_tags"
}
