package model

// Album 相册模型，对应对象存储中的一个目录前缀
type Album struct {
	ID        string  `gorm:"primaryKey;size:36;comment:相册标识" json:"id"`
	Name      string  `gorm:"size:255;not null;uniqueIndex;comment:相册名称" json:"name"`
	CoverPath *string `gorm:"size:500;comment:封面图路径" json:"cover"`

	Photos []Photo `gorm:"foreignKey:AlbumID" json:"photos,omitempty"`
}

func (Album) TableName() string {
	return "albums"
}
