package service

import (
	"context"
	"time"

	"foto-go/internal/infra/kafka"
	"foto-go/internal/model"
)

// 存储接口声明在使用方，gorm 仓库和测试里的内存实现都满足它们，
// 业务层不直接依赖数据库

// CommentStore 评论存储
type CommentStore interface {
	Create(comment *model.Comment) error
	GetByID(id string) (*model.Comment, error)
	ListByPhoto(photoID string) ([]model.Comment, error)
	ListChildIDs(parentIDs []string) ([]string, error)
	ListLatest(limit int) ([]model.Comment, []model.CommentReaction, error)
	DeleteCascade(ids []string) error
}

// ReactionStore 评论回应存储
// Toggle 是存储层的原子翻转，业务层不做先查后写
type ReactionStore interface {
	ListByComments(commentIDs []string) ([]model.CommentReaction, error)
	Toggle(commentID, emoji, userID string) error
}

// PhotoStore 照片存储
type PhotoStore interface {
	GetByID(id string) (*model.Photo, error)
	Exists(id string) (bool, error)
	ListByAlbum(albumID string) ([]model.Photo, error)
	ListPathsByAlbum(albumID string) ([]string, error)
	Create(photo *model.Photo) error
}

// AlbumStore 相册存储
type AlbumStore interface {
	List() ([]model.Album, error)
	GetByID(id string) (*model.Album, error)
	GetByName(name string) (*model.Album, error)
	Create(album *model.Album) error
	SetCoverIfEmpty(id, coverPath string) error
}

// TagStore 照片标签存储
type TagStore interface {
	ListByPhoto(photoID string) ([]string, error)
	ListByPhotos(photoIDs []string) (map[string][]string, error)
	ListDistinct() ([]string, error)
	ReplaceForPhoto(photoID string, tags []string) error
}

// UserStore 用户存储
type UserStore interface {
	GetByID(id string) (*model.User, error)
	GetByName(name string) (*model.User, error)
	List() ([]model.User, error)
	UpdateBlocked(id string, blocked bool) error
	UpdateCategory(id string, category string) error
}

// ActivityPublisher 评论动态发布回调，传 nil 表示不发布
type ActivityPublisher func(ctx context.Context, activity *kafka.CommentActivity) error

// publishBestEffort 尽力发布动态，失败只影响缓存新鲜度，不影响主流程
func publishBestEffort(publish ActivityPublisher, activity *kafka.CommentActivity) {
	if publish == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	_ = publish(ctx, activity)
}
