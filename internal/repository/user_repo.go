package repository

import (
	"foto-go/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetByID 根据 ID 查询用户
func (r *UserRepository) GetByID(id string) (*model.User, error) {
	var user model.User
	err := r.db.Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByName 根据用户名查询用户
func (r *UserRepository) GetByName(name string) (*model.User, error) {
	var user model.User
	err := r.db.Where("name = ?", name).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// List 按用户名排序返回全部用户
func (r *UserRepository) List() ([]model.User, error) {
	var users []model.User
	err := r.db.Order("name ASC").Find(&users).Error
	return users, err
}

// Create 创建用户，ID 为空时自动生成
func (r *UserRepository) Create(user *model.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	return r.db.Create(user).Error
}

// UpdateBlocked 更新封禁标识
func (r *UserRepository) UpdateBlocked(id string, blocked bool) error {
	result := r.db.Model(&model.User{}).Where("id = ?", id).Update("is_blocked", blocked)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdateCategory 更新用户分类
func (r *UserRepository) UpdateCategory(id string, category string) error {
	result := r.db.Model(&model.User{}).Where("id = ?", id).Update("category", category)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
