package service

import (
	"errors"

	"foto-go/internal/api/dto"

	"gorm.io/gorm"
)

type UserService struct {
	userStore UserStore
}

func NewUserService(userStore UserStore) *UserService {
	return &UserService{userStore: userStore}
}

// List 按用户名排序返回全部用户
func (s *UserService) List() ([]dto.UserInfo, error) {
	users, err := s.userStore.List()
	if err != nil {
		return nil, err
	}

	infos := make([]dto.UserInfo, 0, len(users))
	for i := range users {
		infos = append(infos, *toUserInfo(&users[i]))
	}
	return infos, nil
}

// SetBlocked 封禁或解封用户
func (s *UserService) SetBlocked(userID string, blocked bool) error {
	if err := s.userStore.UpdateBlocked(userID, blocked); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

// SetCategory 修改用户分类
func (s *UserService) SetCategory(userID, category string) error {
	if err := s.userStore.UpdateCategory(userID, category); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}
