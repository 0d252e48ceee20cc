package service

import (
	"errors"

	"foto-go/internal/api/dto"
	"foto-go/internal/config"
	"foto-go/internal/model"
	"foto-go/pkg/utils"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("用户不存在")
	ErrInvalidCredential = errors.New("用户名或密码错误")
	ErrUserBlocked       = errors.New("账号已被封禁")
)

type AuthService struct {
	userStore UserStore
}

func NewAuthService(userStore UserStore) *AuthService {
	return &AuthService{userStore: userStore}
}

// Login 用户登录，返回 token 数据
func (s *AuthService) Login(req *dto.LoginRequest) (*dto.TokenData, error) {
	user, err := s.userStore.GetByName(req.Name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredential
		}
		return nil, err
	}

	if !utils.VerifyPassword(req.Password, user.Password) {
		return nil, ErrInvalidCredential
	}

	if user.IsBlocked {
		return nil, ErrUserBlocked
	}

	token, err := utils.GenerateToken(user.ID, user.Name, user.Role)
	if err != nil {
		return nil, err
	}

	expireSeconds := config.GetJWT().ExpireHours * 3600

	return &dto.TokenData{
		Token:     token,
		TokenType: "bearer",
		ExpiresIn: expireSeconds,
		User:      *toUserInfo(user),
	}, nil
}

// GetCurrentUser 根据用户 ID 获取用户信息
func (s *AuthService) GetCurrentUser(userID string) (*dto.UserInfo, error) {
	user, err := s.userStore.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return toUserInfo(user), nil
}

func toUserInfo(user *model.User) *dto.UserInfo {
	return &dto.UserInfo{
		ID:        user.ID,
		Name:      user.Name,
		Role:      user.Role,
		IsBlocked: user.IsBlocked,
		Category:  user.Category,
	}
}
