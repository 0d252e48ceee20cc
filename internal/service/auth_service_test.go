package service

import (
	"testing"

	"foto-go/internal/api/dto"
	"foto-go/internal/model"
	"foto-go/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gorm.io/gorm"
)

// fakeUserStore 内存版用户存储
type fakeUserStore struct {
	users map[string]*model.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]*model.User{}}
}

func (s *fakeUserStore) add(u *model.User) {
	s.users[u.ID] = u
}

func (s *fakeUserStore) GetByID(id string) (*model.User, error) {
	if u, ok := s.users[id]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeUserStore) GetByName(name string) (*model.User, error) {
	for _, u := range s.users {
		if u.Name == name {
			clone := *u
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeUserStore) List() ([]model.User, error) {
	var out []model.User
	for _, u := range s.users {
		out = append(out, *u)
	}
	return out, nil
}

func (s *fakeUserStore) UpdateBlocked(id string, blocked bool) error {
	u, ok := s.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.IsBlocked = blocked
	return nil
}

func (s *fakeUserStore) UpdateCategory(id string, category string) error {
	u, ok := s.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.Category = category
	return nil
}

func seedUser(t *testing.T, store *fakeUserStore, name, password string, blocked bool) *model.User {
	t.Helper()

	hash, err := utils.HashPassword(password)
	require.NoError(t, err)

	user := &model.User{
		ID:        "u-" + name,
		Name:      name,
		Password:  hash,
		Role:      "user",
		IsBlocked: blocked,
		Category:  model.CategoryOther,
	}
	store.add(user)
	return user
}

func TestLoginUnknownUser(t *testing.T) {
	svc := NewAuthService(newFakeUserStore())

	_, err := svc.Login(&dto.LoginRequest{Name: "ghost", Password: "whatever"})
	// 用户不存在和密码错误返回同一个错误，不泄露用户是否存在
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestLoginWrongPassword(t *testing.T) {
	store := newFakeUserStore()
	seedUser(t, store, "alice", "correct", false)
	svc := NewAuthService(store)

	_, err := svc.Login(&dto.LoginRequest{Name: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestLoginBlockedUser(t *testing.T) {
	store := newFakeUserStore()
	seedUser(t, store, "mallory", "secret", true)
	svc := NewAuthService(store)

	_, err := svc.Login(&dto.LoginRequest{Name: "mallory", Password: "secret"})
	assert.ErrorIs(t, err, ErrUserBlocked)
}

func TestGetCurrentUser(t *testing.T) {
	store := newFakeUserStore()
	user := seedUser(t, store, "alice", "secret", false)
	svc := NewAuthService(store)

	info, err := svc.GetCurrentUser(user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, info.ID)
	assert.Equal(t, "alice", info.Name)
	assert.Equal(t, "user", info.Role)
	assert.False(t, info.IsBlocked)

	_, err = svc.GetCurrentUser("missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSetBlockedAndCategory(t *testing.T) {
	store := newFakeUserStore()
	user := seedUser(t, store, "bob", "secret", false)
	svc := NewUserService(store)

	require.NoError(t, svc.SetBlocked(user.ID, true))
	assert.True(t, store.users[user.ID].IsBlocked)

	require.NoError(t, svc.SetCategory(user.ID, model.CategoryFamily))
	assert.Equal(t, model.CategoryFamily, store.users[user.ID].Category)

	assert.ErrorIs(t, svc.SetBlocked("missing", true), ErrUserNotFound)
	assert.ErrorIs(t, svc.SetCategory("missing", model.CategoryFriend), ErrUserNotFound)
}
