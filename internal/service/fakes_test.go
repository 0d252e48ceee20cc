package service

import (
	"fmt"
	"sort"

	"foto-go/internal/model"

	"gorm.io/gorm"
)

// memStore 内存版评论/回应/照片存储，测试用
type memStore struct {
	photos    map[string]bool
	comments  []model.Comment
	reactions []model.CommentReaction

	nextCommentID   int
	listLatestCalls int
	toggleCalls     int
}

func newMemStore() *memStore {
	return &memStore{photos: map[string]bool{}}
}

func (m *memStore) addPhoto(id string) {
	m.photos[id] = true
}

// addComment 直接插入一条指定 ID 的评论，用于构造特定形状的数据
func (m *memStore) addComment(c model.Comment) {
	m.comments = append(m.comments, c)
}

func (m *memStore) Create(comment *model.Comment) error {
	if comment.ID == "" {
		m.nextCommentID++
		comment.ID = fmt.Sprintf("c%d", m.nextCommentID)
	}
	m.comments = append(m.comments, *comment)
	return nil
}

func (m *memStore) GetByID(id string) (*model.Comment, error) {
	for i := range m.comments {
		if m.comments[i].ID == id {
			c := m.comments[i]
			return &c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memStore) ListByPhoto(photoID string) ([]model.Comment, error) {
	var out []model.Comment
	for i := range m.comments {
		if m.comments[i].PhotoID == photoID {
			out = append(out, m.comments[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (m *memStore) ListChildIDs(parentIDs []string) ([]string, error) {
	parents := make(map[string]bool, len(parentIDs))
	for _, id := range parentIDs {
		parents[id] = true
	}

	var out []string
	for i := range m.comments {
		if m.comments[i].ParentID != nil && parents[*m.comments[i].ParentID] {
			out = append(out, m.comments[i].ID)
		}
	}
	return out, nil
}

func (m *memStore) ListLatest(limit int) ([]model.Comment, []model.CommentReaction, error) {
	m.listLatestCalls++

	out := append([]model.Comment(nil), m.comments...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if len(out) > limit {
		out = out[:limit]
	}

	ids := make(map[string]bool, len(out))
	for i := range out {
		ids[out[i].ID] = true
	}

	var reactions []model.CommentReaction
	for _, r := range m.reactions {
		if ids[r.CommentID] {
			reactions = append(reactions, r)
		}
	}
	return out, reactions, nil
}

func (m *memStore) DeleteCascade(ids []string) error {
	doomed := make(map[string]bool, len(ids))
	for _, id := range ids {
		doomed[id] = true
	}

	keptReactions := m.reactions[:0]
	for _, r := range m.reactions {
		if !doomed[r.CommentID] {
			keptReactions = append(keptReactions, r)
		}
	}
	m.reactions = keptReactions

	keptComments := m.comments[:0]
	for i := range m.comments {
		if !doomed[m.comments[i].ID] {
			keptComments = append(keptComments, m.comments[i])
		}
	}
	m.comments = keptComments
	return nil
}

func (m *memStore) ListByComments(commentIDs []string) ([]model.CommentReaction, error) {
	ids := make(map[string]bool, len(commentIDs))
	for _, id := range commentIDs {
		ids[id] = true
	}

	var out []model.CommentReaction
	for _, r := range m.reactions {
		if ids[r.CommentID] {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memStore) Exists(id string) (bool, error) {
	return m.photos[id], nil
}

func (m *memStore) ExistsReaction(commentID, emoji, userID string) (bool, error) {
	for _, r := range m.reactions {
		if r.CommentID == commentID && r.Emoji == emoji && r.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) Add(commentID, emoji, userID string) error {
	m.reactions = append(m.reactions, model.CommentReaction{
		CommentID: commentID,
		Emoji:     emoji,
		UserID:    userID,
	})
	return nil
}

// Toggle 内存版原子翻转：存在则移除，不存在则追加
func (m *memStore) Toggle(commentID, emoji, userID string) error {
	m.toggleCalls++

	for i, r := range m.reactions {
		if r.CommentID == commentID && r.Emoji == emoji && r.UserID == userID {
			m.reactions = append(m.reactions[:i], m.reactions[i+1:]...)
			return nil
		}
	}
	m.reactions = append(m.reactions, model.CommentReaction{
		CommentID: commentID,
		Emoji:     emoji,
		UserID:    userID,
	})
	return nil
}

// photoAdapter 把 memStore 适配成只实现测试所需方法的 PhotoStore
type photoAdapter struct {
	*memStore
}

func (a photoAdapter) GetByID(id string) (*model.Photo, error) {
	if !a.photos[id] {
		return nil, gorm.ErrRecordNotFound
	}
	return &model.Photo{ID: id}, nil
}

func (a photoAdapter) ListByAlbum(albumID string) ([]model.Photo, error) {
	return nil, nil
}

func (a photoAdapter) ListPathsByAlbum(albumID string) ([]string, error) {
	return nil, nil
}

func (a photoAdapter) Create(photo *model.Photo) error {
	a.photos[photo.ID] = true
	return nil
}
