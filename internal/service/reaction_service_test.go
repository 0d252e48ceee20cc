package service

import (
	"testing"

	"foto-go/internal/api/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReactionService(store *memStore) *ReactionService {
	return NewReactionService(store, store, nil)
}

func TestToggleAddsThenRemoves(t *testing.T) {
	store := newMemStore()
	store.addPhoto("p1")
	commentSvc := newCommentService(store)
	svc := newReactionService(store)

	info, err := commentSvc.Create("alice", "p1", &dto.CommentCreateRequest{Text: "hi"})
	require.NoError(t, err)

	// 第一次切换：添加
	require.NoError(t, svc.Toggle(info.ID, "👍", "u1"))
	exists, err := store.ExistsReaction(info.ID, "👍", "u1")
	require.NoError(t, err)
	assert.True(t, exists)

	// 同参数再切换一次：移除，回到原状态
	require.NoError(t, svc.Toggle(info.ID, "👍", "u1"))
	exists, err = store.ExistsReaction(info.ID, "👍", "u1")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestToggleOnlyAffectsTargetTriple(t *testing.T) {
	store := newMemStore()
	store.addPhoto("p1")
	commentSvc := newCommentService(store)
	svc := newReactionService(store)

	info, err := commentSvc.Create("alice", "p1", &dto.CommentCreateRequest{Text: "hi"})
	require.NoError(t, err)

	require.NoError(t, store.Add(info.ID, "👍", "u2"))
	require.NoError(t, store.Add(info.ID, "❤️", "u1"))

	require.NoError(t, svc.Toggle(info.ID, "👍", "u1"))
	require.NoError(t, svc.Toggle(info.ID, "👍", "u1"))

	// 其他用户和其他表情的回应不受影响
	exists, _ := store.ExistsReaction(info.ID, "👍", "u2")
	assert.True(t, exists)
	exists, _ = store.ExistsReaction(info.ID, "❤️", "u1")
	assert.True(t, exists)
}

func TestToggleCommentNotFound(t *testing.T) {
	store := newMemStore()
	svc := newReactionService(store)

	err := svc.Toggle("ghost", "👍", "u1")
	assert.ErrorIs(t, err, ErrCommentNotFound)
	assert.Empty(t, store.reactions)
	assert.Zero(t, store.toggleCalls)
}

// 翻转是存储层的单个操作，业务层不做先查后写
func TestToggleIsSingleStoreOperation(t *testing.T) {
	store := newMemStore()
	store.addPhoto("p1")
	commentSvc := newCommentService(store)
	svc := newReactionService(store)

	info, err := commentSvc.Create("alice", "p1", &dto.CommentCreateRequest{Text: "hi"})
	require.NoError(t, err)

	require.NoError(t, svc.Toggle(info.ID, "👍", "u1"))
	assert.Equal(t, 1, store.toggleCalls)

	require.NoError(t, svc.Toggle(info.ID, "👍", "u1"))
	assert.Equal(t, 2, store.toggleCalls)
	assert.Empty(t, store.reactions)
}
