package service

import (
	"testing"
	"time"

	"foto-go/internal/api/dto"
	"foto-go/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCommentService(store *memStore) *CommentService {
	return NewCommentService(store, store, photoAdapter{store}, nil)
}

func strPtr(s string) *string {
	return &s
}

func TestCreateComment(t *testing.T) {
	store := newMemStore()
	store.addPhoto("p1")
	svc := newCommentService(store)

	info, err := svc.Create("alice", "p1", &dto.CommentCreateRequest{Text: "nice shot"})
	require.NoError(t, err)

	assert.NotEmpty(t, info.ID)
	assert.Equal(t, "p1", info.PhotoID)
	assert.Equal(t, "alice", info.Author)
	assert.Equal(t, "nice shot", info.Text)
	assert.Nil(t, info.ParentID)
	assert.False(t, info.CreatedAt.IsZero())
	assert.Empty(t, info.Reactions)
}

func TestCreateCommentPhotoNotFound(t *testing.T) {
	store := newMemStore()
	svc := newCommentService(store)

	_, err := svc.Create("alice", "missing", &dto.CommentCreateRequest{Text: "hi"})
	assert.ErrorIs(t, err, ErrPhotoNotFound)
}

func TestCreateReply(t *testing.T) {
	store := newMemStore()
	store.addPhoto("p1")
	svc := newCommentService(store)

	parent, err := svc.Create("alice", "p1", &dto.CommentCreateRequest{Text: "root"})
	require.NoError(t, err)

	reply, err := svc.Create("bob", "p1", &dto.CommentCreateRequest{Text: "reply", ParentID: &parent.ID})
	require.NoError(t, err)
	require.NotNil(t, reply.ParentID)
	assert.Equal(t, parent.ID, *reply.ParentID)
}

func TestCreateReplyParentNotFound(t *testing.T) {
	store := newMemStore()
	store.addPhoto("p1")
	svc := newCommentService(store)

	_, err := svc.Create("bob", "p1", &dto.CommentCreateRequest{Text: "reply", ParentID: strPtr("ghost")})
	assert.ErrorIs(t, err, ErrParentNotFound)
}

func TestCreateReplyParentPhotoMismatch(t *testing.T) {
	store := newMemStore()
	store.addPhoto("p1")
	store.addPhoto("p2")
	svc := newCommentService(store)

	parent, err := svc.Create("alice", "p1", &dto.CommentCreateRequest{Text: "root"})
	require.NoError(t, err)

	_, err = svc.Create("bob", "p2", &dto.CommentCreateRequest{Text: "reply", ParentID: &parent.ID})
	assert.ErrorIs(t, err, ErrParentPhotoMismatch)
}

func TestListByPhotoAggregatesReactions(t *testing.T) {
	store := newMemStore()
	store.addPhoto("p1")
	svc := newCommentService(store)

	info, err := svc.Create("alice", "p1", &dto.CommentCreateRequest{Text: "hello"})
	require.NoError(t, err)

	require.NoError(t, store.Add(info.ID, "👍", "u1"))
	require.NoError(t, store.Add(info.ID, "👍", "u2"))
	require.NoError(t, store.Add(info.ID, "❤️", "u1"))

	infos, err := svc.ListByPhoto("p1")
	require.NoError(t, err)
	require.Len(t, infos, 1)

	assert.ElementsMatch(t, []string{"u1", "u2"}, infos[0].Reactions["👍"])
	assert.Equal(t, []string{"u1"}, infos[0].Reactions["❤️"])
}

func TestBuildForest(t *testing.T) {
	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	comments := []dto.CommentInfo{
		{ID: "a", CreatedAt: base},
		{ID: "b", ParentID: strPtr("a"), CreatedAt: base.Add(time.Minute)},
		{ID: "c", ParentID: strPtr("a"), CreatedAt: base.Add(2 * time.Minute)},
		{ID: "d", ParentID: strPtr("b"), CreatedAt: base.Add(3 * time.Minute)},
		{ID: "e", CreatedAt: base.Add(4 * time.Minute)},
	}

	forest := BuildForest(comments)
	require.Len(t, forest, 2)

	assert.Equal(t, "a", forest[0].ID)
	assert.Equal(t, "e", forest[1].ID)

	require.Len(t, forest[0].Replies, 2)
	assert.Equal(t, "b", forest[0].Replies[0].ID)
	assert.Equal(t, "c", forest[0].Replies[1].ID)

	require.Len(t, forest[0].Replies[0].Replies, 1)
	assert.Equal(t, "d", forest[0].Replies[0].Replies[0].ID)

	assert.Empty(t, forest[1].Replies)
}

// 父评论不在输入集合里时，孤儿按根评论处理，不丢节点
func TestBuildForestAdoptsOrphans(t *testing.T) {
	comments := []dto.CommentInfo{
		{ID: "a"},
		{ID: "x", ParentID: strPtr("gone")},
		{ID: "y", ParentID: strPtr("x")},
	}

	forest := BuildForest(comments)
	require.Len(t, forest, 2)
	assert.Equal(t, "a", forest[0].ID)
	assert.Equal(t, "x", forest[1].ID)

	require.Len(t, forest[1].Replies, 1)
	assert.Equal(t, "y", forest[1].Replies[0].ID)
}

func TestBuildForestEmpty(t *testing.T) {
	assert.Empty(t, BuildForest(nil))
}

func TestDeleteCascadeChain(t *testing.T) {
	store := newMemStore()
	store.addPhoto("p1")
	svc := newCommentService(store)

	// a -> b -> c -> d 一条回复链，外加一条无关评论
	a, err := svc.Create("alice", "p1", &dto.CommentCreateRequest{Text: "a"})
	require.NoError(t, err)
	b, err := svc.Create("bob", "p1", &dto.CommentCreateRequest{Text: "b", ParentID: &a.ID})
	require.NoError(t, err)
	c, err := svc.Create("carol", "p1", &dto.CommentCreateRequest{Text: "c", ParentID: &b.ID})
	require.NoError(t, err)
	_, err = svc.Create("dave", "p1", &dto.CommentCreateRequest{Text: "d", ParentID: &c.ID})
	require.NoError(t, err)
	other, err := svc.Create("eve", "p1", &dto.CommentCreateRequest{Text: "unrelated"})
	require.NoError(t, err)

	require.NoError(t, store.Add(c.ID, "👍", "u1"))
	require.NoError(t, store.Add(other.ID, "👍", "u1"))

	require.NoError(t, svc.Delete(a.ID, "alice", "user"))

	infos, err := svc.ListByPhoto("p1")
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, other.ID, infos[0].ID)

	// 链上的回应一并删除，无关评论的回应保留
	assert.Len(t, store.reactions, 1)
	assert.Equal(t, other.ID, store.reactions[0].CommentID)
}

func TestDeleteRequiresAuthorOrAdmin(t *testing.T) {
	store := newMemStore()
	store.addPhoto("p1")
	svc := newCommentService(store)

	info, err := svc.Create("alice", "p1", &dto.CommentCreateRequest{Text: "mine"})
	require.NoError(t, err)

	err = svc.Delete(info.ID, "bob", "user")
	assert.ErrorIs(t, err, ErrDeleteNoPermission)

	// 管理员可以删除别人的评论
	require.NoError(t, svc.Delete(info.ID, "bob", "admin"))
}

func TestDeleteCommentNotFound(t *testing.T) {
	store := newMemStore()
	svc := newCommentService(store)

	err := svc.Delete("ghost", "alice", "admin")
	assert.ErrorIs(t, err, ErrCommentNotFound)
}

// 数据里出现父子环时删除也要能终止
func TestDeleteTerminatesOnCycle(t *testing.T) {
	store := newMemStore()
	store.addPhoto("p1")
	svc := newCommentService(store)

	store.addComment(model.Comment{ID: "x", PhotoID: "p1", Author: "alice", ParentID: strPtr("y")})
	store.addComment(model.Comment{ID: "y", PhotoID: "p1", Author: "alice", ParentID: strPtr("x")})

	require.NoError(t, svc.Delete("x", "alice", "user"))

	infos, err := svc.ListByPhoto("p1")
	require.NoError(t, err)
	assert.Empty(t, infos)
}
