package client

import (
	"testing"

	"foto-go/internal/api/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func sampleComments() []dto.CommentInfo {
	return []dto.CommentInfo{
		{ID: "a", Author: "alice", Text: "root", Reactions: map[string][]string{"👍": {"u1"}}},
		{ID: "b", Author: "bob", Text: "reply", ParentID: strPtr("a")},
		{ID: "c", Author: "carol", Text: "deep reply", ParentID: strPtr("b")},
		{ID: "d", Author: "dave", Text: "other root"},
	}
}

func TestToggleReactionLocal(t *testing.T) {
	v := NewCommentView(sampleComments())

	// 新用户：追加
	v.ToggleReaction("a", "👍", "u2")
	assert.Equal(t, []string{"u1", "u2"}, v.Items()[0].Reactions["👍"])

	// 已有用户：移除
	v.ToggleReaction("a", "👍", "u1")
	assert.Equal(t, []string{"u2"}, v.Items()[0].Reactions["👍"])

	// 最后一个用户移除后整个表情键消失
	v.ToggleReaction("a", "👍", "u2")
	_, ok := v.Items()[0].Reactions["👍"]
	assert.False(t, ok)
}

func TestRemoveSubtreeLocal(t *testing.T) {
	v := NewCommentView(sampleComments())

	v.RemoveSubtree("a")

	items := v.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "d", items[0].ID)
}

func TestSnapshotRestoreIsDeep(t *testing.T) {
	original := sampleComments()
	v := NewCommentView(original)

	snap := v.Capture()
	v.ToggleReaction("a", "❤️", "u9")
	v.RemoveSubtree("b")
	v.Append(dto.CommentInfo{ID: "e", Text: "local only"})

	v.Restore(snap)

	items := v.Items()
	require.Len(t, items, 4)
	assert.Equal(t, []string{"u1"}, items[0].Reactions["👍"])
	_, ok := items[0].Reactions["❤️"]
	assert.False(t, ok)
}

// 视图内部状态不与调用方传入的切片共享底层存储
func TestViewCopiesInput(t *testing.T) {
	original := sampleComments()
	v := NewCommentView(original)

	original[0].Text = "mutated"
	original[0].Reactions["👍"][0] = "hacked"

	assert.Equal(t, "root", v.Items()[0].Text)
	assert.Equal(t, []string{"u1"}, v.Items()[0].Reactions["👍"])
}

func TestPhotoTagsViewSnapshotRestore(t *testing.T) {
	v := NewPhotoTagsView([]string{"beach", "sunset"})

	snap := v.Capture()
	v.Set([]string{"totally", "different"})
	v.Restore(snap)

	assert.Equal(t, []string{"beach", "sunset"}, v.Tags())
}

// 每次捕获的快照是独立的值，晚捕获的不覆盖早捕获的
func TestCaptureReturnsIndependentSnapshots(t *testing.T) {
	v := NewCommentView(sampleComments())

	first := v.Capture()
	v.ToggleReaction("a", "👍", "u2")
	second := v.Capture()

	v.Restore(first)
	assert.Equal(t, []string{"u1"}, v.Items()[0].Reactions["👍"])

	v.Restore(second)
	assert.Equal(t, []string{"u1", "u2"}, v.Items()[0].Reactions["👍"])
}
