package client

import "foto-go/internal/api/dto"

// CommentView 一张照片（或最新评论流）的本地评论视图，
// 配合 Optimistic 做本地先行的界面更新
type CommentView struct {
	items []dto.CommentInfo
}

// NewCommentView 用服务端返回的评论列表初始化视图
func NewCommentView(items []dto.CommentInfo) *CommentView {
	return &CommentView{items: copyComments(items)}
}

// Items 返回当前视图里的评论列表
func (v *CommentView) Items() []dto.CommentInfo {
	return v.items
}

// Capture 返回当前状态的深拷贝快照
func (v *CommentView) Capture() Snapshot {
	return copyComments(v.items)
}

// Restore 回滚到 snap 捕获时的状态
func (v *CommentView) Restore(snap Snapshot) {
	if items, ok := snap.([]dto.CommentInfo); ok {
		v.items = copyComments(items)
	}
}

// Append 本地追加一条新评论
func (v *CommentView) Append(item dto.CommentInfo) {
	v.items = append(v.items, *copyComment(&item))
}

// ToggleReaction 本地切换回应：用户已在集合里则移除，否则追加
func (v *CommentView) ToggleReaction(commentID, emoji, userID string) {
	for i := range v.items {
		if v.items[i].ID != commentID {
			continue
		}

		if v.items[i].Reactions == nil {
			v.items[i].Reactions = map[string][]string{}
		}

		users := v.items[i].Reactions[emoji]
		for j, u := range users {
			if u == userID {
				users = append(users[:j], users[j+1:]...)
				if len(users) == 0 {
					delete(v.items[i].Reactions, emoji)
				} else {
					v.items[i].Reactions[emoji] = users
				}
				return
			}
		}

		v.items[i].Reactions[emoji] = append(users, userID)
		return
	}
}

// RemoveSubtree 本地删除评论及其所有后代，与服务端级联删除语义一致
func (v *CommentView) RemoveSubtree(commentID string) {
	doomed := map[string]bool{commentID: true}

	// 列表无序时单趟扫不完整，反复扫直到没有新增
	for {
		grew := false
		for i := range v.items {
			if doomed[v.items[i].ID] {
				continue
			}
			if v.items[i].ParentID != nil && doomed[*v.items[i].ParentID] {
				doomed[v.items[i].ID] = true
				grew = true
			}
		}
		if !grew {
			break
		}
	}

	kept := v.items[:0]
	for i := range v.items {
		if !doomed[v.items[i].ID] {
			kept = append(kept, v.items[i])
		}
	}
	v.items = kept
}

// PhotoTagsView 一张照片的本地标签视图
type PhotoTagsView struct {
	tags []string
}

// NewPhotoTagsView 用服务端返回的标签列表初始化视图
func NewPhotoTagsView(tags []string) *PhotoTagsView {
	return &PhotoTagsView{tags: copyTags(tags)}
}

// Tags 返回当前标签列表
func (v *PhotoTagsView) Tags() []string {
	return v.tags
}

// Capture 返回当前状态的拷贝快照
func (v *PhotoTagsView) Capture() Snapshot {
	return copyTags(v.tags)
}

// Restore 回滚到 snap 捕获时的状态
func (v *PhotoTagsView) Restore(snap Snapshot) {
	if tags, ok := snap.([]string); ok {
		v.tags = copyTags(tags)
	}
}

// Set 本地整体替换标签
func (v *PhotoTagsView) Set(tags []string) {
	v.tags = copyTags(tags)
}

func copyComments(items []dto.CommentInfo) []dto.CommentInfo {
	out := make([]dto.CommentInfo, len(items))
	for i := range items {
		out[i] = *copyComment(&items[i])
	}
	return out
}

// copyComment 深拷贝一条评论，回应集合不与原值共享底层存储
func copyComment(item *dto.CommentInfo) *dto.CommentInfo {
	clone := *item

	if item.ParentID != nil {
		parentID := *item.ParentID
		clone.ParentID = &parentID
	}

	if item.Reactions != nil {
		reactions := make(map[string][]string, len(item.Reactions))
		for emoji, users := range item.Reactions {
			reactions[emoji] = append([]string(nil), users...)
		}
		clone.Reactions = reactions
	}

	return &clone
}

func copyTags(tags []string) []string {
	return append([]string(nil), tags...)
}
