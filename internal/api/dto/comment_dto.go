package dto

import "time"

// CommentCreateRequest 发表评论请求
type CommentCreateRequest struct {
	Text     string  `json:"text" binding:"required,min=1,max=2000"`
	ParentID *string `json:"parent_id"`
}

// ReactionToggleRequest 表情回应切换请求
type ReactionToggleRequest struct {
	Emoji string `json:"emoji" binding:"required"`
}

// CommentInfo 评论信息，回应按 表情 -> 用户ID集合 聚合
type CommentInfo struct {
	ID        string              `json:"id"`
	PhotoID   string              `json:"photo_id"`
	Author    string              `json:"author"`
	Text      string              `json:"text"`
	ParentID  *string             `json:"parent_id"`
	CreatedAt time.Time           `json:"created_at"`
	Reactions map[string][]string `json:"reactions"`
}

// CommentNode 评论树节点，回复按输入顺序嵌套
type CommentNode struct {
	CommentInfo
	Replies []*CommentNode `json:"replies"`
}
