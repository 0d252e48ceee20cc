package model

import "time"

// Comment 评论模型
// 作者保存的是发表时的显示名快照，不是用户表外键；
// parent_id 指向同一照片下的另一条评论，空值表示根评论
type Comment struct {
	ID        string    `gorm:"primaryKey;size:36;comment:评论标识" json:"id"`
	PhotoID   string    `gorm:"size:36;not null;index:idx_comments_photo_id;comment:所属照片" json:"photo_id"`
	Author    string    `gorm:"size:255;not null;comment:作者显示名" json:"author"`
	Text      string    `gorm:"type:text;not null;comment:评论内容" json:"text"`
	ParentID  *string   `gorm:"size:36;index:idx_comments_parent_id;comment:父评论标识" json:"parent_id"`
	CreatedAt time.Time `gorm:"not null;index:idx_comments_created_at;comment:评论时间" json:"created_at"`

	Reactions []CommentReaction `gorm:"foreignKey:CommentID" json:"reactions,omitempty"`
}

func (Comment) TableName() string {
	return "comments"
}

// CommentReaction 评论表情回应，(comment_id, emoji, user_id) 三元组唯一
type CommentReaction struct {
	ID        int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	CommentID string `gorm:"size:36;not null;uniqueIndex:idx_comment_emoji_user;index:idx_reactions_comment_id;comment:评论标识" json:"comment_id"`
	Emoji     string `gorm:"size:32;not null;uniqueIndex:idx_comment_emoji_user;comment:表情" json:"emoji"`
	UserID    string `gorm:"size:36;not null;uniqueIndex:idx_comment_emoji_user;comment:回应用户" json:"user_id"`
}

func (CommentReaction) TableName() string {
	return "comment_reactions"
}
