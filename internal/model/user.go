package model

// 用户分类，决定相册可见范围之外主要用于管理后台筛选
const (
	CategoryFamily = "family"
	CategoryFriend = "friend"
	CategoryOther  = "other"
)

// User 用户模型
type User struct {
	ID        string `gorm:"primaryKey;size:36;comment:用户标识" json:"id"`
	Name      string `gorm:"size:255;not null;uniqueIndex;comment:用户名" json:"name"`
	Password  string `gorm:"size:255;not null;comment:密码哈希" json:"-"`
	Role      string `gorm:"size:32;not null;default:'user';comment:角色 admin/user" json:"role"`
	IsBlocked bool   `gorm:"not null;default:false;comment:是否封禁" json:"is_blocked"`
	Category  string `gorm:"size:32;not null;default:'other';comment:用户分类" json:"category"`
}

func (User) TableName() string {
	return "users"
}
